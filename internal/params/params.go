package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is the complete numeric configuration for one generation run. It is
// value-copied into every builder and never mutated after Validate, so a
// given Set (including Seed) always reproduces identical geometry.
type Set struct {
	// PlatformRadius is the circumradius of the hexagonal floor in world units.
	PlatformRadius float32 `yaml:"platform_radius"`
	// PlatformHeight is the floor slab thickness. The slab top sits at Z=0.
	PlatformHeight float32 `yaml:"platform_height"`

	// RingRadii are the outer radii of the three ritual rings, outermost first.
	// Must be strictly decreasing.
	RingRadii [3]float32 `yaml:"ring_radii"`
	// RingThickness is the radial width of each ring, index-matched to RingRadii.
	RingThickness [3]float32 `yaml:"ring_thickness"`

	PillarHeight float32 `yaml:"pillar_height"`
	PillarRadius float32 `yaml:"pillar_radius"`
	// PillarCount is the number of perimeter pillars; the anchors also drive
	// chains and rune beams when those features are enabled.
	PillarCount int `yaml:"pillar_count"`

	// Sides is the polygon side count of the platform outline. The whole
	// layout assumes 6 (hex vertices, edge spikes, horn placement) but any
	// value >= 3 produces a valid prism.
	Sides int `yaml:"sides"`

	RunesPerRing  int `yaml:"runes_per_ring"`
	SpikesPerEdge int `yaml:"spikes_per_edge"`
	SkullCount    int `yaml:"skull_count"`
	HornCount     int `yaml:"horn_count"`

	// ScatterRadius bounds the disk that skull scatter samples from.
	ScatterRadius float32 `yaml:"scatter_radius"`

	// FireSpheres is how many stacked fire orbs each brazier holds (1..3).
	FireSpheres int `yaml:"fire_spheres"`

	// Seed drives every random choice (scatter angles, vertex jitter).
	Seed int64 `yaml:"seed"`

	Features Features `yaml:"features"`
}

// Features toggles the richer decoration set. All default to off; the
// simplified platform (no chains, no lava, no rune work) is the canonical
// configuration.
type Features struct {
	Chains     bool `yaml:"chains"`
	LavaCracks bool `yaml:"lava_cracks"`
	RuneBeams  bool `yaml:"rune_beams"`
	RuneDecals bool `yaml:"rune_decals"`
}

// Error reports an invalid parameter. It is returned before any scene
// mutation happens, so a failed Validate never leaves partial state behind.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("params: %s: %s", e.Field, e.Reason)
}

// Default returns the canonical platform configuration.
func Default() Set {
	return Set{
		PlatformRadius: 7.0,
		PlatformHeight: 0.5,
		RingRadii:      [3]float32{5.5, 3.5, 1.8},
		RingThickness:  [3]float32{0.4, 0.3, 0.2},
		PillarHeight:   3.0,
		PillarRadius:   0.35,
		PillarCount:    6,
		Sides:          6,
		RunesPerRing:   6,
		SpikesPerEdge:  3,
		SkullCount:     8,
		HornCount:      6,
		ScatterRadius:  4.8,
		FireSpheres:    1,
		Seed:           42,
	}
}

// Load reads a Set from a YAML file. A missing file yields Default; a file
// that exists but cannot be parsed is an error.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Set{}, fmt.Errorf("params: read %s: %w", path, err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("params: parse %s: %w", path, err)
	}
	return s, nil
}

// Validate checks every invariant the builders rely on. It must be called
// (and succeed) before any geometry is created.
func (s Set) Validate() error {
	if s.PlatformRadius <= 0 {
		return &Error{"platform_radius", "must be positive"}
	}
	if s.PlatformHeight <= 0 {
		return &Error{"platform_height", "must be positive"}
	}
	if s.Sides < 3 {
		return &Error{"sides", "need at least 3 sides"}
	}
	for i, r := range s.RingRadii {
		if r <= 0 {
			return &Error{"ring_radii", fmt.Sprintf("ring %d radius must be positive", i)}
		}
	}
	if !(s.RingRadii[0] > s.RingRadii[1] && s.RingRadii[1] > s.RingRadii[2]) {
		return &Error{"ring_radii", "must be strictly decreasing outer > middle > inner"}
	}
	for i, t := range s.RingThickness {
		if t <= 0 {
			return &Error{"ring_thickness", fmt.Sprintf("ring %d thickness must be positive", i)}
		}
		if s.RingRadii[i]-t <= 0 {
			return &Error{"ring_thickness", fmt.Sprintf("ring %d thickness leaves no inner radius", i)}
		}
	}
	if s.PillarHeight <= 0 || s.PillarRadius <= 0 {
		return &Error{"pillar", "height and radius must be positive"}
	}
	if s.PillarCount <= 0 {
		return &Error{"pillar_count", "must be positive"}
	}
	if s.SpikesPerEdge <= 0 {
		return &Error{"spikes_per_edge", "must be positive"}
	}
	if s.SkullCount < 0 || s.HornCount < 0 || s.RunesPerRing < 0 {
		return &Error{"counts", "decoration counts cannot be negative"}
	}
	if s.ScatterRadius <= 0 {
		return &Error{"scatter_radius", "must be positive"}
	}
	if s.FireSpheres < 1 || s.FireSpheres > 3 {
		return &Error{"fire_spheres", "must be between 1 and 3"}
	}
	return nil
}
