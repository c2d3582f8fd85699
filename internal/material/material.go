// Package material holds the platform's PBR palette. Only channels the
// binary interchange format supports survive: base color, roughness,
// metallic, emissive. No procedural shader graphs.
package material

// Material is a flat PBR definition.
type Material struct {
	Name             string
	BaseColor        [3]float32
	Roughness        float32
	Metallic         float32
	Emission         [3]float32
	EmissionStrength float32
}

// Emissive reports whether the material glows.
func (m Material) Emissive() bool {
	return m.EmissionStrength > 0
}

// Tag names used by the builders.
const (
	Floor    = "floor"
	Obsidian = "obsidian"
	Metal    = "metal"
	Ritual   = "ritual"
	Fire     = "fire"
	Crystal  = "crystal"
	Altar    = "altar"
	Spike    = "spike"
	Bone     = "bone"
	Soul     = "soul"
	Rune     = "rune"
	Lava     = "lava"
)

// Library is the dark-ritual palette: stone floor, obsidian pillars, aged
// bronze fittings, and low-strength glow colors that survive tone mapping.
var Library = map[string]Material{
	Floor:    {Name: "Floor_Stone", BaseColor: [3]float32{0.35, 0.32, 0.38}, Roughness: 0.85},
	Obsidian: {Name: "Obsidian", BaseColor: [3]float32{0.25, 0.22, 0.30}, Roughness: 0.3, Metallic: 0.1},
	Metal:    {Name: "Dark_Metal", BaseColor: [3]float32{0.45, 0.35, 0.25}, Roughness: 0.4, Metallic: 0.8},
	Ritual: {Name: "Ritual_Glow", BaseColor: [3]float32{0.9, 0.2, 0.1}, Roughness: 0.3,
		Emission: [3]float32{1.0, 0.15, 0.05}, EmissionStrength: 2.0},
	Fire: {Name: "Fire", BaseColor: [3]float32{1.0, 0.5, 0.15}, Roughness: 0.5,
		Emission: [3]float32{1.0, 0.4, 0.1}, EmissionStrength: 2.5},
	Crystal: {Name: "Crystal", BaseColor: [3]float32{0.6, 0.3, 0.9}, Roughness: 0.2,
		Emission: [3]float32{0.5, 0.2, 1.0}, EmissionStrength: 2.0},
	Altar: {Name: "Altar_Stone", BaseColor: [3]float32{0.2, 0.15, 0.22}, Roughness: 0.7},
	Spike: {Name: "Spike", BaseColor: [3]float32{0.18, 0.15, 0.2}, Roughness: 0.8},
	Bone:  {Name: "Bone", BaseColor: [3]float32{0.7, 0.65, 0.55}, Roughness: 0.6},
	Soul: {Name: "Soul_Orb", BaseColor: [3]float32{1.0, 0.4, 0.1}, Roughness: 0.2,
		Emission: [3]float32{1.0, 0.35, 0.1}, EmissionStrength: 3.0},
	Rune: {Name: "Rune_Gold", BaseColor: [3]float32{1.0, 0.7, 0.2}, Roughness: 0.3,
		Emission: [3]float32{1.0, 0.7, 0.2}, EmissionStrength: 2.0},
	Lava: {Name: "Lava", BaseColor: [3]float32{1.0, 0.35, 0.1}, Roughness: 0.35,
		Emission: [3]float32{1.0, 0.35, 0.1}, EmissionStrength: 2.5},
}
