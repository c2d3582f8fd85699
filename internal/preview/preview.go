// Package preview opens an interactive raylib window on a generated scene.
// Nodes are drawn as transformed unit primitives with the palette colors, so
// placement, proportions, and the light rig can be checked without a glTF
// viewer. Based on raylib examples/core/core_3d_camera_free.
package preview

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"arenagen/internal/material"
	"arenagen/internal/mesh"
	"arenagen/internal/scene"
)

const (
	gridExtent     = 12
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
)

// Viewer holds the camera and draw state for one preview session.
type Viewer struct {
	Camera        rl.Camera3D
	GridVisible   bool
	LightsVisible bool

	reg *Registry
	sc  *scene.Scene
}

// New returns a viewer over the given scene with a perspective camera looking
// at the origin. Grid and light markers are visible by default.
func New(sc *scene.Scene) *Viewer {
	v := &Viewer{reg: NewRegistry(), sc: sc}
	v.Camera.Position = rl.NewVector3(10, 8, 10)
	v.Camera.Target = rl.NewVector3(0, 1, 0)
	v.Camera.Up = rl.NewVector3(0, 1, 0)
	v.Camera.Fovy = 45
	v.Camera.Projection = rl.CameraPerspective
	v.GridVisible = true
	v.LightsVisible = true
	return v
}

// Run opens the window and blocks until it is closed. Mouse and keyboard
// drive the free camera; G toggles the grid, L toggles light markers.
func Run(sc *scene.Scene) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(1280, 800, "arenagen preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	v := New(sc)
	for !rl.WindowShouldClose() {
		v.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(12, 12, 16, 255))
		v.Draw()
		rl.EndDrawing()
	}
}

// Update runs once per frame: free-camera input plus the toggle keys.
func (v *Viewer) Update() {
	rl.UpdateCamera(&v.Camera, rl.CameraFree)
	if rl.IsKeyPressed(rl.KeyG) {
		v.GridVisible = !v.GridVisible
	}
	if rl.IsKeyPressed(rl.KeyL) {
		v.LightsVisible = !v.LightsVisible
	}
}

// Draw renders one frame: grid, mesh nodes, light markers, and the HUD line.
func (v *Viewer) Draw() {
	pos := v.Camera.Position
	v.reg.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(v.Camera)
	if v.GridVisible {
		drawEditorGrid()
	}
	for _, n := range v.sc.MeshNodes() {
		v.drawMeshNode(n)
	}
	if v.LightsVisible {
		for _, n := range v.sc.Lights() {
			v.drawLightNode(n)
		}
	}
	rl.EndMode3D()

	rl.DrawText("G grid  L lights  right-drag orbit", 10, 10, 18, rl.Gray)
	rl.DrawFPS(10, 34)
}

// drawMeshNode draws one generated node as a transformed unit primitive.
// Carved rings render as flat discs of the outer radius; the cutout only
// exists in the baked geometry.
func (v *Viewer) drawMeshNode(n *scene.Node) {
	var key string
	var size [3]float32
	var axisFix rl.Matrix
	var offset rl.Matrix
	identity := rl.MatrixIdentity()
	axisFix = identity
	offset = identity

	switch n.Spec.Kind {
	case mesh.KindCylinder:
		key = "cylinder"
		d := n.Spec.RadiusBottom * 2
		size = [3]float32{d, d, n.Spec.Depth}
		// Raylib cylinder: base at Y=0, axis +Y. Center it, then stand it
		// on the generator's Z axis.
		offset = rl.MatrixTranslate(0, -0.5, 0)
		axisFix = rl.MatrixRotateX(math32.Pi / 2)
	case mesh.KindCone:
		key = "cone"
		d := n.Spec.RadiusBottom * 2
		size = [3]float32{d, d, n.Spec.Depth}
		offset = rl.MatrixTranslate(0, -0.5, 0)
		axisFix = rl.MatrixRotateX(math32.Pi / 2)
	case mesh.KindUVSphere, mesh.KindIcoSphere:
		key = "sphere"
		d := n.Spec.Radius * 2
		size = [3]float32{d, d, d}
	case mesh.KindPlane:
		key = "plane"
		size = [3]float32{n.Spec.Size, n.Spec.Size, 1}
		// Raylib plane lies in XZ; the generator's planes lie in XY.
		axisFix = rl.MatrixRotateX(math32.Pi / 2)
	default:
		return
	}

	// Application order: center offset, axis fix, size, node rotation, node
	// translation, then the Z-up to Y-up frame change.
	m := rl.MatrixMultiply(offset, axisFix)
	m = rl.MatrixMultiply(m, rl.MatrixScale(size[0], size[1], size[2]))
	rot := n.Pose.Rotation
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(rot[0]))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(rot[1]))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(rot[2]))
	p := n.Pose.Position
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(p[0], p[1], p[2]))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(-math32.Pi/2))

	v.reg.Draw(key, m, colorFor(n.Material))
}

// drawLightNode marks a point light with a small unshaded sphere in the
// light's color. Marker size grows gently with energy.
func (v *Viewer) drawLightNode(n *scene.Node) {
	p := n.Pose.Position
	radius := 0.08 + n.Light.Energy/800
	c := n.Light.Color
	rl.DrawSphere(
		rl.NewVector3(p[0], p[2], -p[1]),
		radius,
		rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255),
	)
}

// colorFor maps a palette id to a draw color. Emissive materials show their
// emission color so braziers and runes stand out; everything else shows its
// base color.
func colorFor(id string) rl.Color {
	def, ok := material.Library[id]
	if !ok {
		return rl.NewColor(128, 128, 128, 255)
	}
	c := def.BaseColor
	if def.Emissive() {
		c = def.Emission
	}
	return rl.NewColor(channel(c[0]), channel(c[1]), channel(c[2]), 255)
}

func channel(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f * 255)
}

// drawEditorGrid draws a Unity-style grid on the XZ plane with major/minor
// lines and colored axis lines.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	var start, end rl.Vector3

	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := minor
		if x%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := minor
		if z%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, rl.NewColor(220, 80, 80, 200))
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, rl.NewColor(80, 120, 220, 200))
}
