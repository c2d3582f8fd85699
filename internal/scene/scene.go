// Package scene is the in-memory scene graph the builders populate. Every
// operation takes and returns explicit node handles; there is no ambient
// "active object" selection state.
package scene

import (
	"fmt"

	"arenagen/internal/csg"
	"arenagen/internal/layout"
	"arenagen/internal/mesh"
)

// NodeKind discriminates what a node carries.
type NodeKind int

const (
	NodeMesh NodeKind = iota
	NodeLight
	NodeAnchor
)

// Light is a point light description. Lights exist for the preview only;
// the exporter skips them.
type Light struct {
	Color  [3]float32
	Energy float32
}

// Node is a handle to one scene object. A mesh node exclusively owns its
// mesh buffers until Assemble parents it under the root, or until it is
// destroyed as a boolean operand.
type Node struct {
	Name     string
	Kind     NodeKind
	Spec     mesh.PrimitiveSpec
	Mesh     *mesh.Mesh
	Pose     layout.Pose
	Material string
	Smooth   bool
	Light    *Light

	// Carved marks a prism whose mesh was replaced by a boolean annulus.
	Carved bool
	// Beveled marks a prism regenerated with rounded cap edges.
	Beveled bool

	parent    *Node
	children  []*Node
	destroyed bool
}

// Parent returns the node's parent, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's direct children.
func (n *Node) Children() []*Node { return n.children }

// Scene owns every node created during one generation run.
type Scene struct {
	nodes []*Node
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// CreatePrimitive builds the primitive the spec describes and registers it
// as a new mesh node at the given pose.
func (s *Scene) CreatePrimitive(name string, spec mesh.PrimitiveSpec, pose layout.Pose) (*Node, error) {
	m, err := mesh.Generate(spec)
	if err != nil {
		return nil, fmt.Errorf("scene: create %s: %w", name, err)
	}
	n := &Node{Name: name, Kind: NodeMesh, Spec: spec, Mesh: m, Pose: pose}
	s.nodes = append(s.nodes, n)
	return n, nil
}

// CreateLight registers a point light node.
func (s *Scene) CreateLight(name string, pose layout.Pose, color [3]float32, energy float32) *Node {
	n := &Node{Name: name, Kind: NodeLight, Pose: pose, Light: &Light{Color: color, Energy: energy}}
	s.nodes = append(s.nodes, n)
	return n
}

// CreateAnchor registers an empty transform node.
func (s *Scene) CreateAnchor(name string, pose layout.Pose) *Node {
	n := &Node{Name: name, Kind: NodeAnchor, Pose: pose}
	s.nodes = append(s.nodes, n)
	return n
}

// BooleanDifference subtracts b from a and destroys b. Both nodes must be
// coaxial uniform prisms at the same pose; this is the only boolean the
// platform needs (ring carving) and the only one supported.
func (s *Scene) BooleanDifference(a, b *Node) error {
	if a.Kind != NodeMesh || b.Kind != NodeMesh {
		return fmt.Errorf("scene: boolean operands must be mesh nodes")
	}
	ap, err := prismOf(a)
	if err != nil {
		return err
	}
	bp, err := prismOf(b)
	if err != nil {
		return err
	}
	if a.Pose.Position != b.Pose.Position || a.Pose.Rotation != b.Pose.Rotation {
		return fmt.Errorf("scene: boolean operands %s and %s are not coaxial", a.Name, b.Name)
	}
	carved, err := csg.Difference(ap, bp)
	if err != nil {
		return err
	}
	a.Mesh = carved
	a.Carved = true
	s.Destroy(b)
	return nil
}

func prismOf(n *Node) (csg.Prism, error) {
	if n.Spec.Kind != mesh.KindCylinder || n.Spec.RadiusTop != n.Spec.RadiusBottom {
		return csg.Prism{}, fmt.Errorf("scene: node %s is not a uniform prism", n.Name)
	}
	return csg.Prism{Sides: n.Spec.Sides, Radius: n.Spec.RadiusBottom, Depth: n.Spec.Depth}, nil
}

// BevelEdges replaces a uniform prism's mesh with one whose cap edges are
// rounded by the given width over the given number of arc segments.
func (s *Scene) BevelEdges(n *Node, width float32, segments int) error {
	p, err := prismOf(n)
	if err != nil {
		return err
	}
	beveled, err := mesh.BeveledPrism(p.Sides, p.Radius, p.Depth, width, segments)
	if err != nil {
		return err
	}
	n.Mesh = beveled
	n.Beveled = true
	return nil
}

// TagMaterial assigns a material id from the palette to the node.
func (s *Scene) TagMaterial(n *Node, id string) {
	n.Material = id
}

// SetParent parents child under parent. Every non-root node gets exactly one
// parent, assigned exactly once.
func (s *Scene) SetParent(child, parent *Node) error {
	if child.parent != nil {
		return fmt.Errorf("scene: node %s already has a parent", child.Name)
	}
	if child == parent {
		return fmt.Errorf("scene: node %s cannot parent itself", child.Name)
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	return nil
}

// Destroy removes a node from the scene. Used for discarded boolean
// operands and scratch meshes.
func (s *Scene) Destroy(n *Node) {
	if n.destroyed {
		return
	}
	n.destroyed = true
	for i, c := range s.nodes {
		if c == n {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
}

// Nodes returns all live nodes in creation order.
func (s *Scene) Nodes() []*Node {
	out := make([]*Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// MeshNodes returns the live mesh nodes in creation order.
func (s *Scene) MeshNodes() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.Kind == NodeMesh {
			out = append(out, n)
		}
	}
	return out
}

// Lights returns the live light nodes in creation order.
func (s *Scene) Lights() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.Kind == NodeLight {
			out = append(out, n)
		}
	}
	return out
}

// Assemble finishes the scene: every mesh node is tagged shaded-smooth, one
// root anchor is created at the origin, and every parentless node is
// reparented under it. Returns the root, the single handle an exporter
// needs.
func (s *Scene) Assemble(rootName string) (*Node, error) {
	for _, n := range s.nodes {
		if n.Kind == NodeMesh {
			n.Smooth = true
		}
	}
	root := s.CreateAnchor(rootName, layout.At(0, 0, 0))
	for _, n := range s.nodes {
		if n == root || n.parent != nil {
			continue
		}
		if err := s.SetParent(n, root); err != nil {
			return nil, err
		}
	}
	return root, nil
}
