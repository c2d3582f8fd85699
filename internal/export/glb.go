// Package export serializes an assembled scene to a binary glTF asset with
// baked transforms, smooth normals, and flat PBR materials. Light nodes are
// preview-only and not exported.
package export

import (
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"arenagen/internal/material"
	"arenagen/internal/scene"
)

// WriteGLB writes the scene under root to path. The file appears atomically:
// a failed export leaves no partial asset at the output path. Vertex data is
// converted from the generator's Z-up frame to glTF's Y-up frame, a pure
// rotation so triangle winding is preserved.
func WriteGLB(sc *scene.Scene, root *scene.Node, path string) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "arenagen"

	matIndex := make(map[string]int)
	matFor := func(id string) *int {
		if id == "" {
			return nil
		}
		if idx, ok := matIndex[id]; ok {
			return gltf.Index(idx)
		}
		def, ok := material.Library[id]
		if !ok {
			return nil
		}
		m := &gltf.Material{
			Name: def.Name,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(def.BaseColor[0]), float64(def.BaseColor[1]), float64(def.BaseColor[2]), 1},
				MetallicFactor:  gltf.Float(float64(def.Metallic)),
				RoughnessFactor: gltf.Float(float64(def.Roughness)),
			},
		}
		if def.Emissive() {
			m.EmissiveFactor = [3]float64{float64(def.Emission[0]), float64(def.Emission[1]), float64(def.Emission[2])}
		}
		idx := len(doc.Materials)
		doc.Materials = append(doc.Materials, m)
		matIndex[id] = idx
		return gltf.Index(idx)
	}

	rootIdx := len(doc.Nodes)
	rootNode := &gltf.Node{Name: root.Name}
	doc.Nodes = append(doc.Nodes, rootNode)

	for _, n := range sc.MeshNodes() {
		if n.Mesh.IsEmpty() {
			return fmt.Errorf("export: node %s has no geometry", n.Name)
		}
		baked := n.Mesh.Clone()
		baked.Transform(n.Pose)
		if n.Smooth {
			baked.RecomputeNormals()
		}

		count := baked.VertexCount()
		positions := make([][3]float32, count)
		normals := make([][3]float32, count)
		for i := 0; i < count; i++ {
			x, y, z := baked.Vertices[i*3], baked.Vertices[i*3+1], baked.Vertices[i*3+2]
			positions[i] = [3]float32{x, z, -y}
			nx, ny, nz := baked.Normals[i*3], baked.Normals[i*3+1], baked.Normals[i*3+2]
			normals[i] = [3]float32{nx, nz, -ny}
		}

		prim := &gltf.Primitive{
			Attributes: map[string]int{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
			Indices:  gltf.Index(modeler.WriteIndices(doc, baked.Indices)),
			Material: matFor(n.Material),
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       n.Name,
			Primitives: []*gltf.Primitive{prim},
		})
		nodeIdx := len(doc.Nodes)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: n.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		rootNode.Children = append(rootNode.Children, nodeIdx)
	}
	doc.Scenes[0].Nodes = []int{rootIdx}

	tmp := path + ".tmp"
	if err := gltf.SaveBinary(doc, tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("export: finalize %s: %w", path, err)
	}
	return nil
}
