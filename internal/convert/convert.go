// Package convert re-encodes 3D assets between the text (.gltf) and binary
// (.glb) interchange forms, preserving animation and skin data carried by
// the document.
package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
)

// Stages a conversion can fail in. Reported separately so the caller knows
// whether the input could not be read or the output could not be written.
const (
	StageImport = "import"
	StageExport = "export"
)

// StageError wraps a failure with the stage and file it happened on.
type StageError struct {
	Stage string
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("convert: %s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Convert reads the asset at inputPath and writes it to outputPath in the
// format its extension selects (.glb binary, anything else JSON glTF).
func Convert(inputPath, outputPath string) error {
	doc, err := gltf.Open(inputPath)
	if err != nil {
		return &StageError{Stage: StageImport, Path: inputPath, Err: err}
	}
	if strings.EqualFold(filepath.Ext(outputPath), ".glb") {
		if err := gltf.SaveBinary(doc, outputPath); err != nil {
			return &StageError{Stage: StageExport, Path: outputPath, Err: err}
		}
		return nil
	}
	// JSON output cannot reference a GLB-internal buffer; embed it.
	for _, b := range doc.Buffers {
		if b.URI == "" && len(b.Data) > 0 {
			b.EmbeddedResource()
		}
	}
	if err := gltf.Save(doc, outputPath); err != nil {
		return &StageError{Stage: StageExport, Path: outputPath, Err: err}
	}
	return nil
}
