// Package render drives package step's writers from a Solid or a
// tessellation, adapted from ajsb85-sdfx/render/step.go.
package render

import (
	"fmt"
	"sync"

	"github.com/ajsb85/brepkit/mesh"
	"github.com/ajsb85/brepkit/step"
	"github.com/ajsb85/brepkit/topo"
)

// Options configures a STEP export's FILE_NAME header fields.
type Options struct {
	Author       string
	Organization string
	ProductName  string
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func productName(opts Options) string {
	if opts.ProductName == "" {
		return "brepkit_model"
	}
	return opts.ProductName
}

func applyAuthor(w *step.Writer, opts Options) {
	if opts.Author != "" || opts.Organization != "" {
		w.SetAuthor(orUnknown(opts.Author), orUnknown(opts.Organization))
	}
}

// ToSTEP exports solid through package step's native B-rep path.
func ToSTEP(solid topo.Solid, path string, opts Options) error {
	writer, err := step.NewWriter(path)
	if err != nil {
		return fmt.Errorf("creating STEP writer: %w", err)
	}
	defer writer.Close()
	applyAuthor(writer, opts)
	if err := writer.WriteSolid(solid, productName(opts)); err != nil {
		return fmt.Errorf("writing solid: %w", err)
	}
	return nil
}

// SaveSTEP writes a pre-computed tessellation to path through package step's
// mesh fallback path.
func SaveSTEP(path string, triangles []mesh.Triangle, opts Options) error {
	writer, err := step.NewWriter(path)
	if err != nil {
		return fmt.Errorf("creating STEP writer: %w", err)
	}
	defer writer.Close()
	applyAuthor(writer, opts)
	if err := writer.WriteMesh(triangles, productName(opts)); err != nil {
		return fmt.Errorf("writing mesh: %w", err)
	}
	return nil
}

// StreamTessellation tessellates solid face-by-face on a producer goroutine
// while a StreamWriter goroutine drains the resulting triangle batches into
// path, mirroring ajsb85-sdfx/render/step.go's buffered-channel pipeline: a
// sync.WaitGroup synchronizes the two concurrent stages, confined entirely
// to this I/O staging step (the modeling core itself stays synchronous).
func StreamTessellation(solid topo.Solid, path string, tol float64, opts Options) error {
	sw, input, err := step.NewStreamWriter(path)
	if err != nil {
		return fmt.Errorf("creating STEP stream writer: %w", err)
	}
	if opts.Author != "" || opts.Organization != "" {
		sw.SetAuthor(orUnknown(opts.Author), orUnknown(opts.Organization))
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, shell := range solid.Boundaries() {
			for _, face := range shell.FaceIter() {
				input <- mesh.Tessellate(face, tol)
			}
		}
	}()
	wg.Wait()

	if err := sw.Finalize(productName(opts)); err != nil {
		return fmt.Errorf("finalizing STEP stream: %w", err)
	}
	return nil
}
