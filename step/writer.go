package step

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ajsb85/brepkit/mesh"
	"github.com/ajsb85/brepkit/topo"
)

// Writer owns one ISO-10303-21 output file and the Converter that turns a
// Solid or tessellation into its entity list, adapted from
// ajsb85-sdfx/step/writer.go.
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	converter  *Converter
	fileName   string
	authorName string
	orgName    string
}

// NewWriter creates path and returns a Writer ready to accept one export.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{
		file:       file,
		writer:     bufio.NewWriter(file),
		converter:  NewConverter(),
		fileName:   filepath.Base(path),
		authorName: "brepkit user",
		orgName:    "brepkit",
	}, nil
}

// SetAuthor overrides the FILE_NAME header's author/organization fields.
func (w *Writer) SetAuthor(name, org string) {
	w.authorName = name
	w.orgName = org
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func (w *Writer) writeHeader() error {
	header := []string{
		"ISO-10303-21;",
		"HEADER;",
		"FILE_DESCRIPTION(('STEP AP214'),'1');",
		fmt.Sprintf("FILE_NAME('%s','%s',('%s'),('%s'),'brepkit STEP writer','brepkit','');",
			w.fileName, time.Now().Format("2006-01-02T15:04:05"), w.authorName, w.orgName),
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));",
		"ENDSEC;",
	}
	for _, line := range header {
		if _, err := w.writer.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeData(entities []Entity) error {
	if _, err := w.writer.WriteString("DATA;\n"); err != nil {
		return err
	}
	for _, e := range entities {
		if _, err := w.writer.WriteString(e.String() + "\n"); err != nil {
			return err
		}
	}
	_, err := w.writer.WriteString("ENDSEC;\n")
	return err
}

func (w *Writer) writeFooter() error {
	_, err := w.writer.WriteString("END-ISO-10303-21;\n")
	return err
}

func (w *Writer) write(entities []Entity) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	if err := w.writeData(entities); err != nil {
		return err
	}
	if err := w.writeFooter(); err != nil {
		return err
	}
	return w.writer.Flush()
}

// WriteSolid converts solid through the native B-rep path and writes it.
func (w *Writer) WriteSolid(solid topo.Solid, name string) error {
	return w.write(w.converter.ConvertSolid(solid, name))
}

// WriteMesh converts a tessellation through the fallback path and writes it.
func (w *Writer) WriteMesh(triangles []mesh.Triangle, name string) error {
	return w.write(w.converter.ConvertMesh(triangles, name))
}

// StreamWriter accepts triangle batches over a channel and writes them as one
// mesh-based STEP file once the producer closes the channel, mirroring
// ajsb85-sdfx/step/writer.go's StreamWriter. Used by package render to
// decouple a slow tessellation producer from the STEP encoding step.
type StreamWriter struct {
	writer    *Writer
	triangles []mesh.Triangle
	wg        *sync.WaitGroup
	input     chan []mesh.Triangle
	mutex     sync.Mutex
}

// NewStreamWriter creates path and returns a StreamWriter plus the channel
// callers should feed triangle batches into.
func NewStreamWriter(path string) (*StreamWriter, chan<- []mesh.Triangle, error) {
	writer, err := NewWriter(path)
	if err != nil {
		return nil, nil, err
	}
	input := make(chan []mesh.Triangle, 100)
	sw := &StreamWriter{writer: writer, wg: new(sync.WaitGroup), input: input}
	sw.wg.Add(1)
	go sw.collect()
	return sw, input, nil
}

func (sw *StreamWriter) collect() {
	defer sw.wg.Done()
	for batch := range sw.input {
		sw.mutex.Lock()
		sw.triangles = append(sw.triangles, batch...)
		sw.mutex.Unlock()
	}
}

// SetAuthor overrides the eventual STEP file's author/organization fields.
func (sw *StreamWriter) SetAuthor(name, org string) { sw.writer.SetAuthor(name, org) }

// Finalize closes the input channel, waits for collection to finish, and
// writes the accumulated triangles to the STEP file.
func (sw *StreamWriter) Finalize(name string) error {
	close(sw.input)
	sw.wg.Wait()

	sw.mutex.Lock()
	defer sw.mutex.Unlock()
	if err := sw.writer.WriteMesh(sw.triangles, name); err != nil {
		sw.writer.Close()
		return err
	}
	return sw.writer.Close()
}
