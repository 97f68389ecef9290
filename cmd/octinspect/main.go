// Inspection tool for Octave text files
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"golang.org/x/term"

	"github.com/robert-malhotra/go-octtext/delimited"
	"github.com/robert-malhotra/go-octtext/octtext"
	"github.com/robert-malhotra/go-octtext/probe"
)

const defaultWidth = 80

var formatNames = strings.Join([]string{probe.Octave.String(), probe.Delimited.String(), probe.HDF5.String()}, ", ")

func main() {
	values := flag.Bool("values", false, "print object values")
	csvName := flag.String("csv", "", "write the named object as comma separated values")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: octinspect [-values] [-csv NAME] <file>")
		fmt.Fprintf(os.Stderr, "Recognized formats: %s\n", formatNames)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	var err error
	if *csvName != "" {
		err = exportCSV(os.Stdout, filename, *csvName)
	} else {
		err = inspect(os.Stdout, filename, *values, outputWidth())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// outputWidth returns the terminal width, or defaultWidth when stdout is not
// a terminal.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

func inspect(out io.Writer, filename string, values bool, width int) error {
	res, err := probe.DetectFile(filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "=== Analyzing %s ===\n\n", filename)
	fmt.Fprintf(out, "Format: %s\n", res.Format)
	if res.Compression != octtext.NoCompression {
		fmt.Fprintf(out, "Compression: %s\n", res.Compression)
	}
	if res.Format == probe.HDF5 {
		fmt.Fprintf(out, "Superblock version: %d\n", res.HDF5Version)
		return nil
	}
	if res.Format != probe.Octave {
		return nil
	}

	r, err := octtext.Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	fmt.Fprintf(out, "Title: %q\n\n", r.Title())

	err = octtext.Walk(r, func(obj octtext.NamedObject, err error) error {
		d := obj.Descriptor
		fmt.Fprintf(out, "Object %q:\n", obj.Name)
		fmt.Fprintf(out, "  Shape: %s\n", d.Shape)
		fmt.Fprintf(out, "  Type: %s\n", d.Datatype())
		if d.Shape == octtext.String {
			fmt.Fprintf(out, "  Elements: %d\n", d.Elements)
		} else if d.Shape != octtext.Scalar {
			fmt.Fprintf(out, "  Dims: %d x %d\n", d.Rows(), d.Cols())
		}
		if err != nil {
			fmt.Fprintf(out, "  ERROR decoding: %v\n", err)
			return nil
		}
		if values {
			fmt.Fprintf(out, "  Value: %s\n", truncate(fmt.Sprint(obj.Value), width-len("  Value: ")))
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nObjects: %d\n", r.Count())
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if n < 4 || len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func exportCSV(out io.Writer, filename, name string) error {
	r, err := octtext.Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	for r.Valid() {
		if r.NextName() != name {
			r.Skip()
			continue
		}
		obj, ok := r.ReadObject()
		if !ok {
			return r.Err()
		}
		return writeCSV(out, obj)
	}
	if err := r.Err(); err != nil && !errors.Is(err, octtext.ErrEndOfStream) {
		return err
	}
	return fmt.Errorf("object %q not found", name)
}

func writeCSV(out io.Writer, obj octtext.NamedObject) error {
	if obj.Descriptor.Complex || obj.Descriptor.Shape == octtext.String {
		return fmt.Errorf("%w: %s object %q as csv", octtext.ErrUnsupported, obj.Descriptor.Datatype(), obj.Name)
	}

	v := reflect.ValueOf(obj.Value)
	switch obj.Descriptor.Shape {
	case octtext.Scalar:
		return delimited.WriteVector(out, []float64{toFloat(v)})
	case octtext.Vector, octtext.CoVector:
		return delimited.WriteVector(out, toFloats(v))
	case octtext.Matrix:
		m := make([][]float64, v.Len())
		for i := range m {
			m[i] = toFloats(v.Index(i))
		}
		return delimited.WriteMatrix(out, m)
	default:
		return fmt.Errorf("%w: %s object", octtext.ErrUnsupported, obj.Descriptor.Shape)
	}
}

func toFloats(v reflect.Value) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = toFloat(v.Index(i))
	}
	return out
}

func toFloat(v reflect.Value) float64 {
	return v.Convert(reflect.TypeFor[float64]()).Float()
}
