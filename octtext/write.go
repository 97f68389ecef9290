package octtext

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/robert-malhotra/go-octtext/internal/dtype"
	"github.com/robert-malhotra/go-octtext/internal/message"
	"github.com/robert-malhotra/go-octtext/internal/object"
)

// Write writes value as an object called name and reports whether anything
// was written. The layout follows from the value:
//
//	numeric or complex value        Scalar
//	string                          String
//	[]string                        String with one element per entry
//	slice or array of numbers       Vector (a single row)
//	slice of equal length slices    Matrix, demoted to Vector or CoVector
//	                                when it has one row or one column
//
// Numbers may be any Go integer or float type, complex64, complex128 or
// Complex[T]. Empty slices write nothing and return false with a nil error.
func (w *Writer) Write(name string, value any) (bool, error) {
	return w.write(name, value, false)
}

// WriteColumn writes a one dimensional value as a column (CoVector) instead
// of a row. Other values are rejected with ErrUnsupported.
func (w *Writer) WriteColumn(name string, value any) (bool, error) {
	return w.write(name, value, true)
}

// plan is an object ready to be written.
type plan struct {
	desc    Descriptor
	tokens  [][]string // data rows of numeric objects
	strings []string
}

func (w *Writer) write(name string, value any, column bool) (bool, error) {
	if w.closed {
		return false, ErrClosed
	}
	if err := w.w.Err(); err != nil {
		return false, err
	}
	if err := checkName(name); err != nil {
		return false, err
	}

	p, err := inferPlan(reflect.ValueOf(value), column)
	if err != nil {
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	if p == nil {
		w.log.Debug("empty value not written", "name", name)
		return false, nil
	}

	if err := object.WriteHeader(w.w, name, p.desc, w.dims); err != nil {
		return false, err
	}
	switch p.desc.Shape {
	case String:
		err = object.EncodeStrings(w.w, p.strings)
	case Scalar:
		err = object.EncodeScalar(w.w, p.tokens[0][0])
	default:
		err = object.EncodeGrid(w.w, p.desc.Rows(), p.desc.Cols(), func(r, c int) string {
			return p.tokens[r][c]
		})
	}
	if err != nil {
		return false, err
	}

	w.log.Debug("wrote object", "name", name, "shape", p.desc.Shape, "kind", p.desc.Kind, "complex", p.desc.Complex)
	return true, nil
}

func checkName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	return nil
}

// inferPlan derives the descriptor and tokens of v. It returns nil for empty
// containers.
func inferPlan(v reflect.Value, column bool) (*plan, error) {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: nil %s", ErrUnsupported, v.Type())
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, fmt.Errorf("%w: nil value", ErrUnsupported)
	}

	t := v.Type()
	isList := t.Kind() == reflect.Slice || t.Kind() == reflect.Array
	if column && (!isList || isList2D(t.Elem()) || t.Elem().Kind() == reflect.String) {
		return nil, fmt.Errorf("%w: %s as a column", ErrUnsupported, t)
	}

	switch {
	case t.Kind() == reflect.String:
		s := v.String()
		return &plan{desc: message.NewString(1, len(s)), strings: []string{s}}, nil

	case isList && t.Elem().Kind() == reflect.String:
		if v.Len() == 0 {
			return nil, nil
		}
		ss := make([]string, v.Len())
		for i := range ss {
			ss[i] = v.Index(i).String()
		}
		return &plan{desc: message.NewString(len(ss), len(ss[0])), strings: ss}, nil

	case isList && isList2D(t.Elem()):
		return inferMatrix(v)

	case isList:
		return inferVector(v, column)

	default:
		kind, cplx, err := numericKind(t)
		if err != nil {
			return nil, err
		}
		tok, err := dtype.FormatValue(v)
		if err != nil {
			return nil, err
		}
		return &plan{desc: message.NewScalar(kind, cplx), tokens: [][]string{{tok}}}, nil
	}
}

func isList2D(elem reflect.Type) bool {
	return elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array
}

func inferVector(v reflect.Value, column bool) (*plan, error) {
	kind, cplx, err := numericKind(v.Type().Elem())
	if err != nil {
		return nil, err
	}
	n := v.Len()
	if n == 0 {
		return nil, nil
	}

	toks := make([]string, n)
	for i := range toks {
		if toks[i], err = dtype.FormatValue(v.Index(i)); err != nil {
			return nil, err
		}
	}

	if column {
		rows := make([][]string, n)
		for i, tok := range toks {
			rows[i] = []string{tok}
		}
		return &plan{desc: message.NewColumn(kind, cplx, n), tokens: rows}, nil
	}
	return &plan{desc: message.NewMatrix(kind, cplx, 1, n), tokens: [][]string{toks}}, nil
}

func inferMatrix(v reflect.Value) (*plan, error) {
	kind, cplx, err := numericKind(v.Type().Elem().Elem())
	if err != nil {
		return nil, err
	}
	rows := v.Len()
	if rows == 0 {
		return nil, nil
	}
	cols := v.Index(0).Len()
	for i := 1; i < rows; i++ {
		if n := v.Index(i).Len(); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, n, cols)
		}
	}
	if cols == 0 {
		return nil, nil
	}

	tokens := make([][]string, rows)
	for i := range tokens {
		row := v.Index(i)
		tokens[i] = make([]string, cols)
		for j := range tokens[i] {
			if tokens[i][j], err = dtype.FormatValue(row.Index(j)); err != nil {
				return nil, err
			}
		}
	}
	return &plan{desc: message.NewMatrix(kind, cplx, rows, cols), tokens: tokens}, nil
}

// numericKind returns the element kind of a numeric Go type.
func numericKind(t reflect.Type) (Kind, bool, error) {
	kind, cplx, err := dtype.KindOf(t)
	if err != nil || kind == Char {
		return 0, false, fmt.Errorf("%w: %s", ErrUnsupported, t)
	}
	return kind, cplx, nil
}
