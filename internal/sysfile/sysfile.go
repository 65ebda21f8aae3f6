// Package sysfile reads and writes systems of equations as YAML.
//
// A file lists one row per equation: n coefficients followed by the
// constant. Each cell is either a bare expression (real part only) or a
// mapping with re and im expressions:
//
//	unknowns: 2
//	mode: phasor
//	equations:
//	  - [1, 1, 3]
//	  - [2, "-1", {re: "0", im: "sqrt(2)"}]
//
// Unquoted YAML floats such as 1e-3 keep their exponent; inside a quoted
// expression a lower-case e is Euler's number, so write "1E-3" there.
package sysfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
)

var (
	// ErrShape is returned when the equation table is not n×(n+1).
	ErrShape = errors.New("sysfile: equations must be n rows of n+1 cells")

	// ErrCell is returned when a cell is neither a scalar nor a re/im mapping.
	ErrCell = errors.New("sysfile: cell must be an expression or {re, im}")
)

// Cell holds the two expressions of one complex entry.
type Cell struct {
	Re string `yaml:"re,omitempty"`
	Im string `yaml:"im,omitempty"`
}

// UnmarshalYAML accepts a bare scalar as the real part.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		re, err := exprText(node)
		if err != nil {
			return err
		}
		*c = Cell{Re: re}

		return nil
	case yaml.MappingNode:
		var parts struct {
			Re yaml.Node `yaml:"re"`
			Im yaml.Node `yaml:"im"`
		}
		if err := node.Decode(&parts); err != nil {
			return err
		}
		re, err := exprText(&parts.Re)
		if err != nil {
			return err
		}
		im, err := exprText(&parts.Im)
		if err != nil {
			return err
		}
		*c = Cell{Re: re, Im: im}

		return nil
	}

	return fmt.Errorf("%w (line %d)", ErrCell, node.Line)
}

// exprText returns the expression source of a scalar node. A YAML float
// gets an upper-case exponent marker so 1e-3 stays one literal.
func exprText(node *yaml.Node) (string, error) {
	if node.Kind == 0 {
		return "", nil
	}
	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("%w (line %d)", ErrCell, node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		return "", nil
	case "!!float":
		return strings.ReplaceAll(node.Value, "e", "E"), nil
	}

	return node.Value, nil
}

// MarshalYAML writes real-only cells as scalars.
func (c Cell) MarshalYAML() (interface{}, error) {
	if c.Im == "" {
		return c.Re, nil
	}
	type plain Cell

	return plain(c), nil
}

// File is the document form of a system.
type File struct {
	Unknowns  int      `yaml:"unknowns,omitempty"`
	Mode      string   `yaml:"mode,omitempty"`
	Equations [][]Cell `yaml:"equations"`
}

// Load decodes a File from r. Unknown keys are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("sysfile: decode: %w", err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sysfile: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}

func (f *File) check() error {
	n := len(f.Equations)
	if f.Unknowns != 0 && f.Unknowns != n {
		return fmt.Errorf("%w: unknowns is %d but %d equations given", ErrShape, f.Unknowns, n)
	}
	if n < linear.MinUnknowns || n > linear.MaxUnknowns {
		return fmt.Errorf("sysfile: %d equations: %w", n, linear.ErrBadSize)
	}
	for i, row := range f.Equations {
		if len(row) != n+1 {
			return fmt.Errorf("%w: equation %d has %d cells", ErrShape, i+1, len(row))
		}
	}
	if f.Mode != "" {
		if _, err := notation.ParseMode(f.Mode); err != nil {
			return fmt.Errorf("sysfile: %w", err)
		}
	}

	return nil
}

// DisplayMode returns the file's preferred rendering, if it names one.
func (f *File) DisplayMode() (notation.Mode, bool) {
	if f.Mode == "" {
		return notation.ModeRectangular, false
	}
	m, err := notation.ParseMode(f.Mode)

	return m, err == nil
}

// Build evaluates every cell and returns the augmented matrix. The first
// failing cell is reported as "equation i, X<j>" (1-based).
func (f *File) Build(opts ...expr.Option) (*linear.Augmented, error) {
	if err := f.check(); err != nil {
		return nil, err
	}

	n := len(f.Equations)
	a, err := linear.NewAugmented(n)
	if err != nil {
		return nil, fmt.Errorf("sysfile: %w", err)
	}
	for i, row := range f.Equations {
		for j, cell := range row {
			v, err := cell.Value(opts...)
			if err != nil {
				return nil, fmt.Errorf("sysfile: equation %d, %s: %w", i+1, columnName(j, n), err)
			}
			if err = a.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("sysfile: %w", err)
			}
		}
	}

	return a, nil
}

// Value evaluates both parts of c. An empty part is zero.
func (c Cell) Value(opts ...expr.Option) (cplx.Complex, error) {
	re, err := expr.Eval(c.Re, opts...)
	if err != nil {
		return cplx.Zero, fmt.Errorf("re: %w", err)
	}
	im, err := expr.Eval(c.Im, opts...)
	if err != nil {
		return cplx.Zero, fmt.Errorf("im: %w", err)
	}

	return cplx.New(re, im), nil
}

func columnName(j, n int) string {
	if j == n {
		return "constant"
	}

	return "X" + strconv.Itoa(j+1)
}

// FromMatrix captures a as a File with literal cells.
func FromMatrix(a *linear.Augmented, mode string) *File {
	f := &File{Unknowns: a.Unknowns(), Mode: mode, Equations: make([][]Cell, a.Rows())}
	for i := range f.Equations {
		row := a.Row(i)
		cells := make([]Cell, len(row))
		for j, v := range row {
			cells[j] = Cell{Re: literal(v.Re)}
			if v.Im != 0 {
				cells[j].Im = literal(v.Im)
			}
		}
		f.Equations[i] = cells
	}

	return f
}

// literal formats x so the expression lexer reads it back exactly: the
// exponent marker must be upper case, lower-case e is Euler's number.
func literal(x float32) string {
	return strconv.FormatFloat(float64(x), 'G', -1, 32)
}

// Encode writes f as YAML.
func Encode(w io.Writer, f *File) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("sysfile: encode: %w", err)
	}

	return enc.Close()
}
