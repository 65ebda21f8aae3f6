package sheet

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/linear"
)

// ConstantLabel names the right-hand-side column.
const ConstantLabel = "Con"

// Sheet is an editable system of equations with a cursor.
type Sheet struct {
	a    *linear.Augmented
	row  int
	col  int
	opts Options
}

// New returns an empty sheet for n unknowns.
func New(n int, opts ...Option) (*Sheet, error) {
	a, err := linear.NewAugmented(n)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}

	return &Sheet{a: a, opts: gatherOptions(opts...)}, nil
}

// NewFromInput sizes a sheet from a typed expression, the way the size prompt
// works: the value is evaluated best-effort, truncated and clamped to
// [linear.MinUnknowns, linear.MaxUnknowns].
func NewFromInput(size string, opts ...Option) *Sheet {
	n := linear.ClampUnknowns(expr.Evaluate(size))
	s, err := New(n, opts...)
	if err != nil {
		// unreachable: ClampUnknowns only yields valid sizes
		panic(err)
	}

	return s
}

// Load replaces the matrix contents. a must have the sheet's size.
func (s *Sheet) Load(a *linear.Augmented) error {
	if a == nil {
		return fmt.Errorf("sheet: %w", linear.ErrNilMatrix)
	}
	if a.Unknowns() != s.a.Unknowns() {
		return fmt.Errorf("sheet: load %d unknowns into %d: %w", a.Unknowns(), s.a.Unknowns(), linear.ErrDimensionMismatch)
	}
	s.a = a.Clone()

	return nil
}

// Unknowns returns n.
func (s *Sheet) Unknowns() int { return s.a.Unknowns() }

// Cursor returns the current equation and column.
func (s *Sheet) Cursor() (row, col int) { return s.row, s.col }

// MoveTo places the cursor.
func (s *Sheet) MoveTo(row, col int) error {
	if _, err := s.a.At(row, col); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	s.row, s.col = row, col

	return nil
}

// Left moves to the previous equation, wrapping to the last.
func (s *Sheet) Left() {
	s.row = wrap(s.row-1, s.a.Rows())
}

// Right moves to the next equation, wrapping to the first.
func (s *Sheet) Right() {
	s.row = wrap(s.row+1, s.a.Rows())
}

// Up moves to the previous column, wrapping to the constant.
func (s *Sheet) Up() {
	s.col = wrap(s.col-1, s.a.Cols())
}

// Down moves to the next column, wrapping to X1.
func (s *Sheet) Down() {
	s.col = wrap(s.col+1, s.a.Cols())
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Enter evaluates the real and imaginary expressions, stores the value at
// the cursor and advances it. Under the strict evaluation policy an error
// leaves the cell and the cursor untouched.
func (s *Sheet) Enter(re, im string) error {
	reV, err := expr.Eval(re, s.opts.evalOpts...)
	if err != nil {
		return fmt.Errorf("sheet: real part: %w", err)
	}
	imV, err := expr.Eval(im, s.opts.evalOpts...)
	if err != nil {
		return fmt.Errorf("sheet: imaginary part: %w", err)
	}
	if err = s.a.Set(s.row, s.col, cplx.New(reV, imV)); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	s.advance()

	return nil
}

func (s *Sheet) advance() {
	s.col++
	if s.col > s.a.Unknowns() {
		s.col = 0
		s.row = wrap(s.row+1, s.a.Rows())
	}
}

// Set stores v at (row, col) without moving the cursor.
func (s *Sheet) Set(row, col int, v cplx.Complex) error {
	if err := s.a.Set(row, col, v); err != nil {
		return fmt.Errorf("sheet: %w", err)
	}

	return nil
}

// Cell returns the value at (row, col).
func (s *Sheet) Cell(row, col int) (cplx.Complex, error) {
	v, err := s.a.At(row, col)
	if err != nil {
		return cplx.Zero, fmt.Errorf("sheet: %w", err)
	}

	return v, nil
}

// Label returns "X1".."Xn" for coefficient columns and ConstantLabel for n.
func (s *Sheet) Label(col int) string {
	if col == s.a.Unknowns() {
		return ConstantLabel
	}

	return UnknownLabel(col)
}

// UnknownLabel returns the display name of unknown k (0-based).
func UnknownLabel(k int) string {
	return "X" + strconv.Itoa(k+1)
}

// Matrix returns a copy of the current augmented matrix.
func (s *Sheet) Matrix() *linear.Augmented { return s.a.Clone() }

// Solve runs the solver on the current contents.
func (s *Sheet) Solve() (*Result, error) {
	x, err := linear.Solve(s.a, s.opts.solveOpts...)
	if err != nil {
		return nil, fmt.Errorf("sheet: %w", err)
	}

	return newResult(x, s.opts.formatter), nil
}
