package expr_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/complexsolver/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval_Literals(t *testing.T) {
	cases := []struct {
		in   string
		want float32
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2^3", 8},
		{"", 0},
		{"   ", 0},
		{"10-4-3", 3},
		{"3-2", 1},
		{"8/2/2", 2},
		{" 1 + 2 ", 3},
		{"-2^2", 4},
		{"2^-1", 0.5},
		{"--3", 3},
		{"~3+1", -2},
		{"−3", -3},
		{"1.5E3", 1500},
		{"2E-3", 0.002},
		{"2ᴇ−3", 0.002},
		{"1E+2", 100},
		{".5", 0.5},
		{"√16", 4},
		{"sqrt(9)+1", 4},
		{"ln e", 1},
		{"log 1000", 3},
		{"log(100)*2", 4},
		{"cos 0", 1},
		{"sin 0", 0},
		{"tan 0", 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := expr.Eval(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-5)
		})
	}
}

func TestEval_Constants(t *testing.T) {
	v, err := expr.Eval("π")
	require.NoError(t, err)
	assert.Equal(t, expr.Pi, v)

	v, err = expr.Eval("2*pi")
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, v, 1e-5)

	v, err = expr.Eval("ℯ")
	require.NoError(t, err)
	assert.Equal(t, expr.E, v)
}

// TestEval_UnaryBindsOneFactor checks that a function consumes one factor only.
func TestEval_UnaryBindsOneFactor(t *testing.T) {
	v, err := expr.Eval("√4*3")
	require.NoError(t, err)
	assert.Equal(t, float32(6), v)

	v, err = expr.Eval("√(4*4)")
	require.NoError(t, err)
	assert.Equal(t, float32(4), v)
}

func TestEval_DivideByZero(t *testing.T) {
	v, err := expr.Eval("5/0")
	assert.Equal(t, float32(5), v, "division is skipped")
	require.ErrorIs(t, err, expr.ErrDivideByZero)

	var se *expr.SyntaxError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Offset)

	v, err = expr.Eval("5/(1-1)*2", expr.WithBestEffort())
	require.NoError(t, err)
	assert.Equal(t, float32(10), v)
}

func TestEval_Malformed(t *testing.T) {
	cases := []struct {
		in      string
		partial float32
	}{
		{"(2+3", 5},
		{"2+3)", 5},
		{"2+", 2},
		{"*3", 0},
		{"2 x", 2},
		{"2^3^2", 8},
		{"1.2.3", 1.2},
		{"3\t+1", 3},
		{"E5", 0},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := expr.Eval(tc.in)
			require.ErrorIs(t, err, expr.ErrMalformed)
			assert.InDelta(t, tc.partial, v, 1e-6)

			// best effort: same value, no error
			v2, err := expr.Eval(tc.in, expr.WithBestEffort())
			require.NoError(t, err)
			assert.Equal(t, v, v2)
			assert.Equal(t, v, expr.Evaluate(tc.in))
		})
	}
}

func TestEval_NonFinite(t *testing.T) {
	_, err := expr.Eval("√-1")
	require.ErrorIs(t, err, expr.ErrNonFinite)

	_, err = expr.Eval("ln 0")
	require.ErrorIs(t, err, expr.ErrNonFinite)

	v := expr.Evaluate("ln 0")
	assert.True(t, math.IsInf(float64(v), -1))
}

// TestEval_LiteralBound checks that a literal longer than MaxLiteralLen is
// truncated without an error under either policy.
func TestEval_LiteralBound(t *testing.T) {
	kept := strings.Repeat("1", expr.MaxLiteralLen)
	want := expr.Evaluate(kept)

	cases := []struct {
		name string
		in   string
		want float32
	}{
		{"digits", kept + "11111", want},
		{"digits then operator", kept + "11111+1", want + 1},
		{"dropped fraction", kept + ".5", want},
		{"exact bound", kept, want},
		{"marker at the cut", strings.Repeat("1", expr.MaxLiteralLen-1) + "E5", expr.Evaluate(strings.Repeat("1", expr.MaxLiteralLen-1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := expr.Eval(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, v, expr.Evaluate(tc.in))
		})
	}

	toks := expr.Tokenize(kept + "999")
	require.Len(t, toks, 2)
	assert.Equal(t, expr.KindNumber, toks[0].Kind)
	assert.Equal(t, kept+"999", toks[0].Text)
	assert.Equal(t, expr.KindEOF, toks[1].Kind)
}

func TestEval_SyntaxErrorMessage(t *testing.T) {
	_, err := expr.Eval("2 x")
	require.Error(t, err)
	assert.Equal(t, `expr: malformed expression: unexpected token at offset 2 ("x")`, err.Error())

	_, err = expr.Eval("(1")
	require.Error(t, err)
	assert.Equal(t, "expr: malformed expression: missing ')' at end of input", err.Error())
}

func TestEval_DoesNotMutateInput(t *testing.T) {
	in := "(1+2)*3"
	cp := string([]byte(in))
	_ = expr.Evaluate(in)
	assert.Equal(t, cp, in)
}
