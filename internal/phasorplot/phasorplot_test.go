package phasorplot_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/internal/phasorplot"
)

var solution = []cplx.Complex{cplx.New(1, 0), cplx.New(-0.5, 2), cplx.New(0, -3)}

func TestNew_Axes(t *testing.T) {
	p, err := phasorplot.New(solution, "solution")
	require.NoError(t, err)
	assert.Equal(t, "solution", p.Title.Text)
	assert.InDelta(t, -3*1.15, p.X.Min, 1e-9)
	assert.InDelta(t, 3*1.15, p.Y.Max, 1e-9)
}

func TestNew_Zero(t *testing.T) {
	p, err := phasorplot.New([]cplx.Complex{cplx.Zero, cplx.Zero}, "")
	require.NoError(t, err)
	assert.InDelta(t, 1.15, p.X.Max, 1e-9)
}

func TestNew_Errors(t *testing.T) {
	_, err := phasorplot.New(nil, "")
	require.ErrorIs(t, err, phasorplot.ErrEmpty)

	_, err = phasorplot.New([]cplx.Complex{cplx.New(float32(math.Inf(1)), 0)}, "")
	require.ErrorIs(t, err, phasorplot.ErrNonFinite)
}

func TestWrite_SVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, phasorplot.Write(&buf, solution, "solution", "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestSave_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phasors.png")
	require.NoError(t, phasorplot.Save(solution, "solution", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}
