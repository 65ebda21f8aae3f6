package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/complexsolver/cplx"
	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/internal/config"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, notation.ModeRectangular, cfg.DisplayMode())
	assert.Equal(t, notation.DefaultAngleSeparator, cfg.Display.AngleSeparator)
	assert.Equal(t, "1·0.0000d", cfg.Formatter().PhasorDegrees(cplx.New(1, 0)))
	assert.Equal(t, config.DefaultWidth, cfg.Display.Width)
	assert.True(t, cfg.Solver.Pivoting)
	assert.False(t, cfg.Solver.Legacy)
	assert.InDelta(t, linear.DefaultEpsilon, cfg.Solver.Epsilon, 1e-12)
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, config.DefaultHistoryPath, cfg.History.Path)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complexsolver.toml")
	body := `
[display]
mode = "phasor"
angle_separator = "<"

[solver]
legacy = true

[parser]
best_effort = true

[history]
enabled = true
path = "/tmp/h.db"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, notation.ModePhasorDegrees, cfg.DisplayMode())
	assert.Equal(t, "<", cfg.Display.AngleSeparator)
	assert.Equal(t, config.DefaultWidth, cfg.Display.Width, "unset keys keep defaults")
	assert.True(t, cfg.Solver.Legacy)
	assert.False(t, cfg.Solver.Pivoting, "legacy without pivoting key turns pivoting off")
	assert.True(t, cfg.Parser.BestEffort)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "/tmp/h.db", cfg.History.Path)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"mode":        "[display]\nmode = \"hex\"",
		"width":       "[display]\nwidth = -3",
		"epsilon":     "[solver]\nepsilon = -1.0",
		"unknown key": "[solver]\nturbo = true",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(text)
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Decode("[display")
	require.Error(t, err)
}

func TestSolverOptions(t *testing.T) {
	// zero leading pivot: only pivoting policies recover [3, 2]
	a, err := linear.FromRows([][]cplx.Complex{
		{cplx.Zero, cplx.New(1, 0), cplx.New(2, 0)},
		{cplx.New(1, 0), cplx.Zero, cplx.New(3, 0)},
	})
	require.NoError(t, err)

	cases := []struct {
		name    string
		text    string
		want    linear.Vector
		wantErr error
	}{
		{"hardened", "", linear.Vector{cplx.New(3, 0), cplx.New(2, 0)}, nil},
		{"no pivot", "[solver]\npivoting = false", nil, linear.ErrSingular},
		{"legacy", "[solver]\nlegacy = true", linear.Vector{cplx.Zero, cplx.Zero}, nil},
		{"legacy no pivot", "[solver]\nlegacy = true\npivoting = false", linear.Vector{cplx.Zero, cplx.Zero}, nil},
		{"legacy pivot", "[solver]\nlegacy = true\npivoting = true", linear.Vector{cplx.New(3, 0), cplx.New(2, 0)}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Decode(tc.text)
			require.NoError(t, err)

			x, err := linear.Solve(a, cfg.SolverOptions()...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, x, 2)
			for k := range x {
				assert.True(t, cplx.ApproxEqual(tc.want[k], x[k], 1e-6), "x[%d] = %v", k, x[k])
			}
		})
	}
}

func TestParserOptions(t *testing.T) {
	strict := config.Default()
	_, err := expr.Eval("1/0", strict.ParserOptions()...)
	require.ErrorIs(t, err, expr.ErrDivideByZero)

	loose, err := config.Decode("[parser]\nbest_effort = true")
	require.NoError(t, err)
	v, err := expr.Eval("1/0", loose.ParserOptions()...)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)
}

func TestFormatter(t *testing.T) {
	cfg, err := config.Decode("[display]\nangle_separator = \"<\"")
	require.NoError(t, err)
	assert.Equal(t, "1<0.0000d", cfg.Formatter().PhasorDegrees(cplx.New(1, 0)))
}
