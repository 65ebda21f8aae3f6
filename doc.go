// Package complexsolver solves small systems of linear equations whose
// coefficients are complex numbers, the way a pocket calculator does: every
// coefficient is typed as an arithmetic expression, the system is reduced
// by Gaussian elimination in single precision, and each unknown is shown in
// rectangular, polar and phasor form.
//
// 🚀 What is in the box?
//
//	• Complex arithmetic on float32 pairs with a total division
//	• An expression evaluator: + - * / ^, sqrt sin cos tan ln log, pi, e
//	• Engineering-notation and polar/phasor renderers
//	• A 2..5 unknown solver with partial pivoting and singularity checks
//	• A worksheet model, an interactive editor and a CLI on top
//
// ✨ Two policies everywhere:
//
//   - Hardened (default): malformed input, division by zero, singular
//     systems and non-finite results are reported as errors.
//   - Legacy: every call succeeds; a zero denominator yields zero and
//     malformed input evaluates as far as it parses.
//
// Packages:
//
//	cplx/              Complex value type and arithmetic
//	expr/              tokenizer and recursive-descent evaluator
//	notation/          engineering, rectangular, polar and phasor strings
//	linear/            augmented matrix, Solve, Residual
//	sheet/             cursor, cell entry and scrolled result view
//	cmd/complexsolver  solve, eval, format, tui and history commands
//
// Quick example, x1 + x2 = 3 and 2·x1 − x2 = 0:
//
//	| 1   1 | 3 |       x1 = 1
//	| 2  −1 | 0 |  ──▶  x2 = 2
//
//	go install github.com/katalvlaran/complexsolver/cmd/complexsolver@latest
package complexsolver
