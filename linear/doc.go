// Package linear solves small systems of linear equations with complex
// coefficients by Gaussian elimination.
//
// 🚀 What is linear?
//
//	A system of n equations in n unknowns is held as an n×(n+1) augmented
//	matrix (Augmented): columns 0..n-1 are coefficients, column n is the
//	constant term. Solve reduces a private copy to upper-triangular form and
//	back-substitutes into a fresh solution Vector.
//
// ✨ Two policies:
//   - hardened (default): partial pivoting (largest |pivot| in the column),
//     ErrSingular when a pivot vanishes relative to the matrix scale, and
//     ErrNaNInf for non-finite input.
//   - legacy (WithLegacy): row i always pivots column i and division by a
//     zero complex value yields zero, so every call "succeeds"; a singular
//     system silently returns a finite but meaningless vector.
//
// Both policies return the same solution for well-conditioned systems.
//
// ⚙️ Usage:
//
//	a, _ := linear.FromRows([][]cplx.Complex{
//		{cplx.New(1, 0), cplx.New(1, 0), cplx.New(3, 0)},
//		{cplx.New(2, 0), cplx.New(-1, 0), cplx.New(0, 0)},
//	})
//	x, err := linear.Solve(a) // x = [1, 2]
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) scratch copy + O(n) solution
package linear
