// Package sheet is the headless worksheet behind the interactive editor: it
// owns the augmented matrix, the edit cursor and the scrolled result view,
// and drives expr, linear and notation the way a calculator front end does.
//
// Editing model:
//   - The cursor sits on one equation (row) and one column; columns 0..n-1
//     are X1..Xn, column n is the constant ("Con").
//   - Left/Right step through equations, Up/Down through columns; both wrap.
//   - Enter takes a real and an imaginary expression, stores the cell and
//     advances to the next column, then to the next equation, wrapping back
//     to the first one.
//
// Result model: one Entry per unknown with rectangular, polar and phasor
// strings; PageSize entries are visible at a time and every line shares a
// horizontal scroll offset.
package sheet
