// SPDX-License-Identifier: MIT

package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/complexsolver/cplx"
)

// ErrUnknownMode is returned by ParseMode for an unrecognized name.
var ErrUnknownMode = errors.New("notation: unknown display mode")

// Mode selects a display rendering.
type Mode uint8

const (
	ModeRectangular Mode = iota
	ModePolarRadians
	ModePhasorDegrees
	ModeEngineering
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeRectangular, ModePolarRadians, ModePhasorDegrees, ModeEngineering}

var modeNames = map[Mode]string{
	ModeRectangular:   "rectangular",
	ModePolarRadians:  "polar",
	ModePhasorDegrees: "phasor",
	ModeEngineering:   "engineering",
}

// String returns the canonical mode name.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts a canonical name or a short alias
// (rect, rad, deg, eng), case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangular", "rect", "r":
		return ModeRectangular, nil
	case "polar", "polar_radians", "rad":
		return ModePolarRadians, nil
	case "phasor", "phasor_degrees", "deg":
		return ModePhasorDegrees, nil
	case "engineering", "eng", "real":
		return ModeEngineering, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Format renders z with the default formatter.
func Format(z cplx.Complex, m Mode) string {
	return DefaultFormatter.Format(z, m)
}

// Format renders z in mode m. ModeEngineering renders the real part only.
func (f Formatter) Format(z cplx.Complex, m Mode) string {
	switch m {
	case ModePolarRadians:
		return f.PolarRadians(z)
	case ModePhasorDegrees:
		return f.PhasorDegrees(z)
	case ModeEngineering:
		return Engineering(z.Re)
	default:
		return Rectangular(z)
	}
}
