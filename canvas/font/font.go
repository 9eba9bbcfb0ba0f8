// Package font defines the stencil-based font/glyph interface drawn through
// by canvas.DrawText and canvas.DrawNumber.
//
// Grounded on spec Section 4.5's Font contract (stencil_for(char) with a
// fallback to blank for unknown characters); the Rust original references a
// "fonts" module from nrf52833_rgb_led_matrix/src/lib.rs that was not itself
// present in the retrieved source, so the concrete glyph tables here are
// original content behind the same opaque-stencil-provider interface the
// spec deliberately keeps out of scope for any one upstream glyph format.
package font

// Stencil is a small, immutable binary bitmap: 0 means transparent,
// non-zero means opaque. Bits is row-major, one byte per cell for
// simplicity (these glyphs are a handful of pixels across; packing bits
// would save nothing worth the complexity at this size).
type Stencil struct {
	Width, Height int
	bits          []byte
}

// NewStencil builds a Stencil from row-major bytes; len(bits) must equal
// width*height.
func NewStencil(width, height int, bits []byte) *Stencil {
	if len(bits) != width*height {
		panic("font: stencil byte count does not match width*height")
	}
	return &Stencil{Width: width, Height: height, bits: bits}
}

// At reports whether the cell at (x, y) is opaque. x and y must be in
// [0, Width) and [0, Height); At does not bounds-check, matching
// canvas.Canvas.At's documented hot-path contract.
func (s *Stencil) At(x, y int) bool {
	return s.bits[y*s.Width+x] != 0
}

// Font maps a rune to its Stencil. Implementations must return a non-nil
// fallback (typically blank) stencil for runes they do not recognize,
// rather than panicking -- an unsupported character should render as
// whitespace, not crash the refresh loop.
type Font interface {
	StencilFor(r rune) *Stencil
}
