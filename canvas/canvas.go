package canvas

import (
	"errors"
	"strconv"

	"github.com/tinygo-community/rgb75-matrix/canvas/font"
)

// ErrDimensionMismatch reports that two canvases that must share
// dimensions (for example the two buffers swapped by the scheduler) do
// not. No function in this module returns it: the scheduler's SwapCanvas
// and CopyCanvas do not compare canvas sizes.
var ErrDimensionMismatch = errors.New("canvas: dimension mismatch")

// BlitMode selects how DrawCanvas combines a source canvas with the
// receiver.
type BlitMode uint8

const (
	// BlitReplace copies every source pixel, including Black ones.
	BlitReplace BlitMode = iota
	// BlitTransparentBlack copies every source pixel except those equal to
	// Black, which leave the destination pixel untouched.
	BlitTransparentBlack
)

// Canvas is a row-major Height x Width grid of Color. Unlike the const
// generics used by the Rust original (Canvas<const WIDTH, const HEIGHT>),
// Go has no const generics, so dimensions are runtime fields set once at
// construction -- the same convention the teacher's rgb75.Device already
// uses for its own framebuffer (buf [][]color.RGBA sized from Config).
type Canvas struct {
	width, height int
	rows          [][]Color
}

// NewCanvas allocates a width x height canvas, all pixels Black.
func NewCanvas(width, height int) *Canvas {
	rows := make([][]Color, height)
	for y := range rows {
		rows[y] = make([]Color, width)
	}
	return &Canvas{width: width, height: height, rows: rows}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear sets every pixel to color.
func (c *Canvas) Clear(color Color) {
	for y := range c.rows {
		row := c.rows[y]
		for x := range row {
			row[x] = color
		}
	}
}

// At returns the pixel at (x, y). The caller must keep x, y in bounds; At
// performs no bounds checking, mirroring DrawCanvasLine's documented contract
// in the matrix driver (hot path, already bounds-checked by its own caller).
func (c *Canvas) At(x, y int) Color {
	return c.rows[y][x]
}

// DrawPixel sets the pixel at (x, y) to color. Out-of-range coordinates are
// silently dropped, not clamped.
func (c *Canvas) DrawPixel(x, y int, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.rows[y][x] = color
}

// DrawRectangle fills the intersection of [x, x+w) x [y, y+h) with the
// canvas bounds with color.
func (c *Canvas) DrawRectangle(x, y, w, h int, color Color) {
	xMin, yMin := max(x, 0), max(y, 0)
	xMax, yMax := min(x+w, c.width), min(y+h, c.height)
	for py := yMin; py < yMax; py++ {
		row := c.rows[py]
		for px := xMin; px < xMax; px++ {
			row[px] = color
		}
	}
}

// DrawStencil paints color onto every pixel under a non-zero stencil cell
// that lands inside the canvas. Cells at value 0 are left unchanged
// (transparent), including cells that would have landed out of bounds.
func (c *Canvas) DrawStencil(x, y int, s *font.Stencil, color Color) {
	for sy := 0; sy < s.Height; sy++ {
		py := y + sy
		if py < 0 || py >= c.height {
			continue
		}
		for sx := 0; sx < s.Width; sx++ {
			if !s.At(sx, sy) {
				continue
			}
			px := x + sx
			if px < 0 || px >= c.width {
				continue
			}
			c.rows[py][px] = color
		}
	}
}

// DrawCanvas blits src over the receiver at (x, y), truncated to the
// receiver's bounds.
func (c *Canvas) DrawCanvas(x, y int, src *Canvas, mode BlitMode) {
	for sy := 0; sy < src.height; sy++ {
		py := y + sy
		if py < 0 || py >= c.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			px := x + sx
			if px < 0 || px >= c.width {
				continue
			}
			color := src.rows[sy][sx]
			if mode == BlitTransparentBlack && color == Black {
				continue
			}
			c.rows[py][px] = color
		}
	}
}

// TextOptions controls DrawText and DrawNumber layout.
type TextOptions struct {
	Color      Color
	Interspace int // pixels of blank space between successive glyphs
}

// DrawText renders s left to right starting at (x, y) using f, advancing by
// stencil-width + opts.Interspace between glyphs. It returns the x
// coordinate one interspace past the last glyph drawn.
func (c *Canvas) DrawText(x, y int, s string, f font.Font, opts TextOptions) int {
	cursor := x
	for _, r := range s {
		stencil := f.StencilFor(r)
		c.DrawStencil(cursor, y, stencil, opts.Color)
		cursor += stencil.Width + opts.Interspace
	}
	return cursor
}

// DrawNumber renders the base-10 digits of the non-negative integer n left
// to right with the same advance rule as DrawText. n=0 renders as "0"; n>0
// never renders leading zeros. DrawNumber panics if n is negative, since the
// panel has no glyph for a minus sign in this module's built-in fonts.
func (c *Canvas) DrawNumber(x, y int, n int, f font.Font, opts TextOptions) int {
	if n < 0 {
		panic("canvas: DrawNumber requires a non-negative n")
	}
	return c.DrawText(x, y, strconv.Itoa(n), f, opts)
}
