// Package rgb75 drives a HUB75 RGB LED matrix panel over individually
// addressable GPIO, using row-pair scanning and binary-code modulation
// to render a canvas.Canvas onto the panel.
//
// Grounded on the teacher's tinygo.org/x/drivers/rgb75 package and on
// original_source/nrf52833_rgb_led_matrix/src/ledmatrix.rs. Unlike the
// teacher's Device, which bundles pin driving, the framebuffer, and the
// interrupt-driven row/bitplane state machine into one struct, this
// package only drives pins for a caller-supplied canvas.Canvas and row or
// bitplane index; the scheduling state machine lives in package
// rgb75/scheduler, matching the original's separation between LedMatrix
// (stateless pin sequencer) and the refresh engine that calls it.
package rgb75

import (
	"errors"

	"github.com/tinygo-community/rgb75-matrix/canvas"
)

var (
	// ErrInvalidDataPins is returned by New when Pins is incomplete.
	ErrInvalidDataPins = errors.New("rgb75: all six RGB data pins and CLK/LAT/OE must be set")
	// ErrInvalidHeight is returned by New when height exceeds the number of
	// rows addressable by the given row pin count, or isn't even.
	ErrInvalidHeight = errors.New("rgb75: invalid matrix height for given number of row address pins")
)

// BitPlane identifies one binary-code-modulation bit position, from the
// least to the most significant bit of a color channel.
type BitPlane uint8

// MaxBitPlane is the highest bit position rgbBit can extract from an
// 8-bit canvas.Color channel value.
const MaxBitPlane BitPlane = 7

// Pins names every GPIO line a HUB75 ribbon cable carries. R1/G1/B1 drive
// the top half of the currently selected row pair, R2/G2/B2 the bottom
// half. Row holds the address lines A, B, C, D, ... ordered LSB first;
// its length determines the maximum addressable height: Height <=
// 2*2^len(Row).
type Pins struct {
	R1, G1, B1 Pin
	R2, G2, B2 Pin
	Row        []Pin
	CLK, LAT, OE Pin
}

// Config holds the panel dimensions for a Matrix.
type Config struct {
	Width  int // (pixels) total width of the panel chain; 0 selects DefaultWidth.
	Height int // (pixels) total height of the panel chain; 0 selects the maximum addressable height.
}

// Default panel dimensions, matching a single 64x32 HUB75 panel.
const (
	DefaultWidth  = 64
	DefaultHeight = 32
)

// Matrix drives one HUB75 panel chain's GPIO pins. It holds no
// framebuffer of its own: callers pass a *canvas.Canvas to DrawCanvasLine
// for each row pair of each refresh interrupt.
type Matrix struct {
	width, height int
	numAddrRows   int // number of row pairs = height/2

	pins Pins

	prevRow int // last row address written; -1 forces the first write
}

// New returns a Matrix driving the given pins, with validated dimensions
// from cfg. The returned Matrix's pins are not yet configured as outputs;
// call Configure before drawing.
func New(pins Pins, cfg Config) (*Matrix, error) {
	if pins.R1 == nil || pins.G1 == nil || pins.B1 == nil ||
		pins.R2 == nil || pins.G2 == nil || pins.B2 == nil ||
		pins.CLK == nil || pins.LAT == nil || pins.OE == nil || len(pins.Row) == 0 {
		return nil, ErrInvalidDataPins
	}

	maxHeight := 1 << (len(pins.Row) + 1)

	width := cfg.Width
	if width == 0 {
		width = DefaultWidth
	}

	height := cfg.Height
	if height == 0 {
		height = maxHeight
	} else if height > maxHeight || height%2 != 0 {
		return nil, ErrInvalidHeight
	}

	return &Matrix{
		width:       width,
		height:      height,
		numAddrRows: height / 2,
		pins:        pins,
		prevRow:     -1,
	}, nil
}

// Width returns the panel width in pixels.
func (m *Matrix) Width() int { return m.width }

// Height returns the panel height in pixels.
func (m *Matrix) Height() int { return m.height }

// NumAddrRows returns the number of distinct row addresses the matrix
// cycles through; each address simultaneously drives a top-half row and
// its corresponding bottom-half row NumAddrRows below it.
func (m *Matrix) NumAddrRows() int { return m.numAddrRows }

// Configure sets every pin to a push-pull output and parks the matrix in
// a blanked state: output disabled, shift registers cleared, and address
// lines at row 0.
func (m *Matrix) Configure() {
	for _, p := range m.allPins() {
		p.ConfigureOutput()
	}

	m.pins.OE.High() // active-low output enable: hold display blanked
	m.pins.LAT.Low()
	m.pins.CLK.Low()
	m.pins.R1.Low()
	m.pins.G1.Low()
	m.pins.B1.Low()
	m.pins.R2.Low()
	m.pins.G2.Low()
	m.pins.B2.Low()
	for _, row := range m.pins.Row {
		row.Low()
	}

	// Clear the shift registers: clock out a full row width of zero bits
	// with every data line held low, then latch.
	for i := 0; i < m.width; i++ {
		m.pins.CLK.High()
		m.pins.CLK.Low()
	}
	m.pins.LAT.High()
	m.pins.LAT.Low()

	m.prevRow = -1
}

func (m *Matrix) allPins() []Pin {
	pins := make([]Pin, 0, 9+len(m.pins.Row))
	pins = append(pins, m.pins.R1, m.pins.G1, m.pins.B1, m.pins.R2, m.pins.G2, m.pins.B2, m.pins.CLK, m.pins.LAT, m.pins.OE)
	pins = append(pins, m.pins.Row...)
	return pins
}

// latchRow drives the address lines to select row (0 <= row < numAddrRows),
// which simultaneously activates canvas row `row` and canvas row
// `row+numAddrRows`. It is a no-op if row is already selected.
func (m *Matrix) latchRow(row int) {
	if row == m.prevRow {
		return
	}
	m.prevRow = row
	for i := range m.pins.Row {
		m.pins.Row[i].Set(row&(1<<i) != 0)
	}
}

// rgbBit extracts bit n of each channel of c, MSB-first-agnostic: callers
// choose which BitPlane to sample.
func rgbBit(c canvas.Color, bit BitPlane) (r, g, b bool) {
	mask := uint8(1) << bit
	return c.R&mask != 0, c.G&mask != 0, c.B&mask != 0
}

// DrawCanvasLine shifts out one bit-plane of color data for row pair row
// from src, pulsing CLK once per column, then latches that freshly
// shifted data to the panel's output register: it blanks output, selects
// row (0 <= row < NumAddrRows), pulses LAT, and re-enables output. The
// shift and the latch always use the same (row, bit) pair within a
// single call, so the data displayed after DrawCanvasLine returns is
// exactly the data it just shifted -- never a previous call's leftovers.
//
// DrawCanvasLine does not bounds-check row against src's dimensions; the
// caller is responsible for ensuring src covers the configured panel
// size.
func (m *Matrix) DrawCanvasLine(src *canvas.Canvas, row int, bit BitPlane) {
	topY := row
	botY := row + m.numAddrRows
	for x := 0; x < m.width; x++ {
		r1, g1, b1 := rgbBit(src.At(x, topY), bit)
		r2, g2, b2 := rgbBit(src.At(x, botY), bit)

		m.pins.R1.Set(r1)
		m.pins.G1.Set(g1)
		m.pins.B1.Set(b1)
		m.pins.R2.Set(r2)
		m.pins.G2.Set(g2)
		m.pins.B2.Set(b2)

		m.pins.CLK.High()
		m.pins.CLK.Low()
	}

	m.pins.OE.High()
	m.latchRow(row)
	m.pins.LAT.High()
	m.pins.LAT.Low()
	m.pins.OE.Low()
}

// DrawCanvas draws every row pair of src for the given bit plane, in
// order. It is a convenience for callers (tests, simple demos) that do
// not need per-row interrupt-driven timing control; the interrupt-driven
// refresh engine in rgb75/scheduler calls DrawCanvasLine directly instead.
func (m *Matrix) DrawCanvas(src *canvas.Canvas, bit BitPlane) {
	for row := 0; row < m.numAddrRows; row++ {
		m.DrawCanvasLine(src, row, bit)
	}
}

// Blank disables output without altering shifted-in data, leaving the
// panel dark until the next DrawCanvasLine's OE.Low().
func (m *Matrix) Blank() {
	m.pins.OE.High()
}

// DelayTimer pads a busy-loop draw with a real microsecond delay. It is
// satisfied by internal/nrftimer.Timer; tests use a fake.
type DelayTimer interface {
	DelayMicros(us uint32)
}

// DrawCanvasWithDelayBuffer behaves like DrawCanvas, but pauses for
// lineDelayMicros after every row pair using timer. Passing a nil timer
// (or a zero delay) behaves exactly like DrawCanvas; this is meant for
// synchronous demos that want an even, software-timed frame rate without
// wiring up the interrupt-driven scheduler.
func (m *Matrix) DrawCanvasWithDelayBuffer(src *canvas.Canvas, bit BitPlane, timer DelayTimer, lineDelayMicros uint32) {
	for row := 0; row < m.numAddrRows; row++ {
		m.DrawCanvasLine(src, row, bit)
		if timer != nil && lineDelayMicros > 0 {
			timer.DelayMicros(lineDelayMicros)
		}
	}
}
