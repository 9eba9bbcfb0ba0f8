package rgb75

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/tinygo-community/rgb75-matrix/canvas"
)

// fakePin is a host-side Pin recorder: it tracks configuration and every
// level change so tests can assert on the pulse sequence a Matrix drives,
// without any real GPIO hardware.
type fakePin struct {
	name       string
	configured bool
	state      bool
	history    []bool
}

func (p *fakePin) ConfigureOutput() { p.configured = true }
func (p *fakePin) High()            { p.Set(true) }
func (p *fakePin) Low()             { p.Set(false) }
func (p *fakePin) Set(state bool) {
	p.state = state
	p.history = append(p.history, state)
}

func newFakePins(rowBits int) Pins {
	row := make([]Pin, rowBits)
	for i := range row {
		row[i] = &fakePin{name: "row"}
	}
	return Pins{
		R1: &fakePin{name: "r1"}, G1: &fakePin{name: "g1"}, B1: &fakePin{name: "b1"},
		R2: &fakePin{name: "r2"}, G2: &fakePin{name: "g2"}, B2: &fakePin{name: "b2"},
		Row: row,
		CLK: &fakePin{name: "clk"}, LAT: &fakePin{name: "lat"}, OE: &fakePin{name: "oe"},
	}
}

func TestNewRejectsIncompletePins(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	pins.OE = nil
	_, err := New(pins, Config{})
	c.Assert(err, qt.Equals, ErrInvalidDataPins)
}

func TestNewRejectsHeightExceedingRowAddressSpace(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4) // max height = 2^(4+1) = 32
	_, err := New(pins, Config{Height: 64})
	c.Assert(err, qt.Equals, ErrInvalidHeight)
}

func TestNewDefaultsToMaxHeightAndDefaultWidth(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{})
	c.Assert(err, qt.IsNil)
	c.Assert(m.Width(), qt.Equals, DefaultWidth)
	c.Assert(m.Height(), qt.Equals, 32)
	c.Assert(m.NumAddrRows(), qt.Equals, 16)
}

func TestConfigureClearsShiftRegisterAndBlanksOutput(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 8, Height: 32})
	c.Assert(err, qt.IsNil)

	m.Configure()

	oe := pins.OE.(*fakePin)
	c.Assert(oe.configured, qt.IsTrue)
	c.Assert(oe.state, qt.IsTrue) // output left disabled after Configure

	clk := pins.CLK.(*fakePin)
	// 1 initial Low to park CLK, then 8 columns cleared = 8 High/Low pairs:
	// 17 transitions, ending Low.
	c.Assert(len(clk.history), qt.Equals, 17)
	c.Assert(clk.state, qt.IsFalse)

	lat := pins.LAT.(*fakePin)
	c.Assert(lat.state, qt.IsFalse) // latch pulsed then released
}

func TestDrawCanvasLinePulsesOncePerColumn(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 4, Height: 32})
	c.Assert(err, qt.IsNil)
	m.Configure()

	cv := canvas.NewCanvas(4, 32)
	cv.DrawPixel(0, 0, canvas.Color{R: 1, G: 0, B: 0})
	cv.DrawPixel(0, 16, canvas.Color{R: 0, G: 0, B: 1})

	clk := pins.CLK.(*fakePin)
	before := len(clk.history)

	r1 := pins.R1.(*fakePin)
	b2 := pins.B2.(*fakePin)
	r1Before := len(r1.history)
	b2Before := len(b2.history)

	m.DrawCanvasLine(cv, 0, 0)

	// 4 columns, one High/Low clk pulse each.
	c.Assert(len(clk.history)-before, qt.Equals, 8)

	// column 0 of row pair 0: top pixel is red, bottom pixel is blue. R1/B2
	// get exactly one Set per column, so the first new entry is column 0.
	c.Assert(r1.history[r1Before], qt.IsTrue)
	c.Assert(b2.history[b2Before], qt.IsTrue)
}

func TestDrawCanvasLineSelectsRowAddressOncePerDistinctRow(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 2, Height: 32})
	c.Assert(err, qt.IsNil)
	m.Configure()

	rowBit0 := pins.Row[0].(*fakePin)
	before := len(rowBit0.history)

	cv := canvas.NewCanvas(2, 32)
	m.DrawCanvasLine(cv, 1, 0)
	afterFirst := len(rowBit0.history)
	c.Assert(afterFirst > before, qt.IsTrue)

	m.DrawCanvasLine(cv, 1, 1) // same row, different bit plane: no re-latch
	c.Assert(len(rowBit0.history), qt.Equals, afterFirst)

	m.DrawCanvasLine(cv, 2, 0) // new row: re-latch
	c.Assert(len(rowBit0.history) > afterFirst, qt.IsTrue)
}

type fakeDelayTimer struct{ totalDelayMicros uint32 }

func (f *fakeDelayTimer) DelayMicros(us uint32) { f.totalDelayMicros += us }

func TestDrawCanvasWithDelayBufferPadsEveryRowPair(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 2, Height: 32}) // 16 row pairs
	c.Assert(err, qt.IsNil)
	m.Configure()

	timer := &fakeDelayTimer{}
	cv := canvas.NewCanvas(2, 32)
	m.DrawCanvasWithDelayBuffer(cv, 0, timer, 10)

	c.Assert(timer.totalDelayMicros, qt.Equals, uint32(16*10))
}

func TestDrawCanvasWithDelayBufferNilTimerIsNoop(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 2, Height: 32})
	c.Assert(err, qt.IsNil)
	m.Configure()

	cv := canvas.NewCanvas(2, 32)
	// must not panic with a nil timer.
	m.DrawCanvasWithDelayBuffer(cv, 0, nil, 10)
}

func TestDrawCanvasLineBlanksOutputDuringRowSwitch(t *testing.T) {
	c := qt.New(t)
	pins := newFakePins(4)
	m, err := New(pins, Config{Width: 2, Height: 32})
	c.Assert(err, qt.IsNil)
	m.Configure()

	oe := pins.OE.(*fakePin)
	cv := canvas.NewCanvas(2, 32)
	m.DrawCanvasLine(cv, 0, 0)

	// OE must have gone High (disable) then Low (enable) around the row
	// switch, never leaving output enabled while LAT or row address changes.
	c.Assert(len(oe.history) >= 2, qt.IsTrue)
	last := oe.history[len(oe.history)-1]
	c.Assert(last, qt.IsFalse) // output left enabled after the line is drawn
}
