package scheduler

import (
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/tinygo-community/rgb75-matrix/canvas"
	"github.com/tinygo-community/rgb75-matrix/rgb75"
)

// fakeTimer is a host-side Timer stand-in: calling fire invokes the
// registered handler synchronously, simulating one interrupt firing.
type fakeTimer struct {
	handler     func()
	resumeCalls []uint32
}

func (f *fakeTimer) Init(handler func()) { f.handler = handler }
func (f *fakeTimer) Pause() uint32       { return 0 }
func (f *fakeTimer) Resume(from, period uint32) {
	f.resumeCalls = append(f.resumeCalls, period)
}
func (f *fakeTimer) fire() { f.handler() }

type fakePin struct{ state bool }

func (p *fakePin) ConfigureOutput() {}
func (p *fakePin) High()            { p.state = true }
func (p *fakePin) Low()             { p.state = false }
func (p *fakePin) Set(s bool)       { p.state = s }

func newTestMatrix(t *testing.T, width, height int) *rgb75.Matrix {
	row := make([]rgb75.Pin, 4)
	for i := range row {
		row[i] = &fakePin{}
	}
	pins := rgb75.Pins{
		R1: &fakePin{}, G1: &fakePin{}, B1: &fakePin{},
		R2: &fakePin{}, G2: &fakePin{}, B2: &fakePin{},
		Row: row,
		CLK: &fakePin{}, LAT: &fakePin{}, OE: &fakePin{},
	}
	m, err := rgb75.New(pins, rgb75.Config{Width: width, Height: height})
	if err != nil {
		t.Fatalf("rgb75.New: %v", err)
	}
	return m
}

func TestNewUsesDefaultsWhenZero(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 8, 32)
	timer := &fakeTimer{}
	s := New(m, timer, 0, 0)
	c.Assert(s.bcmCycles, qt.Equals, DefaultBCMCycles)
	c.Assert(s.basePeriod, qt.Equals, uint32(DefaultBasePeriodCycles))
}

func TestAdvanceCursorCyclesBitPlanesBeforeRow(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 8, 32) // numAddrRows = 16
	s := New(m, &fakeTimer{}, 4, 100)

	for i := 0; i < 3; i++ {
		s.advanceCursor()
	}
	cur := s.Cursor()
	c.Assert(cur.Bit, qt.Equals, rgb75.BitPlane(3))
	c.Assert(cur.Row, qt.Equals, 0)
	c.Assert(cur.Period, qt.Equals, uint32(800)) // 100 * 2^3

	s.advanceCursor() // rolls bit plane over into the next row
	cur = s.Cursor()
	c.Assert(cur.Bit, qt.Equals, rgb75.BitPlane(0))
	c.Assert(cur.Row, qt.Equals, 1)
	c.Assert(cur.Period, qt.Equals, uint32(100))
}

func TestAdvanceCursorWrapsFrameAfterAllRows(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 8, 32) // numAddrRows = 16
	s := New(m, &fakeTimer{}, 1, 100)

	for i := 0; i < 16; i++ {
		s.advanceCursor()
	}
	cur := s.Cursor()
	c.Assert(cur.Row, qt.Equals, 0)
	c.Assert(cur.Frame, qt.Equals, uint32(1))
}

func TestOnTimerInterruptDrawsCurrentCursorThenAdvances(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 4, 32)
	timer := &fakeTimer{}
	s := New(m, timer, 4, 100)
	m.Configure()

	s.onTimerInterrupt()
	c.Assert(s.Cursor().Bit, qt.Equals, rgb75.BitPlane(1))
	c.Assert(len(timer.resumeCalls) > 0, qt.IsTrue)
}

func TestTakeRefReturnsSameSchedulerOnSecondCall(t *testing.T) {
	c := qt.New(t)
	m1 := newTestMatrix(t, 8, 32)
	m2 := newTestMatrix(t, 8, 32)
	s1 := New(m1, &fakeTimer{}, 0, 0)
	s2 := New(m2, &fakeTimer{}, 0, 0)

	got1 := TakeRef(s1)
	got2 := TakeRef(s2)
	c.Assert(got1, qt.Equals, s1)
	c.Assert(got2, qt.Equals, s1)
}

func TestSwapCanvasReturnsPreviousFront(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 4, 32)
	s := New(m, &fakeTimer{}, 0, 0)

	next := canvas.NewCanvas(4, 32)
	next.DrawPixel(0, 0, canvas.Red)

	prev := s.SwapCanvas(next)
	c.Assert(prev, qt.Not(qt.IsNil))
	c.Assert(prev.At(0, 0), qt.Equals, canvas.Black)

	var observed canvas.Color
	s.BorrowCanvas(func(cv *canvas.Canvas) {
		observed = cv.At(0, 0)
	})
	c.Assert(observed, qt.Equals, canvas.Red)
}

func TestCopyCanvasOverwritesPixelsWithoutSwappingPointer(t *testing.T) {
	c := qt.New(t)
	m := newTestMatrix(t, 4, 32)
	s := New(m, &fakeTimer{}, 0, 0)

	var before *canvas.Canvas
	s.BorrowCanvas(func(cv *canvas.Canvas) { before = cv })

	src := canvas.NewCanvas(4, 32)
	src.DrawPixel(1, 1, canvas.Blue)
	s.CopyCanvas(src)

	var after *canvas.Canvas
	s.BorrowCanvas(func(cv *canvas.Canvas) { after = cv })

	c.Assert(after, qt.Equals, before) // same underlying canvas, mutated in place
	c.Assert(after.At(1, 1), qt.Equals, canvas.Blue)
}

// TestConcurrentSwapCanvasIsSerialized simulates concurrent foreground
// swaps racing the interrupt handler's reads, under the race detector:
// every handoff must be all-or-nothing, never a torn pointer.
func TestConcurrentSwapCanvasIsSerialized(t *testing.T) {
	m := newTestMatrix(t, 4, 32)
	s := New(m, &fakeTimer{}, 0, 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			cv := canvas.NewCanvas(4, 32)
			cv.DrawPixel(0, 0, canvas.Color{R: uint8(n)})
			s.SwapCanvas(cv)
		}(i)
	}
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			s.BorrowCanvas(func(cv *canvas.Canvas) { _ = cv.At(0, 0) })
		}
		close(done)
	}()
	wg.Wait()
	<-done
}
