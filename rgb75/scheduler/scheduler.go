// Package scheduler implements the interrupt-driven refresh engine that
// repeatedly drives a rgb75.Matrix through every row pair and bit plane
// of a binary-code-modulated canvas.Canvas, and hands the foreground code
// a safe way to publish a new frame without tearing the one currently
// being scanned out.
//
// Grounded on original_source/src/scheduler.rs
// (the refresh engine driving LedMatrix from a TIMER4 interrupt) and on
// the teacher's tinygo.org/x/drivers/rgb75.Device, whose handleRow/
// increment/selectRow methods this package's onTimerInterrupt/
// advanceCursor/latchRow split apart into a standalone scheduler over a
// stateless Matrix.
package scheduler

import (
	"github.com/tinygo-community/rgb75-matrix/canvas"
	"github.com/tinygo-community/rgb75-matrix/internal/criticalsection"
	"github.com/tinygo-community/rgb75-matrix/onceslot"
	"github.com/tinygo-community/rgb75-matrix/rgb75"
)

// Default binary-code-modulation parameters, matching the teacher's
// DefaultColorDepth and bitPeriod constants.
const (
	DefaultBCMCycles        = 4    // number of bit planes cycled per row pair
	DefaultBasePeriodCycles = 2000 // timer period for bit plane 0; doubles each plane
)

// Timer is the hardware timer surface the scheduler needs to schedule its
// own interrupt: init once with a handler, then repeatedly paused and
// resumed with a new period as the refresh cursor advances. It mirrors
// the teacher's native.Hub75 InitTimer/PauseTimer/ResumeTimer trio.
type Timer interface {
	// Init registers handler to run on every timer interrupt and arms it.
	Init(handler func())
	// Pause stops the timer and returns its current count.
	Pause() uint32
	// Resume restarts the timer counting up from zero, firing an
	// interrupt once the count reaches from+period. The scheduler always
	// passes from=0, so the interrupt fires after `period` cycles.
	Resume(from, period uint32)
}

// Cursor identifies the row pair and bit plane currently being scanned
// out, plus the frame count completed so far.
type Cursor struct {
	Frame uint32
	Row   int
	Bit   rgb75.BitPlane
	Period uint32
}

// Scheduler owns the front canvas currently being scanned out by the
// interrupt handler, and drives matrix through the BCM row/bitplane
// sequence. The foreground code publishes new frames through SwapCanvas,
// CopyCanvas, or BorrowCanvas; all three serialize against the interrupt
// handler with a critical section, mirroring the Rust original's
// cortex_m::interrupt::free-guarded RefCell borrow.
type Scheduler struct {
	matrix *rgb75.Matrix
	timer  Timer

	bcmCycles  int
	basePeriod uint32

	front  *canvas.Canvas
	cursor Cursor
}

// global publishes the process-wide Scheduler singleton, mirroring the
// Rust original's static DISPLAY_ENGINE DynamicReadOnlyCell.
var global onceslot.Cell[*Scheduler]

// New returns a Scheduler driving matrix, using timer for its refresh
// interrupt and initial displaying a blank canvas of matrix's dimensions.
// bcmCycles and basePeriod select 0 to use the package defaults.
func New(matrix *rgb75.Matrix, timer Timer, bcmCycles int, basePeriod uint32) *Scheduler {
	if bcmCycles == 0 {
		bcmCycles = DefaultBCMCycles
	}
	if basePeriod == 0 {
		basePeriod = DefaultBasePeriodCycles
	}
	return &Scheduler{
		matrix:     matrix,
		timer:      timer,
		bcmCycles:  bcmCycles,
		basePeriod: basePeriod,
		front:      canvas.NewCanvas(matrix.Width(), matrix.Height()),
		cursor:     Cursor{Period: basePeriod},
	}
}

// TakeRef publishes s as the process-wide scheduler singleton on first
// call and returns it; subsequent calls (with any argument) return the
// first Scheduler published, ignoring the argument. This matches the
// original's DynamicReadOnlyCell-backed singleton: exactly one Scheduler
// may ever back the refresh interrupt for the life of the program.
func TakeRef(s *Scheduler) *Scheduler {
	if existing, ok := global.TryGet(); ok {
		return existing
	}
	global.Set(s)
	return s
}

// StartRenderingLoop configures the matrix's GPIO pins and arms the
// refresh timer. It must be called exactly once, after TakeRef.
func (s *Scheduler) StartRenderingLoop() {
	s.matrix.Configure()
	s.timer.Init(s.onTimerInterrupt)
	s.timer.Resume(0, s.cursor.Period)
}

// onTimerInterrupt is the refresh timer's interrupt handler: it draws one
// bit plane of one row pair and advances the cursor to the next.
func (s *Scheduler) onTimerInterrupt() {
	s.timer.Pause()
	s.timer.Resume(0, s.cursor.Period)

	s.matrix.DrawCanvasLine(s.front, s.cursor.Row, s.cursor.Bit)
	s.advanceCursor()
}

// advanceCursor moves to the next bit plane, and wraps to the next row
// pair (resetting the bit period to basePeriod) once every bit plane
// of the current row pair has been shown; a full sweep of every row pair
// increments Frame.
func (s *Scheduler) advanceCursor() {
	s.cursor.Bit++
	s.cursor.Period *= 2
	if int(s.cursor.Bit) >= s.bcmCycles {
		s.cursor.Bit = 0
		s.cursor.Period = s.basePeriod
		s.cursor.Row++
		if s.cursor.Row >= s.matrix.NumAddrRows() {
			s.cursor.Row = 0
			s.cursor.Frame++
		}
	}
}

// Cursor returns a snapshot of the current refresh position, serialized
// against the interrupt handler.
func (s *Scheduler) Cursor() Cursor {
	var snap Cursor
	criticalsection.Run(func() {
		snap = s.cursor
	})
	return snap
}

// SwapCanvas replaces the canvas being scanned out with next and returns
// the canvas that had previously been displayed, inside a critical
// section so the interrupt handler never observes a half-replaced
// pointer. The caller may reuse the returned canvas as the next back
// buffer, implementing classic double buffering without allocating.
func (s *Scheduler) SwapCanvas(next *canvas.Canvas) *canvas.Canvas {
	var prev *canvas.Canvas
	criticalsection.Run(func() {
		prev = s.front
		s.front = next
	})
	return prev
}

// CopyCanvas overwrites the displayed canvas's pixels with src's, without
// swapping the underlying canvas pointer. Use this instead of SwapCanvas
// when the caller wants to keep rendering into the same back buffer on
// every frame rather than alternate between two.
func (s *Scheduler) CopyCanvas(src *canvas.Canvas) {
	criticalsection.Run(func() {
		s.front.DrawCanvas(0, 0, src, canvas.BlitReplace)
	})
}

// BorrowCanvas runs fn with exclusive access to the displayed canvas,
// inside a critical section. fn must not retain the pointer it is
// given: the canvas may be swapped out by another goroutine as soon as
// BorrowCanvas returns. This is the Go stand-in for the original's
// borrow_mut_canvas closure-scoped RefCell borrow, since Go has no borrow
// checker to enforce the non-escape rule at compile time.
func (s *Scheduler) BorrowCanvas(fn func(*canvas.Canvas)) {
	criticalsection.Run(func() {
		fn(s.front)
	})
}
