// Package onceslot implements a lock-free, interrupt-safe, single-assignment
// container for process-lifetime state.
//
// Grounded on
// original_source/nrf52833_rgb_led_matrix/src/readonly_cell.rs's
// DynamicReadOnlyCell: an AtomicBool "populated" flag guards a value written
// exactly once. Go's sync/atomic gives the same acquire/release ordering the
// Rust original gets from core::sync::atomic, so no unsafe code is needed to
// publish the value safely to a reader running in interrupt context.
package onceslot

import (
	"sync"
	"sync/atomic"
)

// Cell is a single-assignment container safe to read from interrupt
// context. The zero value is an empty, unpopulated Cell.
type Cell[T any] struct {
	writeMu   sync.Mutex // guards Set's check-then-write-then-publish sequence
	populated atomic.Bool
	value     T
}

// Set populates the cell with value. Set panics if the cell is already
// populated -- writing twice is a programmer error, matching the Rust
// original's panic! on double-set. The check, the value write, and the
// publish are serialized by writeMu, the Go stand-in for the
// cortex_m::interrupt::free critical section the Rust original wraps
// DynamicReadOnlyCell::set in; readers never take writeMu, they only ever
// observe populated's atomic Store, which happens-before any subsequent
// Load sees true.
func (c *Cell[T]) Set(value T) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.populated.Load() {
		panic("onceslot: cell is already populated")
	}
	c.value = value
	c.populated.Store(true)
}

// Get returns the populated value. Get panics if the cell has not been
// populated yet; call TryGet first if population is not guaranteed.
func (c *Cell[T]) Get() T {
	v, ok := c.TryGet()
	if !ok {
		panic("onceslot: cell has not been populated yet")
	}
	return v
}

// TryGet returns the populated value and true, or the zero value and false
// if the cell has not been populated yet.
func (c *Cell[T]) TryGet() (T, bool) {
	if !c.populated.Load() {
		var zero T
		return zero, false
	}
	return c.value, true
}
