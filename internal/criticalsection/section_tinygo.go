//go:build tinygo

// Package criticalsection provides the single interrupt-disabling critical
// section primitive every engine entry point in package rgb75/scheduler
// wraps itself in, mirroring the cortex_m::interrupt::free closure used at
// every borrow_mut_canvas/swap_canvas/ack_interrupt call site in the Rust
// original. Factoring it into one package instead of repeating raw
// disable/restore pairs follows the original's own choice to use a single
// helper rather than hand-rolling critical sections at each call site.
package criticalsection

import "runtime/interrupt"

// Enter disables interrupts and returns a token that must be passed to
// Exit to restore the previous interrupt state. Enter/Exit pairs may not be
// interleaved with other Enter/Exit pairs on the same core.
func Enter() interrupt.State {
	return interrupt.Disable()
}

// Exit restores the interrupt state captured by the matching Enter.
func Exit(state interrupt.State) {
	interrupt.Restore(state)
}

// Run executes fn with interrupts disabled, then restores the previous
// interrupt state, mirroring cortex_m::interrupt::free(|cs| { ... }).
func Run(fn func()) {
	state := Enter()
	defer Exit(state)
	fn()
}
