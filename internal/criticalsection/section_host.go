//go:build !tinygo

// Host build of package criticalsection: there is no NVIC to mask outside
// the TinyGo runtime, so a process-wide mutex stands in for
// runtime/interrupt.Disable/Restore. This lets canvas/rgb75/scheduler logic
// (Cursor arithmetic, SwapCanvas atomicity, singleton uniqueness) be tested
// with `go test` on a regular host, without a TinyGo toolchain or real
// hardware, exactly as SPEC_FULL Section 7 requires.
package criticalsection

import "sync"

var mu sync.Mutex

// State is opaque on the host build; Exit only needs to know Enter ran.
type State struct{}

// Enter locks the process-wide critical-section mutex.
func Enter() State {
	mu.Lock()
	return State{}
}

// Exit unlocks the process-wide critical-section mutex.
func Exit(State) {
	mu.Unlock()
}

// Run executes fn while holding the critical-section mutex.
func Run(fn func()) {
	state := Enter()
	defer Exit(state)
	fn()
}
