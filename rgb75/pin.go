package rgb75

// Pin is the minimal push-pull digital output surface package rgb75 needs
// from a GPIO line. machine.Pin (the teacher's own rgb75.Device fields are
// all machine.Pin) already has High, Low, and Set, but configures itself
// through Configure(machine.PinConfig) rather than ConfigureOutput, so
// wiring a real board goes through a thin adapter in package board.
//
// This is a deliberate adaptation from the teacher, which stores concrete
// machine.Pin fields directly: TinyGo's machine package is only resolvable
// under the tinygo toolchain, so a concrete dependency here would make
// *Matrix untestable with a plain `go test`. Abstracting behind a small
// interface -- the same idiom the teacher itself uses one level up, e.g.
// ina260.New(bus drivers.I2C) taking an interface instead of a concrete I2C
// peripheral type -- lets the shift/latch pulse-sequence invariants (spec
// Section 8, property 5) be verified host-side against a fake Pin recorder.
type Pin interface {
	// ConfigureOutput configures the pin as a push-pull digital output.
	ConfigureOutput()
	High()
	Low()
	Set(state bool)
}
