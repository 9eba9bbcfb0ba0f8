//go:build tinygo && logging

package metrics

import (
	"fmt"

	"tinygo.org/x/tinyterm"
)

// terminal is the tinyterm sink logAverageFrequency writes to when the
// logging build tag is set, mirroring the original's `log!` macro, which
// is itself gated behind a "logging" Cargo feature.
var terminal *tinyterm.Terminal

// SetLogTerminal installs the terminal logAverageFrequency writes to.
// Call this once during board setup, typically passing a tinyterm
// Terminal backed by an SSD1306/ST7789 display or a UART-backed writer.
func SetLogTerminal(t *tinyterm.Terminal) {
	terminal = t
}

func logAverageFrequency(freqHz uint32) {
	if terminal == nil {
		return
	}
	fmt.Fprintf(terminal, "Image drawing frequency: %d Hz\r\n", freqHz)
}
