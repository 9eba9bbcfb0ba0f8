//go:build tinygo

// Package board wires the rgb75, rgb75/scheduler, and internal/nrftimer
// packages to concrete micro:bit v2 (nRF52833) GPIO pins, and assembles
// them into a running refresh engine. It is the only package that imports
// "machine" and knows real pin numbers.
//
// Pin assignment grounded on
// original_source/nrf52833_rgb_led_matrix/src/helpers.rs's
// MicrobitPinMapFor64x32: P0.02/03/04 -> r1/g1/b1, P0.11/10/09 -> r2/g2/b2,
// P0.12/17/01/13 -> a/b/c/d, P1.02 -> clk, P0.26 -> oe, P1.00 -> lat.
package board

import (
	"machine"

	"github.com/tinygo-community/rgb75-matrix/internal/nrftimer"
	"github.com/tinygo-community/rgb75-matrix/rgb75"
	"github.com/tinygo-community/rgb75-matrix/rgb75/scheduler"
)

// gpioPin adapts machine.Pin to the rgb75.Pin interface.
type gpioPin machine.Pin

func (p gpioPin) ConfigureOutput() {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinOutput})
}
func (p gpioPin) High()      { machine.Pin(p).High() }
func (p gpioPin) Low()       { machine.Pin(p).Low() }
func (p gpioPin) Set(v bool) { machine.Pin(p).Set(v) }

// micro:bit v2 P0/P1 pin numbers for a 64x32 HUB75 panel, matching
// MicrobitPinMapFor64x32. P1.xx pins are offset by 32 in TinyGo's nRF52833
// machine.Pin numbering.
const (
	pinR1  = machine.Pin(2)
	pinG1  = machine.Pin(3)
	pinB1  = machine.Pin(4)
	pinR2  = machine.Pin(11)
	pinG2  = machine.Pin(10)
	pinB2  = machine.Pin(9)
	pinA   = machine.Pin(12)
	pinB   = machine.Pin(17)
	pinC   = machine.Pin(1)
	pinD   = machine.Pin(13)
	pinCLK = machine.Pin(32 + 2)
	pinOE  = machine.Pin(26)
	pinLAT = machine.Pin(32 + 0)
)

// MicrobitPins returns the HUB75 GPIO pin assignment for a 64x32 panel
// wired to a micro:bit v2 edge connector.
func MicrobitPins() rgb75.Pins {
	return rgb75.Pins{
		R1: gpioPin(pinR1), G1: gpioPin(pinG1), B1: gpioPin(pinB1),
		R2: gpioPin(pinR2), G2: gpioPin(pinG2), B2: gpioPin(pinB2),
		Row: []rgb75.Pin{gpioPin(pinA), gpioPin(pinB), gpioPin(pinC), gpioPin(pinD)},
		CLK: gpioPin(pinCLK), OE: gpioPin(pinOE), LAT: gpioPin(pinLAT),
	}
}

// InitScheduledMatrix builds a Matrix and Scheduler over the micro:bit's
// HUB75 pins and TIMER4, publishes the Scheduler as the process-wide
// singleton, and starts the refresh interrupt. It corresponds to the
// original's init_scheduled_led_matrix_system_from_parts, minus the
// logging-feature metrics setup which callers opt into separately via
// InitDebugMetrics.
func InitScheduledMatrix(cfg rgb75.Config) (*scheduler.Scheduler, error) {
	matrix, err := rgb75.New(MicrobitPins(), cfg)
	if err != nil {
		return nil, err
	}
	s := scheduler.New(matrix, nrftimer.New(), 0, 0)
	s = scheduler.TakeRef(s)
	s.StartRenderingLoop()
	return s, nil
}
