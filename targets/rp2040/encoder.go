//go:build rp2040

package main

import (
	"device/rp"
	"machine"

	"triangula/core"
)

// Encoder wiring: the six quadrature channels sit on consecutive pins
// GP2..GP7 so a single GPIO_IN read samples all three axes coherently.
// GP2/GP3 axis A, GP4/GP5 axis B, GP6/GP7 axis C.
const encoderPinBase = 2

var encoderPins = [6]machine.Pin{
	machine.GP2, machine.GP3,
	machine.GP4, machine.GP5,
	machine.GP6, machine.GP7,
}

// encoderPort implements core.PortReader with one SIO input register
// read.
type encoderPort struct{}

func (encoderPort) ReadSnapshot() uint8 {
	return uint8(rp.SIO.GPIO_IN.Get() >> encoderPinBase & 0x3F)
}

func setupEncoderPins() {
	for _, pin := range encoderPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
}

// attachEncoderInterrupts routes every edge on every encoder pin into
// one decoder sample. The handler does a single port read and a table
// lookup per axis, well inside the budget for running with interrupts
// masked.
func attachEncoderInterrupts(decoder *core.Decoder) {
	for _, pin := range encoderPins {
		pin.SetInterrupt(machine.PinRising|machine.PinFalling, func(machine.Pin) {
			decoder.Sample()
		})
	}
}
