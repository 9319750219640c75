//go:build rp2040

package main

import (
	"machine"
	"runtime"

	"triangula/core"
	"triangula/protocol"
)

// stripPixels is the length of the chassis light strip.
const stripPixels = 24

func main() {
	setupEncoderPins()
	decoder := core.NewDecoder(encoderPort{})
	attachEncoderInterrupts(decoder)

	motors := newMotorBank()
	strip := newLightStrip(lightStripPin, stripPixels)

	bus := &core.BusTarget{}
	dispatcher := core.NewDispatcher(bus, decoder, motors, strip, stripPixels)

	if err := configureBusTarget(machine.I2C0, protocol.SlaveAddress); err != nil {
		// No bus means no host; nothing useful left to do.
		for {
			runtime.Gosched()
		}
	}
	go runBusEvents(machine.I2C0, bus)

	// Cooperative main loop: deferred command processing only. The
	// decoder and bus callbacks run from interrupt context.
	for {
		if !dispatcher.Poll() {
			runtime.Gosched()
		}
	}
}
