//go:build rp2040 && pioleds

package main

import (
	"image/color"
	"machine"
	"time"

	pio "github.com/tinygo-org/pio/rp2-pio"
	"github.com/tinygo-org/pio/rp2-pio/piolib"
)

// pioWriter drives the strip from a PIO state machine, keeping the CPU
// out of the tight WS2812 bit timing entirely.
type pioWriter struct {
	dev *piolib.WS2812B
}

func newLightStrip(pin machine.Pin, pixels int) *lightStrip {
	sm, err := pio.PIO0.ClaimStateMachine()
	if err != nil {
		// Fall back to a dark strip rather than halting the firmware.
		return &lightStrip{pixels: make([]color.RGBA, pixels), out: nopWriter{}}
	}
	dev, err := piolib.NewWS2812B(sm, pin)
	if err != nil {
		return &lightStrip{pixels: make([]color.RGBA, pixels), out: nopWriter{}}
	}
	return &lightStrip{
		pixels: make([]color.RGBA, pixels),
		out:    &pioWriter{dev: dev},
	}
}

func (w *pioWriter) writePixels(pixels []color.RGBA) error {
	for _, px := range pixels {
		if err := w.dev.PutColor(px); err != nil {
			return err
		}
	}
	// WS2812 latches on a quiet line.
	time.Sleep(300 * time.Microsecond)
	return nil
}

type nopWriter struct{}

func (nopWriter) writePixels([]color.RGBA) error { return nil }
