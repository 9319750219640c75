//go:build rp2040 && !pioleds

package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// ws2812Writer drives the strip with the bit-banged ws2812 driver.
type ws2812Writer struct {
	dev ws2812.Device
}

func newLightStrip(pin machine.Pin, pixels int) *lightStrip {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &lightStrip{
		pixels: make([]color.RGBA, pixels),
		out:    &ws2812Writer{dev: ws2812.New(pin)},
	}
}

func (w *ws2812Writer) writePixels(pixels []color.RGBA) error {
	return w.dev.WriteColors(pixels)
}
