//go:build rp2040

package main

import (
	"image/color"
	"machine"
)

// lightStripPin is the WS2812 data line.
const lightStripPin = machine.GP16

// stripBrightness caps the HSV value channel so a full ring does not
// brown out the 5V rail.
const stripBrightness = 96

// stripWriter flushes a prepared pixel buffer to the hardware. Two
// implementations exist: bit-banged (default) and PIO (pioleds tag).
type stripWriter interface {
	writePixels([]color.RGBA) error
}

// lightStrip implements core.LightStrip over an in-memory pixel buffer;
// Present flushes the buffer through the stripWriter.
type lightStrip struct {
	pixels []color.RGBA
	out    stripWriter
}

func (s *lightStrip) SetSolidColour(r, g, b uint8) {
	for i := range s.pixels {
		s.pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
}

func (s *lightStrip) SetPixelColour(index int, r, g, b uint8) {
	if index < 0 || index >= len(s.pixels) {
		return
	}
	s.pixels[index] = color.RGBA{R: r, G: g, B: b, A: 255}
}

// ShowHSVInterpolatedBand sweeps the hue wheel through the given values,
// pixelsPerValue pixels between consecutive values, wrapping around the
// strip from startIndex. Interpolation takes the short way around the
// wheel so adjacent hues blend instead of rainbowing.
func (s *lightStrip) ShowHSVInterpolatedBand(hues []uint8, pixelsPerValue, startIndex int) {
	if len(hues) == 0 || pixelsPerValue < 1 || len(s.pixels) == 0 {
		return
	}
	total := len(hues) * pixelsPerValue
	for p := 0; p < total; p++ {
		from := hues[p/pixelsPerValue]
		to := hues[((p/pixelsPerValue)+1)%len(hues)]
		hue := lerpHue(from, to, p%pixelsPerValue, pixelsPerValue)
		r, g, b := hsvToRGB(hue, 255, stripBrightness)
		s.SetPixelColour((startIndex+p)%len(s.pixels), r, g, b)
	}
}

func (s *lightStrip) Present() {
	s.out.writePixels(s.pixels)
}

// lerpHue interpolates step/steps of the way from h1 to h2, taking the
// short way around the 256-step hue wheel.
func lerpHue(h1, h2 uint8, step, steps int) uint8 {
	diff := int(h2) - int(h1)
	if diff > 128 {
		diff -= 256
	} else if diff < -128 {
		diff += 256
	}
	return uint8(int(h1) + diff*step/steps)
}

// hsvToRGB converts a byte-scaled HSV triple to RGB.
func hsvToRGB(h, s, v uint8) (uint8, uint8, uint8) {
	if s == 0 {
		return v, v, v
	}
	region := h / 43
	remainder := uint32(h-region*43) * 6
	p := uint8(uint32(v) * (255 - uint32(s)) / 255)
	q := uint8(uint32(v) * (255 - uint32(s)*remainder/255) / 255)
	t := uint8(uint32(v) * (255 - uint32(s)*(255-remainder)/255) / 255)
	switch region {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
