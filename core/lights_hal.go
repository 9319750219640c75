package core

// LightStrip is the abstract addressable-LED interface. The pixel
// buffer and colour math live behind it in target code; the dispatcher
// only ever hands over whole patterns.
type LightStrip interface {
	// SetSolidColour paints every pixel the same RGB colour.
	SetSolidColour(r, g, b uint8)

	// SetPixelColour paints a single pixel. Out-of-range indices are
	// ignored.
	SetPixelColour(index int, r, g, b uint8)

	// ShowHSVInterpolatedBand paints a band of pixels whose hues sweep
	// through the given hue-wheel values (byte-scaled, 0-255), with
	// pixelsPerValue pixels between consecutive values, starting at
	// startIndex.
	ShowHSVInterpolatedBand(hues []uint8, pixelsPerValue, startIndex int)

	// Present pushes the pixel buffer out to the strip.
	Present()
}
