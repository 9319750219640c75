package protocol

import "testing"

func TestDifference(t *testing.T) {
	testCases := []struct {
		a, b     uint16
		expected int16
	}{
		{a: 0, b: 0, expected: 0},
		{a: 0, b: 1, expected: 1},
		{a: 1, b: 0, expected: -1},
		{a: 100, b: 350, expected: 250},
		{a: 350, b: 100, expected: -250},
		// Forward across the wrap boundary: 65530 plus 11 ticks lands on 5.
		{a: 65530, b: 5, expected: 11},
		// Backward across the wrap boundary.
		{a: 5, b: 65530, expected: -11},
		{a: 0, b: 32767, expected: 32767},
		{a: 32767, b: 0, expected: -32767},
		{a: 0xFFFF, b: 0, expected: 1},
	}

	for _, tc := range testCases {
		if got := Difference(tc.a, tc.b); got != tc.expected {
			t.Errorf("Difference(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestDifferenceRecoversTrueDelta(t *testing.T) {
	// For any starting reading and any true motion within ±32767 ticks,
	// the wrapped end reading must decode back to the true delta.
	starts := []uint16{0, 1, 5, 0x7FFF, 0x8000, 0xFFFE, 0xFFFF, 12345}
	for _, a := range starts {
		for d := -32767; d <= 32767; d += 257 {
			b := a + uint16(int16(d))
			if got := Difference(a, b); got != int16(d) {
				t.Fatalf("Difference(%d, %d) = %d, want %d", a, b, got, d)
			}
		}
	}
}
