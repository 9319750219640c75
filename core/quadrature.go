// Quadrature decoding for the three wheel encoders.
// Converts interrupt-time pin samples into free-running position counters.
package core

// Axis indices. Wire order on the encoder read-out is C, B, A.
const (
	AxisA = iota
	AxisB
	AxisC
	NumAxes
)

// transitionTable maps current|previous<<2 to the signed step implied by
// that 2-bit quadrature transition. The eight non-adjacent pairs map to
// 0: a spike or contact bounce that skips a step is ignored rather than
// counted.
var transitionTable = [16]int8{
	0, -1, 1, 0,
	1, 0, 0, -1,
	-1, 0, 0, 1,
	0, 1, -1, 0,
}

// Per-axis bit extraction from one port sample. The three axes share a
// single input port so one register read yields a coherent picture of
// all six pins.
func axisABits(port uint8) uint8 { return port & 0x03 }
func axisBBits(port uint8) uint8 { return (port >> 2) & 0x03 }
func axisCBits(port uint8) uint8 { return (port >> 4) & 0x03 }

// Decoder turns pin-change interrupts into three free-running uint16
// position counters. Sample is the only writer of the counters and runs
// in interrupt context; Counts takes an atomic copy for everyone else.
type Decoder struct {
	port  PortReader
	prev  [NumAxes]uint8
	count [NumAxes]uint16
}

// NewDecoder creates a decoder and seeds the per-axis previous state
// from the current pin levels, so the first real edge is decoded against
// the true resting position instead of registering phantom motion.
func NewDecoder(port PortReader) *Decoder {
	d := &Decoder{port: port}
	p := port.ReadSnapshot()
	d.prev[AxisA] = axisABits(p)
	d.prev[AxisB] = axisBBits(p)
	d.prev[AxisC] = axisCBits(p)
	return d
}

// Sample services one pin-change interrupt: a single port read drives
// all three axes. Axis C is wired mirror-image on the chassis, so its
// counter moves opposite to the looked-up delta. Must stay short; it
// runs with interrupts disabled.
func (d *Decoder) Sample() {
	port := d.port.ReadSnapshot()
	d.step(AxisA, axisABits(port), 1)
	d.step(AxisB, axisBBits(port), 1)
	d.step(AxisC, axisCBits(port), -1)
}

func (d *Decoder) step(axis int, bits uint8, dir int16) {
	delta := int16(transitionTable[bits|d.prev[axis]<<2])
	d.prev[axis] = bits
	d.count[axis] += uint16(delta * dir)
}

// Counts returns a coherent copy of the three counters. The multi-byte
// reads are fenced in a critical section so an interrupt cannot land
// between an axis's high and low bytes.
func (d *Decoder) Counts() (a, b, c uint16) {
	state := disableInterrupts()
	a = d.count[AxisA]
	b = d.count[AxisB]
	c = d.count[AxisC]
	restoreInterrupts(state)
	return a, b, c
}
