package comm

import "triangula/protocol"

// Odometry accumulates signed wheel travel from successive encoder
// read-outs. The counters wrap modulo 2^16, so travel stays exact as
// long as no wheel moves more than 32767 ticks between polls.
type Odometry struct {
	last   Encoders
	primed bool
	travel [3]int64
}

// Update folds one read-out into the running totals and returns the
// per-axis deltas since the previous one. The first call only primes
// the baseline and reports zero motion.
func (o *Odometry) Update(e Encoders) (dA, dB, dC int16) {
	if !o.primed {
		o.last = e
		o.primed = true
		return 0, 0, 0
	}
	dA = protocol.Difference(o.last.A, e.A)
	dB = protocol.Difference(o.last.B, e.B)
	dC = protocol.Difference(o.last.C, e.C)
	o.travel[0] += int64(dA)
	o.travel[1] += int64(dB)
	o.travel[2] += int64(dC)
	o.last = e
	return dA, dB, dC
}

// Travel returns the accumulated signed travel per axis.
func (o *Odometry) Travel() (a, b, c int64) {
	return o.travel[0], o.travel[1], o.travel[2]
}
