package comm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOdometryAccumulates(t *testing.T) {
	var o Odometry

	dA, dB, dC := o.Update(Encoders{A: 100, B: 200, C: 300})
	assert.Zero(t, dA)
	assert.Zero(t, dB)
	assert.Zero(t, dC, "first read-out only primes the baseline")

	dA, dB, dC = o.Update(Encoders{A: 110, B: 195, C: 300})
	assert.Equal(t, int16(10), dA)
	assert.Equal(t, int16(-5), dB)
	assert.Equal(t, int16(0), dC)

	a, b, c := o.Travel()
	assert.Equal(t, int64(10), a)
	assert.Equal(t, int64(-5), b)
	assert.Equal(t, int64(0), c)
}

func TestOdometryAcrossWrap(t *testing.T) {
	var o Odometry
	o.Update(Encoders{A: 65530, B: 5, C: 0})

	// A rolls forward through zero, B rolls backward through zero.
	dA, dB, _ := o.Update(Encoders{A: 5, B: 65530, C: 0})
	assert.Equal(t, int16(11), dA)
	assert.Equal(t, int16(-11), dB)

	a, b, _ := o.Travel()
	assert.Equal(t, int64(11), a)
	assert.Equal(t, int64(-11), b)
}

func TestOdometryLongRun(t *testing.T) {
	// Many wraps in both directions stay exact as long as each step is
	// within the half-range window.
	var o Odometry
	reading := uint16(0)
	o.Update(Encoders{})

	var want int64
	for i := 0; i < 50; i++ {
		step := int16(30000)
		if i%3 == 2 {
			step = -20000
		}
		reading += uint16(step)
		want += int64(step)
		o.Update(Encoders{A: reading})
	}
	a, _, _ := o.Travel()
	assert.Equal(t, want, a)
}

func TestIntervalCheckShouldRun(t *testing.T) {
	now := time.Unix(1000, 0)
	ic := NewIntervalCheck(100 * time.Millisecond)
	ic.now = func() time.Time { return now }

	assert.True(t, ic.ShouldRun(), "first call always runs")
	assert.False(t, ic.ShouldRun(), "immediate second call does not")

	now = now.Add(50 * time.Millisecond)
	assert.False(t, ic.ShouldRun())

	now = now.Add(51 * time.Millisecond)
	assert.True(t, ic.ShouldRun())
	assert.False(t, ic.ShouldRun())
}
