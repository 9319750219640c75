package comm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"triangula/core"
	"triangula/protocol"
)

// fakeSlave records write transactions and serves scripted read bytes.
type fakeSlave struct {
	writes [][]byte
	reads  []byte
}

func (f *fakeSlave) Write(data []byte) error {
	f.writes = append(f.writes, append([]byte{}, data...))
	return nil
}

func (f *fakeSlave) ReadByte() (byte, error) {
	if len(f.reads) == 0 {
		return 0, nil
	}
	b := f.reads[0]
	f.reads = f.reads[1:]
	return b, nil
}

func TestSetMotorSpeedsFrame(t *testing.T) {
	slave := &fakeSlave{}
	c := NewClient(slave)

	require.NoError(t, c.SetMotorSpeeds(20, -20, 0))
	require.Len(t, slave.writes, 1)

	f := slave.writes[0]
	require.Len(t, f, protocol.MaxSentBytes)
	assert.Equal(t, byte(protocol.OpMotorSpeedSet), f[0])
	assert.Equal(t, []byte{148, 108, 128}, f[1:4], "speeds are biased by +128 on the wire")
	assert.Equal(t, byte(0), protocol.Checksum(f), "checksum must cancel over the whole frame")
}

func TestSetSolidColourFrame(t *testing.T) {
	slave := &fakeSlave{}
	c := NewClient(slave)

	require.NoError(t, c.SetSolidColour(10, 200, 30))
	require.Len(t, slave.writes, 1)

	f := slave.writes[0]
	assert.Equal(t, byte(protocol.OpSetSolidColour), f[0])
	assert.Equal(t, []byte{10, 200, 30}, f[1:4])
	assert.Equal(t, byte(0), protocol.Checksum(f))
}

func TestReadEncodersDecodesWireOrder(t *testing.T) {
	slave := &fakeSlave{
		// Wire order: C high, C low, B high, B low, A high, A low.
		reads: []byte{0x2E, 0x2F, 0x1C, 0x1D, 0x0A, 0x0B},
	}
	c := NewClient(slave)

	enc, err := c.ReadEncoders()
	require.NoError(t, err)
	assert.Equal(t, Encoders{A: 0x0A0B, B: 0x1C1D, C: 0x2E2F}, enc)

	require.Len(t, slave.writes, 1)
	assert.Equal(t, []byte{protocol.OpEncoderRead}, slave.writes[0], "encoder read carries no checksum")
}

// Loopback wiring: the client talks straight into a real firmware rig.

type recordingMotors struct {
	speeds [core.MotorChannels]int8
}

func (m *recordingMotors) SetSpeed(channel int, speed int8) {
	m.speeds[channel] = speed
}

type nopStrip struct{}

func (nopStrip) SetSolidColour(r, g, b uint8)                                   {}
func (nopStrip) SetPixelColour(index int, r, g, b uint8)                        {}
func (nopStrip) ShowHSVInterpolatedBand(hues []uint8, pixelsPerValue, startIndex int) {}
func (nopStrip) Present()                                                       {}

type steppablePort struct {
	samples []uint8
	pos     int
}

func (p *steppablePort) ReadSnapshot() uint8 {
	if p.pos >= len(p.samples) {
		return p.samples[len(p.samples)-1]
	}
	s := p.samples[p.pos]
	p.pos++
	return s
}

type loopbackBus struct {
	bus  *core.BusTarget
	disp *core.Dispatcher
}

func (l *loopbackBus) Write(data []byte) error {
	l.bus.OnReceive(data)
	l.disp.Poll()
	return nil
}

func (l *loopbackBus) ReadByte() (byte, error) {
	return l.bus.OnRequest(), nil
}

func TestClientAgainstFirmwareLoopback(t *testing.T) {
	// Three forward quadrature steps on axis A.
	port := &steppablePort{samples: []uint8{0b00, 0b10, 0b11, 0b01}}
	decoder := core.NewDecoder(port)
	for i := 0; i < 3; i++ {
		decoder.Sample()
	}

	bus := &core.BusTarget{}
	motors := &recordingMotors{}
	disp := core.NewDispatcher(bus, decoder, motors, nopStrip{}, 24)
	client := NewClient(&loopbackBus{bus: bus, disp: disp})

	require.NoError(t, client.SetMotorSpeeds(50, -50, 0))
	assert.Equal(t, [core.MotorChannels]int8{50, -50, 0}, motors.speeds)

	enc, err := client.ReadEncoders()
	require.NoError(t, err)
	assert.Equal(t, Encoders{A: 3, B: 0, C: 0}, enc)

	require.NoError(t, client.Stop())
	assert.Equal(t, [core.MotorChannels]int8{}, motors.speeds)
}
