package core

import (
	"testing"

	"triangula/protocol"
)

type motorRecorder struct {
	speeds [MotorChannels]int8
	calls  int
}

func (m *motorRecorder) SetSpeed(channel int, speed int8) {
	m.speeds[channel] = speed
	m.calls++
}

type stripRecorder struct {
	solid     [3]uint8
	solidSets int
	bandHues  []uint8
	bandPer   int
	bandStart int
	presents  int
}

func (s *stripRecorder) SetSolidColour(r, g, b uint8) {
	s.solid = [3]uint8{r, g, b}
	s.solidSets++
}

func (s *stripRecorder) SetPixelColour(index int, r, g, b uint8) {}

func (s *stripRecorder) ShowHSVInterpolatedBand(hues []uint8, pixelsPerValue, startIndex int) {
	s.bandHues = append([]uint8{}, hues...)
	s.bandPer = pixelsPerValue
	s.bandStart = startIndex
}

func (s *stripRecorder) Present() {
	s.presents++
}

// newTestRig assembles a full firmware rig with recorded outputs and a
// quiet encoder port.
func newTestRig(stripLen int) (*BusTarget, *Dispatcher, *Decoder, *motorRecorder, *stripRecorder) {
	bus := &BusTarget{}
	dec := NewDecoder(&scriptedPort{samples: []uint8{0}})
	motors := &motorRecorder{}
	strip := &stripRecorder{}
	disp := NewDispatcher(bus, dec, motors, strip, stripLen)
	return bus, disp, dec, motors, strip
}

func frame(opcode byte, payload ...byte) []byte {
	f := append([]byte{opcode}, payload...)
	return append(f, protocol.Checksum(f))
}

func TestMotorSpeedSet(t *testing.T) {
	bus, disp, _, motors, strip := newTestRig(24)

	bus.OnReceive(frame(protocol.OpMotorSpeedSet, 148, 108, 128))
	if !disp.Poll() {
		t.Fatal("Poll did not process the command")
	}

	want := [MotorChannels]int8{20, -20, 0}
	if motors.speeds != want {
		t.Errorf("speeds = %v, want %v", motors.speeds, want)
	}
	if motors.calls != MotorChannels {
		t.Errorf("SetSpeed calls = %d, want %d", motors.calls, MotorChannels)
	}

	// The same payload also paints the motion band.
	if len(strip.bandHues) != 3 || strip.bandHues[0] != 148 || strip.bandHues[1] != 108 || strip.bandHues[2] != 128 {
		t.Errorf("band hues = %v", strip.bandHues)
	}
	if strip.bandPer != 8 {
		t.Errorf("pixelsPerValue = %d, want 8", strip.bandPer)
	}
	if strip.presents == 0 {
		t.Error("Present was never called")
	}
}

func TestMotorSpeedSetBadChecksumDropped(t *testing.T) {
	bus, disp, _, motors, strip := newTestRig(24)

	f := frame(protocol.OpMotorSpeedSet, 148, 108, 128)
	f[checksumIndex] ^= 0x01 // single flipped bit
	bus.OnReceive(f)
	disp.Poll()

	if motors.calls != 0 {
		t.Errorf("motors were commanded %d times on a bad checksum", motors.calls)
	}
	if strip.presents != 0 || strip.solidSets != 0 {
		t.Error("lights changed on a bad checksum")
	}
	if stats := bus.Stats(); stats.BadChecksums != 1 {
		t.Errorf("BadChecksums = %d, want 1", stats.BadChecksums)
	}
}

func TestMotorSpeedSetShortFrameDropped(t *testing.T) {
	bus, disp, _, motors, _ := newTestRig(24)

	bus.OnReceive([]byte{protocol.OpMotorSpeedSet, 148})
	disp.Poll()

	if motors.calls != 0 {
		t.Error("a truncated frame commanded the motors")
	}
}

func TestSetSolidColour(t *testing.T) {
	bus, disp, _, _, strip := newTestRig(24)

	bus.OnReceive(frame(protocol.OpSetSolidColour, 12, 34, 56))
	disp.Poll()

	if strip.solid != [3]uint8{12, 34, 56} {
		t.Errorf("solid colour = %v", strip.solid)
	}
	if strip.presents != 1 {
		t.Errorf("presents = %d, want 1", strip.presents)
	}
}

func TestSetSolidColourBadChecksumLeavesStrip(t *testing.T) {
	bus, disp, _, _, strip := newTestRig(24)

	bus.OnReceive(frame(protocol.OpSetSolidColour, 50, 60, 70))
	disp.Poll()
	before := strip.solid

	f := frame(protocol.OpSetSolidColour, 1, 2, 3)
	f[checksumIndex] ^= 0x80
	bus.OnReceive(f)
	disp.Poll()

	if strip.solid != before {
		t.Errorf("strip changed across a corrupted transaction: %v -> %v", before, strip.solid)
	}
	if strip.solidSets != 1 {
		t.Errorf("solidSets = %d, want 1", strip.solidSets)
	}
}

func TestEncoderReadArmsSnapshot(t *testing.T) {
	bus, disp, dec, _, _ := newTestRig(24)

	dec.count[AxisA] = 0x0A0B
	dec.count[AxisB] = 0x1C1D
	dec.count[AxisC] = 0x2E2F

	bus.OnReceive([]byte{protocol.OpEncoderRead})
	disp.Poll()

	// Wire order: C high, C low, B high, B low, A high, A low.
	want := []byte{0x2E, 0x2F, 0x1C, 0x1D, 0x0A, 0x0B}
	for i, w := range want {
		if got := bus.OnRequest(); got != w {
			t.Errorf("read %d = 0x%02X, want 0x%02X", i, got, w)
		}
	}
	if got := bus.OnRequest(); got != 0 {
		t.Errorf("seventh read = 0x%02X, want 0", got)
	}
}

func TestUnknownOpcodeFailSafe(t *testing.T) {
	bus, disp, _, motors, strip := newTestRig(24)

	// Establish prior motion so the stop is observable.
	bus.OnReceive(frame(protocol.OpMotorSpeedSet, 228, 28, 158))
	disp.Poll()
	if motors.speeds == ([MotorChannels]int8{}) {
		t.Fatal("setup command did not move the motors")
	}

	bus.OnReceive([]byte{0xFF, 99, 99, 99, 99})
	disp.Poll()

	if motors.speeds != ([MotorChannels]int8{}) {
		t.Errorf("speeds = %v after fail-safe, want all zero", motors.speeds)
	}
	if strip.solid != [3]uint8{errColourR, errColourG, errColourB} {
		t.Errorf("fail-safe colour = %v", strip.solid)
	}
}

func TestEmptyTransactionIgnored(t *testing.T) {
	bus, disp, _, motors, strip := newTestRig(24)

	bus.OnReceive(nil)
	disp.Poll()

	if motors.calls != 0 || strip.presents != 0 {
		t.Error("an empty transaction caused side effects")
	}
}

func TestPollWithoutDataIsIdle(t *testing.T) {
	_, disp, _, motors, _ := newTestRig(24)

	for i := 0; i < 5; i++ {
		if disp.Poll() {
			t.Fatal("Poll reported work with nothing pending")
		}
	}
	if motors.calls != 0 {
		t.Error("idle polling commanded the motors")
	}
}
