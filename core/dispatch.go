package core

import "triangula/protocol"

// Fail-safe colour shown when an unrecognized opcode stops the robot.
const (
	errColourR = 255
	errColourG = 0
	errColourB = 0
)

// checksumIndex is where the XOR byte sits for the length-checked
// opcodes: opcode + 3 payload bytes, checksum in byte 4.
const checksumIndex = 4

// Dispatcher owns main-loop command processing: it polls the bus target
// for a freshly framed command, validates it and drives the motor and
// light capabilities. Commands are fire-and-forget; nothing is reported
// back to the host beyond the encoder read-out itself.
type Dispatcher struct {
	bus      *BusTarget
	decoder  *Decoder
	motors   MotorDriver
	lights   LightStrip
	stripLen int

	buf [protocol.MaxSentBytes]byte
}

// NewDispatcher wires the dispatcher to its collaborators. stripLen is
// the pixel count of the attached strip, used to lay out the motion
// band.
func NewDispatcher(bus *BusTarget, decoder *Decoder, motors MotorDriver, lights LightStrip, stripLen int) *Dispatcher {
	return &Dispatcher{
		bus:      bus,
		decoder:  decoder,
		motors:   motors,
		lights:   lights,
		stripLen: stripLen,
	}
}

// Poll processes at most one pending command and reports whether one
// was handled. Call it from the cooperative main loop.
func (d *Dispatcher) Poll() bool {
	n, ok := d.bus.TakeCommand(d.buf[:])
	if !ok {
		return false
	}
	d.dispatch(d.buf[:n])
	return true
}

func (d *Dispatcher) dispatch(cmd []byte) {
	if len(cmd) == 0 {
		return
	}
	switch cmd[0] {
	case protocol.OpMotorSpeedSet:
		if !d.checksumOK(cmd) {
			return
		}
		for ch := 0; ch < MotorChannels; ch++ {
			d.motors.SetSpeed(ch, biasedSpeed(cmd[1+ch]))
		}
		d.showMotionBand(cmd[1:4])

	case protocol.OpSetSolidColour:
		if !d.checksumOK(cmd) {
			return
		}
		d.lights.SetSolidColour(cmd[1], cmd[2], cmd[3])
		d.lights.Present()

	case protocol.OpEncoderRead:
		a, b, c := d.decoder.Counts()
		d.bus.ArmSnapshot(c, b, a)

	default:
		// The one fatal-to-motion path: an opcode we do not know means
		// the host and controller disagree about the protocol, so force
		// a known-safe state.
		d.failSafe()
	}
}

// checksumOK verifies the byte at checksumIndex equals the XOR of all
// bytes before it. A short frame can never validate. Failures drop the
// command with no state change; only the stats counter notices.
func (d *Dispatcher) checksumOK(cmd []byte) bool {
	if len(cmd) <= checksumIndex || protocol.Checksum(cmd[:checksumIndex]) != cmd[checksumIndex] {
		d.bus.noteBadChecksum()
		return false
	}
	return true
}

// biasedSpeed maps a wire byte back to a signed channel speed: the host
// sends speed+128, so 128 means stopped.
func biasedSpeed(b byte) int8 {
	return int8(int(b) - protocol.SpeedBias)
}

// showMotionBand maps the three biased speed bytes straight onto the
// hue wheel and paints them as one interpolated band around the strip,
// so the lights mirror the commanded motion.
func (d *Dispatcher) showMotionBand(speeds []byte) {
	hues := []uint8{speeds[0], speeds[1], speeds[2]}
	per := d.stripLen / len(hues)
	if per < 1 {
		per = 1
	}
	d.lights.ShowHSVInterpolatedBand(hues, per, 0)
	d.lights.Present()
}

func (d *Dispatcher) failSafe() {
	for ch := 0; ch < MotorChannels; ch++ {
		d.motors.SetSpeed(ch, 0)
	}
	d.lights.SetSolidColour(errColourR, errColourG, errColourB)
	d.lights.Present()
}
