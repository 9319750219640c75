// Package comm implements the host side of the wheel-controller bus
// protocol: checksummed frame building, the encoder read-out sequence
// and odometry accumulation over the free-running counters.
package comm

import (
	"fmt"

	"triangula/protocol"
)

// Bus abstracts one attached bus device. Writes carry a whole command
// transaction; reads return one byte per transaction, mirroring the
// slave's callback model on the other end of the wire.
type Bus interface {
	Write(data []byte) error
	ReadByte() (byte, error)
}

// Encoders is one read-out of the three free-running axis counters.
type Encoders struct {
	A, B, C uint16
}

// Client speaks the wheel-controller protocol over a Bus.
type Client struct {
	bus Bus
}

// NewClient wraps a bus device in a protocol client.
func NewClient(bus Bus) *Client {
	return &Client{bus: bus}
}

// SetMotorSpeeds commands the three wheel channels. The controller
// applies them open loop; the only feedback path is ReadEncoders.
func (c *Client) SetMotorSpeeds(ch0, ch1, ch2 int8) error {
	f := frame(protocol.OpMotorSpeedSet, biasByte(ch0), biasByte(ch1), biasByte(ch2))
	if err := c.bus.Write(f); err != nil {
		return fmt.Errorf("motor speed set: %w", err)
	}
	return nil
}

// Stop commands every channel to zero speed.
func (c *Client) Stop() error {
	return c.SetMotorSpeeds(0, 0, 0)
}

// SetSolidColour paints the whole light strip one RGB colour.
func (c *Client) SetSolidColour(r, g, b uint8) error {
	if err := c.bus.Write(frame(protocol.OpSetSolidColour, r, g, b)); err != nil {
		return fmt.Errorf("set solid colour: %w", err)
	}
	return nil
}

// ReadEncoders arms a fresh snapshot on the controller and reads all
// six bytes back. Don't interleave two ReadEncoders calls: the slave
// has no interlock against re-arming mid-read, sequencing is ours.
func (c *Client) ReadEncoders() (Encoders, error) {
	if err := c.bus.Write([]byte{protocol.OpEncoderRead}); err != nil {
		return Encoders{}, fmt.Errorf("arm encoder read: %w", err)
	}
	var raw [protocol.SnapshotLen]byte
	for i := range raw {
		b, err := c.bus.ReadByte()
		if err != nil {
			return Encoders{}, fmt.Errorf("encoder read byte %d: %w", i, err)
		}
		raw[i] = b
	}
	cc, bb, aa := protocol.DecodeSnapshot(raw[:])
	return Encoders{A: aa, B: bb, C: cc}, nil
}

// frame appends the XOR checksum over opcode and payload.
func frame(opcode byte, payload ...byte) []byte {
	f := append([]byte{opcode}, payload...)
	return append(f, protocol.Checksum(f))
}

// biasByte maps a signed channel speed onto its wire byte.
func biasByte(speed int8) byte {
	return byte(int(speed) + protocol.SpeedBias)
}
