// Package protocol defines the wire protocol spoken between the wheel
// controller and its host over the byte-oriented bus: opcodes, framing
// limits, the XOR checksum and the encoder snapshot layout.
package protocol

// Bus identity and framing limits.
const (
	SlaveAddress = 0x70 // fixed 7-bit bus address of the wheel controller
	MaxSentBytes = 5    // longest write transaction the controller accepts
	SnapshotLen  = 6    // encoder read-out: three big-endian uint16 counters
)

// Opcodes carried in byte 0 of every write transaction.
const (
	OpMotorSpeedSet  = 0x20 // three biased speed bytes, then XOR checksum
	OpSetSolidColour = 0x21 // R, G, B, then XOR checksum
	OpEncoderRead    = 0x22 // no payload; arms the encoder snapshot
)

// SpeedBias is added to a signed channel speed to form its wire byte.
// The controller subtracts it again, so 128 on the wire means stopped.
const SpeedBias = 128
