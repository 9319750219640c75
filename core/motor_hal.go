package core

// MotorChannels is the number of driven wheels.
const MotorChannels = 3

// MotorDriver is the abstract motor interface the dispatcher drives.
// Speeds are open loop: the value is forwarded to the H-bridge as-is,
// there is no feedback path and no error report upward.
type MotorDriver interface {
	// SetSpeed commands one channel to a signed speed in [-128, 127].
	// 0 is stopped; sign selects direction.
	SetSpeed(channel int, speed int8)
}
