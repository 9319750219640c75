package protocol

// CounterRange is the modulus of the free-running axis counters.
const CounterRange = 1 << 16

// Difference returns the signed tick delta b-a between two free-running
// counter readings. The unsigned subtraction wraps modulo 2^16 and the
// int16 conversion folds anything past half the range back onto the
// short way around, so the result is exact whenever the true motion
// between the readings stayed within ±32767 ticks, no matter how often
// the counter wrapped.
func Difference(a, b uint16) int16 {
	return int16(b - a)
}
