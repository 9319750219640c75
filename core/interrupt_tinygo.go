//go:build tinygo

package core

import "runtime/interrupt"

// disableInterrupts opens a critical section and returns the state to
// restore when it closes. Keep sections short: the quadrature interrupt
// is blocked for their duration.
func disableInterrupts() interrupt.State {
	return interrupt.Disable()
}

func restoreInterrupts(state interrupt.State) {
	interrupt.Restore(state)
}
