//go:build !tinygo

package core

// State mirrors the saved interrupt state used on hardware builds.
type State uintptr

// disableInterrupts is a no-op off-target: tests drive the interrupt
// callbacks and the main loop from a single goroutine.
func disableInterrupts() State {
	return 0
}

func restoreInterrupts(state State) {
}
