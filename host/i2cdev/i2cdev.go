// Package i2cdev drives the wheel controller directly through a Linux
// /dev/i2c-N bus controller, the normal deployment where the host sits
// on the robot itself.
package i2cdev

// Device is an open handle on one slave behind a bus controller. It
// implements comm.Bus.
type Device struct {
	fd int
}
