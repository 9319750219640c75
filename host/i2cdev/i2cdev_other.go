//go:build !linux

package i2cdev

import "errors"

var errUnsupported = errors.New("i2cdev: /dev/i2c access requires linux")

// Open is unavailable off-linux; use the serial bridge instead.
func Open(path string, addr uint8) (*Device, error) {
	return nil, errUnsupported
}

func (d *Device) Write(data []byte) error { return errUnsupported }
func (d *Device) ReadByte() (byte, error) { return 0, errUnsupported }
func (d *Device) Close() error            { return errUnsupported }
