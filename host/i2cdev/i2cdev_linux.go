package i2cdev

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// I2C_SLAVE from linux/i2c-dev.h: bind the fd to one slave address so
// plain read/write calls become bus transactions against it.
const ioctlSetSlave = 0x0703

// Open opens a bus device node and binds it to the slave address.
func Open(path string, addr uint8) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := unix.IoctlSetInt(fd, ioctlSetSlave, int(addr)); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("bind slave address 0x%02X: %w", addr, err)
	}
	return &Device{fd: fd}, nil
}

// Write performs one bus write transaction.
func (d *Device) Write(data []byte) error {
	if _, err := unix.Write(d.fd, data); err != nil {
		return fmt.Errorf("bus write: %w", err)
	}
	return nil
}

// ReadByte performs one single-byte bus read transaction.
func (d *Device) ReadByte() (byte, error) {
	var one [1]byte
	n, err := unix.Read(d.fd, one[:])
	if err != nil {
		return 0, fmt.Errorf("bus read: %w", err)
	}
	if n != 1 {
		return 0, fmt.Errorf("bus read returned %d bytes", n)
	}
	return one[0], nil
}

// Close releases the device node.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}
