package serial

import (
	"fmt"
	"io"

	"triangula/protocol"
)

// Bridge adapter wire format: each host request is one framed exchange.
//
//	'W' len payload...  -> bridge performs a bus write transaction
//	'R'                 -> bridge performs a bus read, returns one byte
//
// The bridge firmware addresses the controller's fixed slave address
// itself, so no address byte travels over the UART.
const (
	bridgeWrite = 'W'
	bridgeRead  = 'R'
)

// Bridge implements comm.Bus over a serial Port connected to the
// UART-to-bus bridge adapter.
type Bridge struct {
	port Port
}

// NewBridge wraps an open port.
func NewBridge(port Port) *Bridge {
	return &Bridge{port: port}
}

// Write forwards one bus write transaction through the bridge.
func (b *Bridge) Write(data []byte) error {
	if len(data) > protocol.MaxSentBytes {
		return fmt.Errorf("transaction of %d bytes exceeds %d", len(data), protocol.MaxSentBytes)
	}
	frame := make([]byte, 0, len(data)+2)
	frame = append(frame, bridgeWrite, byte(len(data)))
	frame = append(frame, data...)
	if _, err := b.port.Write(frame); err != nil {
		return fmt.Errorf("bridge write: %w", err)
	}
	return nil
}

// ReadByte performs one bus read transaction through the bridge.
func (b *Bridge) ReadByte() (byte, error) {
	if _, err := b.port.Write([]byte{bridgeRead}); err != nil {
		return 0, fmt.Errorf("bridge read request: %w", err)
	}
	var one [1]byte
	if _, err := io.ReadFull(b.port, one[:]); err != nil {
		return 0, fmt.Errorf("bridge read reply: %w", err)
	}
	return one[0], nil
}

// Close closes the underlying port.
func (b *Bridge) Close() error {
	return b.port.Close()
}
