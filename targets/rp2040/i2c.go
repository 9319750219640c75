//go:build rp2040

package main

import (
	"machine"

	"triangula/core"
	"triangula/protocol"
)

// configureBusTarget puts the I2C peripheral in target mode on the
// controller's fixed slave address.
func configureBusTarget(i2c *machine.I2C, addr uint16) error {
	if err := i2c.Configure(machine.I2CConfig{
		Mode: machine.I2CModeTarget,
		SDA:  machine.I2C0_SDA_PIN,
		SCL:  machine.I2C0_SCL_PIN,
	}); err != nil {
		return err
	}
	return i2c.Listen(addr)
}

// runBusEvents services bus transactions forever. Write transactions
// frame into the command buffer; each read transaction replies with one
// byte of the armed snapshot. The receive buffer is larger than the
// command capacity on purpose: oversized writes drain here and the
// excess is discarded by the bus target.
func runBusEvents(i2c *machine.I2C, bus *core.BusTarget) {
	var buf [4 * protocol.MaxSentBytes]byte
	var reply [1]byte
	for {
		evt, n, err := i2c.WaitForEvent(buf[:])
		if err != nil {
			continue
		}
		switch evt {
		case machine.I2CReceive:
			bus.OnReceive(buf[:n])
		case machine.I2CRequest:
			reply[0] = bus.OnRequest()
			i2c.Reply(reply[:])
		case machine.I2CFinish:
			// Transaction boundary; nothing to do.
		}
	}
}
