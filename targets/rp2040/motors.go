//go:build rp2040

package main

import (
	"machine"

	"triangula/core"
)

// pwmPeripheral abstracts over TinyGo's unexported *pwmGroup type.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// H-bridge wiring per wheel: two direction pins plus a PWM enable.
var motorPins = [core.MotorChannels]struct {
	in1, in2, en machine.Pin
}{
	{machine.GP10, machine.GP11, machine.GP20},
	{machine.GP12, machine.GP13, machine.GP21},
	{machine.GP14, machine.GP15, machine.GP22},
}

const motorPWMPeriod = uint64(1e9) / 25000 // 25 kHz, above audible range

type motorChannel struct {
	in1, in2 machine.Pin
	pwm      pwmPeripheral
	pwmCh    uint8
}

// motorBank implements core.MotorDriver for the three wheel H-bridges.
type motorBank struct {
	wheels [core.MotorChannels]motorChannel
}

func newMotorBank() *motorBank {
	b := &motorBank{}
	for i, pins := range motorPins {
		pins.in1.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pins.in2.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pins.en.Configure(machine.PinConfig{Mode: machine.PinPWM})

		pwm := pwmForPin(pins.en)
		pwm.Configure(machine.PWMConfig{Period: motorPWMPeriod})
		ch, err := pwm.Channel(pins.en)
		if err != nil {
			continue
		}
		b.wheels[i] = motorChannel{in1: pins.in1, in2: pins.in2, pwm: pwm, pwmCh: ch}
	}
	return b
}

// SetSpeed drives one wheel open loop. Sign picks the bridge direction,
// magnitude scales linearly onto the PWM duty range.
func (b *motorBank) SetSpeed(channel int, speed int8) {
	if channel < 0 || channel >= core.MotorChannels {
		return
	}
	w := &b.wheels[channel]
	if w.pwm == nil {
		return
	}

	mag := uint32(speed)
	switch {
	case speed > 0:
		w.in1.High()
		w.in2.Low()
	case speed < 0:
		w.in1.Low()
		w.in2.High()
		mag = uint32(-int16(speed))
	default:
		w.in1.Low()
		w.in2.Low()
	}
	w.pwm.Set(w.pwmCh, w.pwm.Top()*mag/127)
}

// pwmForPin maps a GPIO to its PWM slice: slice = (pin >> 1) & 7.
func pwmForPin(pin machine.Pin) pwmPeripheral {
	switch (uint8(pin) >> 1) & 0x7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}
