package main

import (
	"go.bug.st/serial"
)

// OpenPort opens the panel's serial device at baud, 8N1.
func OpenPort(device string, baud int) (serial.Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	return serial.Open(device, mode)
}
