// Package i2c provides a minimal bus abstraction and the address scanner
// behind the "scan" command.
package i2c

import (
	"fmt"
	"io"
)

// Address range probed by Scan (7-bit addressing, reserved ends excluded).
const (
	firstAddr = 1
	lastAddr  = 126
)

// Bus performs one bus transaction, the shape of machine.I2C.Tx. A
// zero-length write acts as a presence probe: the error reports whether
// the address acknowledged.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Scan probes every addressable slot, reports responders to w, and tags
// the configured display address. Returns the number of devices found.
func Scan(w io.Writer, bus Bus, lcdAddr uint16) int {
	fmt.Fprintln(w, "\n--- I2C Device Scanner ---")

	devices := 0
	for addr := uint16(firstAddr); addr <= lastAddr; addr++ {
		if err := bus.Tx(addr, []byte{}, nil); err != nil {
			continue
		}

		fmt.Fprintf(w, "I2C device found at 0x%02X (%d)\n", addr, addr)
		devices++

		if addr == lcdAddr {
			fmt.Fprintln(w, "  → LCD Display")
		}
	}

	if devices == 0 {
		fmt.Fprintln(w, "No I2C devices found!")
		fmt.Fprintln(w, "Check wiring: SDA->A4, SCL->A5")
	}
	fmt.Fprintf(w, "--- Scan Complete ---\n\n")

	return devices
}
