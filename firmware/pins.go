//go:build tinygo

package main

import "machine"

const (
	// ADC channels
	pinRoomTemp  = machine.A0
	pinAlgaeTemp = machine.A1

	// machine.ADC readings are left-adjusted to 16 bits regardless of the
	// underlying converter width.
	adcFullScale = 1 << 16

	// The XIAO runs the LM35s from the 3.3V rail.
	adcVRef = 3.3
)
