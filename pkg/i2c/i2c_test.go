package i2c

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_ReportsDevices(t *testing.T) {
	bus := &MockBus{Present: []uint16{0x27, 0x48}}
	out := &bytes.Buffer{}

	found := Scan(out, bus, 0x27)

	assert.Equal(t, 2, found)
	assert.Contains(t, out.String(), "I2C device found at 0x27 (39)")
	assert.Contains(t, out.String(), "I2C device found at 0x48 (72)")
	assert.Contains(t, out.String(), "→ LCD Display")
}

func TestScan_TagsOnlyConfiguredDisplayAddress(t *testing.T) {
	bus := &MockBus{Present: []uint16{0x3F}}
	out := &bytes.Buffer{}

	found := Scan(out, bus, 0x27)

	assert.Equal(t, 1, found)
	assert.NotContains(t, out.String(), "LCD Display")
}

func TestScan_NoDevices(t *testing.T) {
	bus := &MockBus{}
	out := &bytes.Buffer{}

	found := Scan(out, bus, 0x27)

	assert.Equal(t, 0, found)
	assert.Contains(t, out.String(), "No I2C devices found!")
	assert.Contains(t, out.String(), "Check wiring")
}

func TestScan_ProbesFullAddressRange(t *testing.T) {
	// Reserved addresses 0 and 127 must not be probed.
	probed := map[uint16]bool{}
	bus := busFunc(func(addr uint16, w, r []byte) error {
		probed[addr] = true
		return assert.AnError
	})

	Scan(&bytes.Buffer{}, bus, 0x27)

	assert.Len(t, probed, 126)
	assert.False(t, probed[0])
	assert.False(t, probed[127])
}

type busFunc func(addr uint16, w, r []byte) error

func (f busFunc) Tx(addr uint16, w, r []byte) error { return f(addr, w, r) }
