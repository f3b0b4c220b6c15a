package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/monitor"
)

func newTestRenderer() (*Renderer, *monitor.State, *TextDevice) {
	cfg := config.Default()
	st := monitor.NewState()
	dev := NewTextDevice(cfg.LCD.Cols, cfg.LCD.Rows)
	return New(&cfg.LCD, st, dev), st, dev
}

func TestRender_ValidValues(t *testing.T) {
	r, st, dev := newTestRenderer()
	st.RoomTemp = 24.0
	st.AlgaeTemp = 22.5

	r.Render()

	lines := dev.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Room: 24.0°C    ", lines[0])
	assert.Equal(t, "Algae:22.5°C    ", lines[1])
}

func TestRender_ErrorMarker(t *testing.T) {
	tests := []struct {
		name string
		temp float32
		want string
	}{
		{name: "negative is invalid", temp: -0.1, want: "ERROR"},
		{name: "zero is valid", temp: 0.0, want: "0.0°C"},
		{name: "just under the bound is valid", temp: 149.9, want: "149.9°C"},
		{name: "exactly 150 is invalid", temp: 150.0, want: "ERROR"},
		{name: "far out of range", temp: 499.5, want: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, st, dev := newTestRenderer()
			st.RoomTemp = tt.temp

			r.Render()

			assert.Contains(t, dev.Lines()[0], tt.want)
		})
	}
}

func TestRender_SimulationFlag(t *testing.T) {
	r, st, dev := newTestRenderer()
	st.RoomTemp = 24.0
	st.AlgaeTemp = 22.0

	r.Render()
	line := dev.Lines()[0]
	assert.Equal(t, byte(' '), line[len(line)-1])

	st.Simulation = true
	r.Render()
	line = dev.Lines()[0]
	assert.Equal(t, byte('F'), line[len(line)-1], "simulation flag sits in the top-right corner")
}

func TestWelcome(t *testing.T) {
	r, _, dev := newTestRenderer()

	r.Welcome()

	lines := dev.Lines()
	assert.Contains(t, lines[0], "Algae Cooling")
	assert.Contains(t, lines[1], "Starting...")
}

func TestTextDevice_ClipsAtLastColumn(t *testing.T) {
	dev := NewTextDevice(16, 2)

	require.NoError(t, dev.SetCursor(12, 0))
	require.NoError(t, dev.Print([]byte("ABCDEFG")))

	assert.Equal(t, "            ABCD", dev.Lines()[0])
}

func TestTextDevice_OnUpdate(t *testing.T) {
	dev := NewTextDevice(16, 2)

	var got []string
	dev.OnUpdate(func(lines []string) { got = lines })

	require.NoError(t, dev.Print([]byte("hi")))
	require.Len(t, got, 2)
	assert.Equal(t, "hi              ", got[0])
}
