// Package display renders the two most recent temperatures onto a 16x2
// character display.
package display

import (
	"fmt"

	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/monitor"
)

// degreeGlyph is the HD44780 character-ROM degree symbol.
const degreeGlyph = 0xDF

// Device is the character display primitive set, the shape of
// hd44780i2c.Device. Write failures are not reported anywhere useful on
// this hardware, so the renderer ignores them.
type Device interface {
	ClearDisplay() error
	SetCursor(col, row uint8) error
	Print(data []byte) error
}

// Renderer formats the state record onto the display.
type Renderer struct {
	cfg   *config.LCDConfig
	state *monitor.State
	dev   Device
}

var _ monitor.Renderer = (*Renderer)(nil)

// New creates a renderer around the shared state record.
func New(cfg *config.LCDConfig, st *monitor.State, dev Device) *Renderer {
	return &Renderer{cfg: cfg, state: st, dev: dev}
}

// Welcome shows the startup screen.
func (r *Renderer) Welcome() {
	_ = r.dev.ClearDisplay()
	_ = r.dev.SetCursor(0, 0)
	_ = r.dev.Print([]byte("Algae Cooling"))
	_ = r.dev.SetCursor(0, 1)
	_ = r.dev.Print([]byte("Starting..."))
}

// Clear blanks the display.
func (r *Renderer) Clear() {
	_ = r.dev.ClearDisplay()
}

// Render writes both temperatures, substituting an error marker for values
// outside the plausible range, and flags simulation mode in the top-right
// corner.
func (r *Renderer) Render() {
	_ = r.dev.ClearDisplay()

	_ = r.dev.SetCursor(0, 0)
	_ = r.dev.Print([]byte("Room:"))
	_ = r.dev.SetCursor(6, 0)
	_ = r.dev.Print(formatTemp(r.state.RoomTemp))

	_ = r.dev.SetCursor(0, 1)
	_ = r.dev.Print([]byte("Algae:"))
	_ = r.dev.SetCursor(6, 1)
	_ = r.dev.Print(formatTemp(r.state.AlgaeTemp))

	if r.state.Simulation {
		_ = r.dev.SetCursor(uint8(r.cfg.Cols-1), 0)
		_ = r.dev.Print([]byte("F"))
	}
}

// formatTemp renders a one-decimal value with the degree glyph, or the
// error marker when the value lies outside [0,150).
func formatTemp(t float32) []byte {
	if t < 0 || t >= 150 {
		return []byte("ERROR")
	}
	// Append the glyph as a raw byte; it is a character-ROM code point,
	// not UTF-8.
	b := []byte(fmt.Sprintf("%.1f", t))
	return append(b, degreeGlyph, 'C')
}
