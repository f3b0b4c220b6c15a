package display

import (
	"strings"
	"sync"
)

// TextDevice is an in-memory character display. It backs tests, headless
// mode, and the GUI display mirror.
type TextDevice struct {
	mu       sync.Mutex
	cols     int
	rows     int
	cells    [][]byte
	col, row int
	onUpdate func(lines []string)
}

var _ Device = (*TextDevice)(nil)

// NewTextDevice creates a blank cols-by-rows display.
func NewTextDevice(cols, rows int) *TextDevice {
	d := &TextDevice{cols: cols, rows: rows}
	d.cells = blankCells(cols, rows)
	return d
}

// OnUpdate registers a callback invoked with the display contents after
// every write.
func (d *TextDevice) OnUpdate(fn func(lines []string)) {
	d.mu.Lock()
	d.onUpdate = fn
	d.mu.Unlock()
}

// ClearDisplay blanks all cells and homes the cursor.
func (d *TextDevice) ClearDisplay() error {
	d.mu.Lock()
	d.cells = blankCells(d.cols, d.rows)
	d.col, d.row = 0, 0
	fn, lines := d.onUpdate, d.linesLocked()
	d.mu.Unlock()

	if fn != nil {
		fn(lines)
	}
	return nil
}

// SetCursor moves the write position. Out-of-range positions are clipped.
func (d *TextDevice) SetCursor(col, row uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.col = int(col)
	d.row = int(row)
	if d.col >= d.cols {
		d.col = d.cols - 1
	}
	if d.row >= d.rows {
		d.row = d.rows - 1
	}
	return nil
}

// Print writes data at the cursor, advancing it. Writes past the last
// column are dropped, as on the real panel without scrolling.
func (d *TextDevice) Print(data []byte) error {
	d.mu.Lock()
	for _, b := range data {
		if d.col < d.cols {
			d.cells[d.row][d.col] = b
			d.col++
		}
	}
	fn, lines := d.onUpdate, d.linesLocked()
	d.mu.Unlock()

	if fn != nil {
		fn(lines)
	}
	return nil
}

// Lines returns the display contents as printable strings, with the
// character-ROM degree glyph mapped to '°'.
func (d *TextDevice) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.linesLocked()
}

func (d *TextDevice) linesLocked() []string {
	lines := make([]string, d.rows)
	for r, row := range d.cells {
		var b strings.Builder
		for _, c := range row {
			if c == degreeGlyph {
				b.WriteRune('°')
			} else {
				b.WriteByte(c)
			}
		}
		lines[r] = b.String()
	}
	return lines
}

func blankCells(cols, rows int) [][]byte {
	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = ' '
		}
	}
	return cells
}
