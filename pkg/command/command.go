// Package command interprets the line-oriented serial protocol: one
// newline-terminated command in, human-readable text out.
package command

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/i2c"
	"github.com/itohio/algaemon/pkg/monitor"
	"github.com/itohio/algaemon/pkg/sensor"
)

// Accepted range for "set room"/"set algae" arguments, exclusive bounds.
const (
	minSetTemp = -50.0
	maxSetTemp = 100.0
)

// Interpreter dispatches command lines against the fixed command table.
// Effects are synchronous; the loop does not continue until a command
// completed.
type Interpreter struct {
	state   *monitor.State
	sampler *sensor.Sampler
	bus     i2c.Bus
	lcdAddr uint16
	out     io.Writer
}

var _ monitor.CommandHandler = (*Interpreter)(nil)

// New creates an interpreter writing responses to out.
func New(cfg *config.Config, st *monitor.State, sampler *sensor.Sampler, bus i2c.Bus, out io.Writer) *Interpreter {
	return &Interpreter{
		state:   st,
		sampler: sampler,
		bus:     bus,
		lcdAddr: uint16(cfg.LCD.Address),
		out:     out,
	}
}

// Handle consumes one command line: trims, case-folds and dispatches it.
// Empty lines are ignored; anything unrecognized gets exactly one error
// message and no state change.
func (i *Interpreter) Handle(line string) {
	cmd := strings.ToLower(strings.TrimSpace(line))

	switch {
	case cmd == "":

	case cmd == "scan":
		i.Scan()

	case cmd == "fake on":
		i.state.Simulation = true
		fmt.Fprintln(i.out, "✓ Fake mode ENABLED")

	case cmd == "fake off":
		i.state.Simulation = false
		fmt.Fprintln(i.out, "✓ Fake mode DISABLED - Using real sensors")

	case strings.HasPrefix(cmd, "set room "):
		i.setTemp("Room", strings.TrimPrefix(cmd, "set room "), i.sampler.SetRoom)

	case strings.HasPrefix(cmd, "set algae "):
		i.setTemp("Algae", strings.TrimPrefix(cmd, "set algae "), i.sampler.SetAlgae)

	case cmd == "status":
		i.status()

	case cmd == "debug on":
		i.state.Debug = true
		fmt.Fprintln(i.out, "✓ Debug mode ENABLED - Showing ADC values")

	case cmd == "debug off":
		i.state.Debug = false
		fmt.Fprintln(i.out, "✓ Debug mode DISABLED")

	case cmd == "calibrate":
		i.sampler.Calibrate(i.out)

	case cmd == "help":
		i.Help()

	default:
		fmt.Fprintln(i.out, "✗ Unknown command. Type 'help' for commands.")
	}
}

// setTemp parses and applies a synthetic temperature. An unparsable or
// out-of-range argument is rejected and the prior value retained.
func (i *Interpreter) setTemp(label, arg string, apply func(float32)) {
	v, err := strconv.ParseFloat(strings.TrimSpace(arg), 32)
	if err != nil || v <= minSetTemp || v >= maxSetTemp {
		fmt.Fprintln(i.out, "✗ Invalid temperature (-50 to 100°C)")
		return
	}

	apply(float32(v))
	fmt.Fprintf(i.out, "✓ %s temp set to: %.1f°C\n", label, v)
}

// Scan probes the bus and runs the diagnostic sensor readout. Also part of
// the startup sequence.
func (i *Interpreter) Scan() {
	i2c.Scan(i.out, i.bus, i.lcdAddr)
	i.sampler.Test(i.out)
}

// status prints the current mode, debug flag and values, plus the
// synthetic values while simulating.
func (i *Interpreter) status() {
	fmt.Fprintln(i.out, "\n=== SYSTEM STATUS ===")

	mode := "REAL SENSORS"
	if i.state.Simulation {
		mode = "FAKE/MOCK"
	}
	fmt.Fprintf(i.out, "Mode: %s\n", mode)

	debug := "OFF"
	if i.state.Debug {
		debug = "ON"
	}
	fmt.Fprintf(i.out, "Debug: %s\n", debug)

	fmt.Fprintf(i.out, "Room Temp: %.1f°C\n", i.state.RoomTemp)
	fmt.Fprintf(i.out, "Algae Temp: %.1f°C\n", i.state.AlgaeTemp)

	if i.state.Simulation {
		fmt.Fprintf(i.out, "Fake Base Room: %.1f°C\n", i.sampler.Room())
		fmt.Fprintf(i.out, "Fake Base Algae: %.1f°C\n", i.sampler.Algae())
	}

	fmt.Fprintf(i.out, "====================\n\n")
}

// Help prints the command table.
func (i *Interpreter) Help() {
	fmt.Fprintln(i.out, "\n=== AVAILABLE COMMANDS ===")
	fmt.Fprintln(i.out, "scan              - Scan I2C and test LM35 sensors")
	fmt.Fprintln(i.out, "fake on           - Enable mock/fake readings")
	fmt.Fprintln(i.out, "fake off          - Use real sensor readings")
	fmt.Fprintln(i.out, "set room 25.5     - Set fake room temp to 25.5°C")
	fmt.Fprintln(i.out, "set algae 22.0    - Set fake algae temp to 22.0°C")
	fmt.Fprintln(i.out, "status            - Show current temperatures")
	fmt.Fprintln(i.out, "debug on          - Show ADC values and voltages")
	fmt.Fprintln(i.out, "debug off         - Disable debug output")
	fmt.Fprintln(i.out, "calibrate         - Show detailed sensor readings")
	fmt.Fprintln(i.out, "help              - Show this help menu")
	fmt.Fprintf(i.out, "=========================\n\n")
}
