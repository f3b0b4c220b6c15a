//go:generate tinygo flash -target=xiao

//go:build tinygo

package main

import (
	"context"
	"fmt"
	"time"

	"machine"

	"github.com/jonboulle/clockwork"
	"tinygo.org/x/drivers/hd44780i2c"

	"github.com/itohio/algaemon/pkg/command"
	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/display"
	"github.com/itohio/algaemon/pkg/monitor"
	"github.com/itohio/algaemon/pkg/sensor"
)

// machineADC maps sensor channels onto the configured machine ADCs.
type machineADC struct {
	channels []machine.ADC
}

func (a *machineADC) ReadChannel(channel int) uint16 {
	return a.channels[channel].Get()
}

func main() {
	cfg := config.Default()
	cfg.ADC.Resolution = adcFullScale
	cfg.ADC.VRef = adcVRef

	machine.InitADC()
	room := machine.ADC{Pin: pinRoomTemp}
	algae := machine.ADC{Pin: pinAlgaeTemp}
	room.Configure(machine.ADCConfig{})
	algae.Configure(machine.ADCConfig{})
	adc := &machineADC{channels: []machine.ADC{room, algae}}

	bus := machine.I2C0
	if err := bus.Configure(machine.I2CConfig{}); err != nil {
		fmt.Fprintf(machine.Serial, "I2C init failed: %v\n", err)
	}

	lcd := hd44780i2c.New(bus, cfg.LCD.Address)
	if err := lcd.Configure(hd44780i2c.Config{
		Width:  uint8(cfg.LCD.Cols),
		Height: uint8(cfg.LCD.Rows),
	}); err != nil {
		fmt.Fprintf(machine.Serial, "LCD init failed: %v\n", err)
	}
	lcd.BacklightOn(true)

	st := monitor.NewState()
	sampler := sensor.New(cfg, st, adc, clockwork.NewRealClock(), machine.Serial)
	renderer := display.New(&cfg.LCD, st, &lcd)
	interp := command.New(cfg, st, sampler, bus, machine.Serial)

	lines := make(chan string, 4)
	go readLines(lines)

	m := monitor.New(cfg, st, clockwork.NewRealClock(), lines, sampler, renderer, interp)
	m.OnStart = func() {
		fmt.Fprintln(machine.Serial, "\n=== Room/Algae Temperature Monitor ===")
		fmt.Fprintln(machine.Serial, "Initializing...")

		renderer.Welcome()
		time.Sleep(time.Second)

		interp.Scan()

		renderer.Clear()
		fmt.Fprintln(machine.Serial, "\nSystem Ready!")
		fmt.Fprintln(machine.Serial, "Type 'help' for commands")
		interp.Help()
	}

	m.Run(context.Background())
}

// readLines accumulates serial bytes into newline-terminated command lines.
// Partial lines stay buffered until the terminator arrives.
func readLines(lines chan<- string) {
	buf := make([]byte, 0, 64)
	for {
		for machine.Serial.Buffered() > 0 {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			if b == '\n' || b == '\r' {
				if len(buf) > 0 {
					lines <- string(buf)
					buf = buf[:0]
				}
				continue
			}
			buf = append(buf, b)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
