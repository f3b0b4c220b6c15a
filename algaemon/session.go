package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
	"go.bug.st/serial"

	"github.com/itohio/algaemon/pkg/command"
	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/display"
	"github.com/itohio/algaemon/pkg/i2c"
	"github.com/itohio/algaemon/pkg/monitor"
	"github.com/itohio/algaemon/pkg/sensor"
)

// session is a live connection to a monitor: command lines go in, protocol
// output comes back, and local sessions also stream display contents.
type session interface {
	Send(line string)
	Output() <-chan string
	// Display streams the 16x2 contents after each write; nil for remote
	// sessions, where the panel is attached to the board.
	Display() <-chan []string
	Close() error
}

// localSession runs the whole monitor in-process against the mock
// converter and an in-memory display.
type localSession struct {
	lines     chan string
	output    chan string
	displayCh chan []string
	cancel    context.CancelFunc
	pw        *io.PipeWriter
}

func newLocalSession(cfg *config.Config) *localSession {
	s := &localSession{
		lines:     make(chan string, 4),
		output:    make(chan string, 64),
		displayCh: make(chan []string, 4),
	}

	pr, pw := io.Pipe()
	s.pw = pw

	st := monitor.NewState()
	adc := sensor.NewMockADC(cfg)
	sampler := sensor.New(cfg, st, adc, clockwork.NewRealClock(), pw)

	dev := display.NewTextDevice(cfg.LCD.Cols, cfg.LCD.Rows)
	dev.OnUpdate(func(lines []string) {
		select {
		case s.displayCh <- lines:
		default:
			// GUI is behind, drop the frame
		}
	})
	renderer := display.New(&cfg.LCD, st, dev)

	bus := &i2c.MockBus{Present: []uint16{uint16(cfg.LCD.Address)}}
	interp := command.New(cfg, st, sampler, bus, pw)

	m := monitor.New(cfg, st, clockwork.NewRealClock(), s.lines, sampler, renderer, interp)
	m.OnStart = func() {
		fmt.Fprintln(pw, "\n=== Room/Algae Temperature Monitor ===")
		fmt.Fprintln(pw, "Initializing... (simulated hardware)")
		renderer.Welcome()
		time.Sleep(time.Second)
		interp.Scan()
		renderer.Clear()
		fmt.Fprintln(pw, "\nSystem Ready!")
		fmt.Fprintln(pw, "Type 'help' for commands")
		interp.Help()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.readOutput(pr)
	go func() {
		if err := m.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Monitor stopped: %v", err)
		}
		pw.Close()
	}()

	return s
}

func (s *localSession) readOutput(pr *io.PipeReader) {
	defer close(s.output)

	scanner := bufio.NewScanner(pr)
	for scanner.Scan() {
		s.output <- scanner.Text()
	}
}

func (s *localSession) Send(line string) {
	select {
	case s.lines <- line:
	default:
		log.Printf("Command buffer full, dropping: %q", line)
	}
}

func (s *localSession) Output() <-chan string    { return s.output }
func (s *localSession) Display() <-chan []string { return s.displayCh }

func (s *localSession) Close() error {
	s.cancel()
	return s.pw.Close()
}

// serialSession bridges to a board over the serial link.
type serialSession struct {
	port   serial.Port
	output chan string
}

func newSerialSession(cfg *config.Config) (*serialSession, error) {
	mode := &serial.Mode{BaudRate: cfg.Serial.BaudRate}

	port, err := serial.Open(cfg.Serial.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Serial.Port, err)
	}

	s := &serialSession{
		port:   port,
		output: make(chan string, 64),
	}
	go s.readOutput()

	return s, nil
}

func (s *serialSession) readOutput() {
	defer close(s.output)

	scanner := bufio.NewScanner(s.port)
	for scanner.Scan() {
		s.output <- scanner.Text()
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Printf("Error reading from serial port: %v", err)
	}
}

func (s *serialSession) Send(line string) {
	if _, err := s.port.Write([]byte(line + "\n")); err != nil {
		log.Printf("Failed to send command: %v", err)
	}
}

func (s *serialSession) Output() <-chan string    { return s.output }
func (s *serialSession) Display() <-chan []string { return nil }

func (s *serialSession) Close() error {
	return s.port.Close()
}
