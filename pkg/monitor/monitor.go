// Package monitor drives the cooperative main loop: serial command intake,
// periodic sensor sampling, display refresh and synthetic-value drift, all
// interleaved on a single goroutine with elapsed-time checks against a
// monotonic clock.
package monitor

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/itohio/algaemon/pkg/config"
)

// loopDelay is the idle sleep between loop passes. Short enough that
// command latency is dominated by sampling, not by the loop itself.
const loopDelay = time.Millisecond

// Sampler updates temperatures in the state record and drifts synthetic
// values while simulation mode is active. Collaborators are constructed
// around the state record, so the operations take no arguments.
type Sampler interface {
	Update()
	Fluctuate()
}

// Renderer refreshes the character display from the state record.
type Renderer interface {
	Render()
}

// CommandHandler consumes one newline-terminated command line.
type CommandHandler interface {
	Handle(line string)
}

// Monitor owns the state record and runs the polling loop.
type Monitor struct {
	state    *State
	clock    clockwork.Clock
	lines    <-chan string
	sampler  Sampler
	renderer Renderer
	commands CommandHandler

	updateInterval      time.Duration
	fluctuationInterval time.Duration

	// Last-fired timestamps, advanced only when the interval elapses.
	// Zero values make both activities fire on the first pass.
	lastUpdate      time.Time
	lastFluctuation time.Time

	// OnStart, if set, runs once before the first loop pass. Callers use
	// it for the startup sequence (banner, welcome screen, initial scan).
	OnStart func()
}

// New creates a monitor around the given collaborators. lines carries
// complete command lines; at most one is consumed per loop pass.
func New(cfg *config.Config, st *State, clock clockwork.Clock, lines <-chan string, sampler Sampler, renderer Renderer, commands CommandHandler) *Monitor {
	return &Monitor{
		state:               st,
		clock:               clock,
		lines:               lines,
		sampler:             sampler,
		renderer:            renderer,
		commands:            commands,
		updateInterval:      cfg.Timing.UpdateInterval,
		fluctuationInterval: cfg.Timing.FluctuationInterval,
	}
}

// State returns the shared state record.
func (m *Monitor) State() *State {
	return m.state
}

// Run executes the polling loop until ctx is cancelled. Each pass drains
// at most one pending command line, then runs the elapsed-time checks.
func (m *Monitor) Run(ctx context.Context) error {
	if m.OnStart != nil {
		m.OnStart()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		select {
		case line, ok := <-m.lines:
			if ok {
				m.commands.Handle(line)
			}
		default:
		}

		m.Tick(m.clock.Now())

		m.clock.Sleep(loopDelay)
	}
}

// Tick runs the periodic activities due at now. Split out from Run so the
// interval logic is testable with synthetic timestamps.
func (m *Monitor) Tick(now time.Time) {
	if now.Sub(m.lastUpdate) >= m.updateInterval {
		m.lastUpdate = now
		m.sampler.Update()
		m.renderer.Render()
	}

	if m.state.Simulation && now.Sub(m.lastFluctuation) >= m.fluctuationInterval {
		m.lastFluctuation = now
		m.sampler.Fluctuate()
	}
}
