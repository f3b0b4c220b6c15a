// Package sensor reads the two LM35 analog channels, averages raw converter
// counts into temperatures, and maintains the synthetic readings used in
// simulation mode.
package sensor

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/jonboulle/clockwork"

	"github.com/itohio/algaemon/pkg/config"
	"github.com/itohio/algaemon/pkg/monitor"
)

// Analog channel assignments.
const (
	RoomChannel  = 0
	AlgaeChannel = 1
)

const (
	// degreesPerVolt converts LM35 output voltage to °C (10mV per degree).
	degreesPerVolt = 100.0

	// maxDrift bounds the synthetic random walk around its baseline (°C).
	maxDrift = 2.0

	// maxValidTemp is the exclusive upper bound of the plausible range.
	// Values at or above it (or below zero) are treated as "no reading".
	maxValidTemp = 150.0
)

// ADC reads raw converter counts from an analog channel. Mirrors the shape
// of machine.ADC.Get: hardware reads have no failure path.
type ADC interface {
	ReadChannel(channel int) uint16
}

// Sampler converts analog readings into temperatures and owns the
// synthetic values of simulation mode.
type Sampler struct {
	cfg   *config.Config
	state *monitor.State
	adc   ADC
	clock clockwork.Clock
	out   io.Writer

	fakeRoom  float32
	fakeAlgae float32
	baseRoom  float32
	baseAlgae float32
	baseSet   bool
}

var _ monitor.Sampler = (*Sampler)(nil)

// New creates a sampler around the shared state record. Diagnostic output
// is written to out.
func New(cfg *config.Config, st *monitor.State, adc ADC, clock clockwork.Clock, out io.Writer) *Sampler {
	return &Sampler{
		cfg:       cfg,
		state:     st,
		adc:       adc,
		clock:     clock,
		out:       out,
		fakeRoom:  cfg.Sim.Room,
		fakeAlgae: cfg.Sim.Algae,
	}
}

// Read samples one channel and returns the temperature in °C. It blocks
// for samples_per_read × sample_delay.
func (s *Sampler) Read(channel int) float32 {
	avg, voltage, temp := s.readAveraged(channel, s.cfg.ADC.SamplesPerRead)

	if s.state.Debug {
		fmt.Fprintf(s.out, "  [Ch %d] ADC: %.1f | Voltage: %.3fV | Temp: %.2f°C\n", channel, avg, voltage, temp)
	}

	return temp
}

// readAveraged takes samples consecutive readings with the configured
// inter-sample delay and converts the average to a temperature.
func (s *Sampler) readAveraged(channel, samples int) (avg, voltage, temp float32) {
	var sum uint32
	for i := 0; i < samples; i++ {
		sum += uint32(s.adc.ReadChannel(channel))
		s.clock.Sleep(s.cfg.ADC.SampleDelay)
	}

	avg = float32(sum) / float32(samples)
	voltage = avg / s.cfg.ADC.Resolution * s.cfg.ADC.VRef
	temp = voltage * degreesPerVolt
	return avg, voltage, temp
}

// Update refreshes the state record: synthetic values in simulation mode,
// sampled values otherwise. Out-of-range sampled values are stored anyway
// (the renderer substitutes an error marker) and warned about in debug mode.
func (s *Sampler) Update() {
	if s.state.Simulation {
		s.state.RoomTemp = s.fakeRoom
		s.state.AlgaeTemp = s.fakeAlgae
	} else {
		s.state.RoomTemp = s.Read(RoomChannel)
		s.state.AlgaeTemp = s.Read(AlgaeChannel)

		if s.state.RoomTemp < 0 || s.state.RoomTemp >= maxValidTemp {
			if s.state.Debug {
				fmt.Fprintln(s.out, "WARNING: Room sensor reading out of range!")
			}
		}
		if s.state.AlgaeTemp < 0 || s.state.AlgaeTemp >= maxValidTemp {
			if s.state.Debug {
				fmt.Fprintln(s.out, "WARNING: Algae sensor reading out of range!")
			}
		}
	}

	if s.state.Debug {
		mode := "REAL"
		if s.state.Simulation {
			mode = "FAKE"
		}
		fmt.Fprintf(s.out, "Room: %.1f°C | Algae: %.1f°C | Mode: %s\n", s.state.RoomTemp, s.state.AlgaeTemp, mode)
	}
}

// Fluctuate perturbs both synthetic values by a uniform offset in
// [-0.5, +0.5]. Baselines latch on the first call; a value that strays
// more than maxDrift from its baseline is reset to baseline plus a uniform
// offset in [-maxDrift, +maxDrift].
func (s *Sampler) Fluctuate() {
	s.fakeRoom += rand.Float32() - 0.5
	s.fakeAlgae += rand.Float32() - 0.5

	if !s.baseSet {
		s.baseRoom = s.fakeRoom
		s.baseAlgae = s.fakeAlgae
		s.baseSet = true
	}

	if math32.Abs(s.fakeRoom-s.baseRoom) > maxDrift {
		s.fakeRoom = s.baseRoom + (rand.Float32()*2-1)*maxDrift
	}
	if math32.Abs(s.fakeAlgae-s.baseAlgae) > maxDrift {
		s.fakeAlgae = s.baseAlgae + (rand.Float32()*2-1)*maxDrift
	}
}

// SetRoom sets the synthetic room temperature and re-latches its baseline,
// so the random walk stays near the requested value.
func (s *Sampler) SetRoom(temp float32) {
	s.fakeRoom = temp
	s.baseRoom = temp
	s.baseSet = true
}

// SetAlgae sets the synthetic algae temperature and re-latches its baseline.
func (s *Sampler) SetAlgae(temp float32) {
	s.fakeAlgae = temp
	s.baseAlgae = temp
	s.baseSet = true
}

// Room returns the current synthetic room temperature.
func (s *Sampler) Room() float32 { return s.fakeRoom }

// Algae returns the current synthetic algae temperature.
func (s *Sampler) Algae() float32 { return s.fakeAlgae }

// Test writes a single-shot readout of both channels, used by the scan
// command and at startup.
func (s *Sampler) Test(w io.Writer) {
	fmt.Fprintln(w, "--- LM35 Sensor Test ---")
	fmt.Fprintf(w, "Room Sensor (Ch %d): T=%.1f°C\n", RoomChannel, s.Read(RoomChannel))
	fmt.Fprintf(w, "Algae Sensor (Ch %d): T=%.1f°C\n", AlgaeChannel, s.Read(AlgaeChannel))
	fmt.Fprintf(w, "--- Test Complete ---\n\n")
}

// Calibrate writes a detailed averaged readout of both channels together
// with LM35 troubleshooting guidance.
func (s *Sampler) Calibrate(w io.Writer) {
	fmt.Fprintln(w, "\n=== LM35 CALIBRATION INFO ===")
	fmt.Fprintln(w, "LM35 outputs 10mV per °C")
	fmt.Fprintln(w, "At 25°C: ~250mV (0.25V)")
	fmt.Fprintln(w, "At 30°C: ~300mV (0.30V)")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Current Readings (averaged over %d samples):\n", s.cfg.ADC.CalibrationSamples)

	roomAvg, roomVolt, roomTemp := s.readAveraged(RoomChannel, s.cfg.ADC.CalibrationSamples)
	fmt.Fprintf(w, "Room (Ch %d): ADC=%.1f, Voltage=%.3fV, Temp=%.2f°C\n", RoomChannel, roomAvg, roomVolt, roomTemp)

	algaeAvg, algaeVolt, algaeTemp := s.readAveraged(AlgaeChannel, s.cfg.ADC.CalibrationSamples)
	fmt.Fprintf(w, "Algae (Ch %d): ADC=%.1f, Voltage=%.3fV, Temp=%.2f°C\n", AlgaeChannel, algaeAvg, algaeVolt, algaeTemp)

	fmt.Fprintln(w, "\nTroubleshooting:")
	fmt.Fprintln(w, "- If temp shows ~49°C indoors → Sensor backwards!")
	fmt.Fprintln(w, "- If temp shows 0°C → Check OUTPUT pin connection")
	fmt.Fprintln(w, "- If temp shows 100+°C → Check VCC/GND wiring")
	fmt.Fprintln(w, "- LM35 pinout (flat side facing you): VCC | OUT | GND")
	fmt.Fprintf(w, "================================\n\n")
}
