package sensor

import (
	"math/rand"
	"sync"

	"github.com/itohio/algaemon/pkg/config"
)

// mockNoiseCounts is the amplitude of the synthetic converter noise.
const mockNoiseCounts = 2.0

// MockADC simulates the analog converter for development and testing
// without hardware. Each channel reports counts corresponding to a settable
// temperature, with a little noise.
type MockADC struct {
	mu    sync.Mutex
	cfg   *config.Config
	temps map[int]float32
}

var _ ADC = (*MockADC)(nil)

// NewMockADC creates a mock converter seeded with the configured
// simulation temperatures.
func NewMockADC(cfg *config.Config) *MockADC {
	return &MockADC{
		cfg: cfg,
		temps: map[int]float32{
			RoomChannel:  cfg.Sim.Room,
			AlgaeChannel: cfg.Sim.Algae,
		},
	}
}

// SetTemperature sets the temperature a channel reads back.
func (m *MockADC) SetTemperature(channel int, temp float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.temps[channel] = temp
}

// ReadChannel returns converter counts for the channel's temperature,
// inverting the LM35 conversion and adding noise.
func (m *MockADC) ReadChannel(channel int) uint16 {
	m.mu.Lock()
	temp := m.temps[channel]
	m.mu.Unlock()

	counts := temp / degreesPerVolt / m.cfg.ADC.VRef * m.cfg.ADC.Resolution
	counts += (rand.Float32()*2 - 1) * mockNoiseCounts

	if counts < 0 {
		counts = 0
	}
	if counts > m.cfg.ADC.Resolution-1 {
		counts = m.cfg.ADC.Resolution - 1
	}
	return uint16(counts)
}
