package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotNil(t, cfg)
	assert.Equal(t, "COM3", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.BaudRate)
	assert.Equal(t, float32(1024), cfg.ADC.Resolution)
	assert.Equal(t, float32(5.0), cfg.ADC.VRef)
	assert.Equal(t, 10, cfg.ADC.SamplesPerRead)
	assert.Equal(t, 10*time.Millisecond, cfg.ADC.SampleDelay)
	assert.Equal(t, 50, cfg.ADC.CalibrationSamples)
	assert.Equal(t, uint8(0x27), cfg.LCD.Address)
	assert.Equal(t, 16, cfg.LCD.Cols)
	assert.Equal(t, 2, cfg.LCD.Rows)
	assert.Equal(t, 2*time.Second, cfg.Timing.UpdateInterval)
	assert.Equal(t, time.Second, cfg.Timing.FluctuationInterval)
	assert.Equal(t, float32(24.0), cfg.Sim.Room)
	assert.Equal(t, float32(22.0), cfg.Sim.Algae)
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "COM3", cfg.Serial.Port)
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	yamlContent := `
serial:
  port: "/dev/ttyACM0"
  baud_rate: 115200

adc:
  resolution: 4096
  vref: 3.3
  samples_per_read: 20
  sample_delay: 5ms
  calibration_samples: 100

lcd:
  address: 0x3F
  cols: 20
  rows: 4

timing:
  update_interval: 1s
  fluctuation_interval: 500ms

sim:
  room: 20.5
  algae: 18.0
`

	_, err = tmpfile.WriteString(yamlContent)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "/dev/ttyACM0", cfg.Serial.Port)
	assert.Equal(t, 115200, cfg.Serial.BaudRate)
	assert.Equal(t, float32(4096), cfg.ADC.Resolution)
	assert.Equal(t, float32(3.3), cfg.ADC.VRef)
	assert.Equal(t, 20, cfg.ADC.SamplesPerRead)
	assert.Equal(t, 5*time.Millisecond, cfg.ADC.SampleDelay)
	assert.Equal(t, 100, cfg.ADC.CalibrationSamples)
	assert.Equal(t, uint8(0x3F), cfg.LCD.Address)
	assert.Equal(t, 20, cfg.LCD.Cols)
	assert.Equal(t, 4, cfg.LCD.Rows)
	assert.Equal(t, time.Second, cfg.Timing.UpdateInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.FluctuationInterval)
	assert.Equal(t, float32(20.5), cfg.Sim.Room)
	assert.Equal(t, float32(18.0), cfg.Sim.Algae)
}

func TestLoad_PartialYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	// Only override the serial port, everything else should fall back to defaults.
	_, err = tmpfile.WriteString("serial:\n  port: \"/dev/ttyUSB0\"\n")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	cfg, err := Load(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "/dev/ttyUSB0", cfg.Serial.Port)
	assert.Equal(t, 9600, cfg.Serial.BaudRate)
	assert.Equal(t, float32(1024), cfg.ADC.Resolution)
	assert.Equal(t, uint8(0x27), cfg.LCD.Address)
	assert.Equal(t, 2*time.Second, cfg.Timing.UpdateInterval)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.WriteString("serial: [not a mapping")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	_, err = Load(tmpfile.Name())
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	defer os.Remove(tmpfile.Name())

	cfg := Default()
	cfg.Serial.Port = "/dev/ttyACM1"
	cfg.Sim.Room = 19.5

	require.NoError(t, cfg.Save(tmpfile.Name()))

	loaded, err := Load(tmpfile.Name())
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
