package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	ADC    ADCConfig    `yaml:"adc"`
	LCD    LCDConfig    `yaml:"lcd"`
	Timing TimingConfig `yaml:"timing"`
	Sim    SimConfig    `yaml:"sim"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
}

// ADCConfig contains analog sampling parameters.
type ADCConfig struct {
	Resolution         float32       `yaml:"resolution"`          // Full-scale count (1024 for a 10-bit converter)
	VRef               float32       `yaml:"vref"`                // Reference voltage (V)
	SamplesPerRead     int           `yaml:"samples_per_read"`    // Samples averaged per reading
	SampleDelay        time.Duration `yaml:"sample_delay"`        // Delay between consecutive samples
	CalibrationSamples int           `yaml:"calibration_samples"` // Samples averaged during calibration
}

// LCDConfig contains character display configuration.
type LCDConfig struct {
	Address uint8 `yaml:"address"`
	Cols    int   `yaml:"cols"`
	Rows    int   `yaml:"rows"`
}

// TimingConfig contains the main loop intervals.
type TimingConfig struct {
	UpdateInterval      time.Duration `yaml:"update_interval"`      // Sample-and-render period
	FluctuationInterval time.Duration `yaml:"fluctuation_interval"` // Synthetic drift period (simulation mode)
}

// SimConfig contains simulation mode defaults.
type SimConfig struct {
	Room  float32 `yaml:"room"`  // Initial synthetic room temperature (°C)
	Algae float32 `yaml:"algae"` // Initial synthetic algae temperature (°C)
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:     "COM3", // Default for Windows, should be "/dev/ttyACM0" on Linux/Mac
			BaudRate: 9600,
		},
		ADC: ADCConfig{
			Resolution:         1024, // 10-bit converter
			VRef:               5.0,
			SamplesPerRead:     10,
			SampleDelay:        10 * time.Millisecond,
			CalibrationSamples: 50,
		},
		LCD: LCDConfig{
			Address: 0x27,
			Cols:    16,
			Rows:    2,
		},
		Timing: TimingConfig{
			UpdateInterval:      2 * time.Second,
			FluctuationInterval: time.Second,
		},
		Sim: SimConfig{
			Room:  24.0,
			Algae: 22.0,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Ensure minimum required fields are set (use defaults if missing)
	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults backfills zero-valued fields with defaults.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.BaudRate <= 0 {
		c.Serial.BaudRate = def.Serial.BaudRate
	}
	if c.ADC.Resolution <= 0 {
		c.ADC.Resolution = def.ADC.Resolution
	}
	if c.ADC.VRef <= 0 {
		c.ADC.VRef = def.ADC.VRef
	}
	if c.ADC.SamplesPerRead <= 0 {
		c.ADC.SamplesPerRead = def.ADC.SamplesPerRead
	}
	if c.ADC.SampleDelay < 0 {
		c.ADC.SampleDelay = def.ADC.SampleDelay
	}
	if c.ADC.CalibrationSamples <= 0 {
		c.ADC.CalibrationSamples = def.ADC.CalibrationSamples
	}
	if c.LCD.Address == 0 {
		c.LCD.Address = def.LCD.Address
	}
	if c.LCD.Cols <= 0 {
		c.LCD.Cols = def.LCD.Cols
	}
	if c.LCD.Rows <= 0 {
		c.LCD.Rows = def.LCD.Rows
	}
	if c.Timing.UpdateInterval <= 0 {
		c.Timing.UpdateInterval = def.Timing.UpdateInterval
	}
	if c.Timing.FluctuationInterval <= 0 {
		c.Timing.FluctuationInterval = def.Timing.FluctuationInterval
	}
}
