package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/itohio/EasyCNC/pkg/motion"
)

// Settings is the persisted machine configuration. It mirrors motion.Limits
// field for field; the planner itself never touches storage.
type Settings struct {
	MaxSpeedX float32 `yaml:"max_speed_x"`
	MaxSpeedY float32 `yaml:"max_speed_y"`
	AccelX    float32 `yaml:"accel_x"`
	AccelY    float32 `yaml:"accel_y"`

	MinJunctionSpeed  float32 `yaml:"min_junction_speed"`
	JunctionDeviation float32 `yaml:"junction_deviation"`

	CuttingSpeed float32 `yaml:"cutting_speed"`
	TravelSpeed  float32 `yaml:"travel_speed"`
}

// Default returns the stock machine configuration.
func Default() Settings {
	return Settings{
		MaxSpeedX:         500,
		MaxSpeedY:         500,
		AccelX:            3000,
		AccelY:            3000,
		MinJunctionSpeed:  0,
		JunctionDeviation: 0.01,
		CuttingSpeed:      200,
		TravelSpeed:       400,
	}
}

// Limits converts the settings into planner limits.
func (s Settings) Limits() motion.Limits {
	return motion.Limits{
		MaxSpeedX:         s.MaxSpeedX,
		MaxSpeedY:         s.MaxSpeedY,
		AccelX:            s.AccelX,
		AccelY:            s.AccelY,
		MinJunctionSpeed:  s.MinJunctionSpeed,
		JunctionDeviation: s.JunctionDeviation,
		CuttingSpeed:      s.CuttingSpeed,
		TravelSpeed:       s.TravelSpeed,
	}
}

// Load reads settings from a file.
func Load(path string) (Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads settings from an io.Reader. Omitted fields keep their
// default values.
func LoadFromReader(r io.Reader) (Settings, error) {
	s := Default()
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s, nil
}

// Save writes the settings to a file.
func (s Settings) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer file.Close()

	return s.SaveToWriter(file)
}

// SaveToWriter writes the settings to an io.Writer.
func (s Settings) SaveToWriter(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return nil
}
