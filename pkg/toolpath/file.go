package toolpath

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a toolpath job file.
func Load(path string) (Path, error) {
	file, err := os.Open(path)
	if err != nil {
		return Path{}, fmt.Errorf("failed to open toolpath file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads a toolpath from an io.Reader.
func LoadFromReader(r io.Reader) (Path, error) {
	var p Path
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Path{}, fmt.Errorf("failed to unmarshal toolpath: %w", err)
	}
	if err := p.validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}

// Save writes the toolpath to a job file.
func (p Path) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create toolpath file: %w", err)
	}
	defer file.Close()

	return p.SaveToWriter(file)
}

// SaveToWriter writes the toolpath to an io.Writer.
func (p Path) SaveToWriter(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to marshal toolpath: %w", err)
	}
	return nil
}
