package transcripts

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Fixture is a recorded session: the init transcript and one transcript per turn
type Fixture struct {
	Session string   `yaml:"session,omitempty"`
	Init    string   `yaml:"init"`
	Turns   []string `yaml:"turns"`
}

func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("unmarshal fixture %s: %w", path, err)
	}
	return &fixture, nil
}

func SaveFixture(path string, fixture *Fixture) error {
	data, err := yaml.Marshal(fixture)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
