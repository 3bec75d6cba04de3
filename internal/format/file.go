package format

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// formatsFile is the YAML document shape for externally authored formats.
type formatsFile struct {
	Formats []FormatDefinition `yaml:"formats"`
}

// LoadFormatsFile reads format definitions from a YAML file. Authoring a new
// partner format is a data change only; the definitions register like
// built-ins.
func LoadFormatsFile(path string) ([]FormatDefinition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read formats file: %w", err)
	}
	var doc formatsFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode formats file %s: %w", path, err)
	}
	return doc.Formats, nil
}
