package model

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/diagraft/diagraft/pkg/errors"
)

// sectionName is the required top-level key in the model document.
const sectionName = "diagram"

// document mirrors the YAML root. Only the diagram section is read;
// other top-level keys are ignored.
type document struct {
	Diagram *Model `yaml:"diagram"`
}

// Load reads and parses the model file at path.
// It fails if the file cannot be read, the YAML is malformed, or the
// required top-level diagram section is missing or null. There is no
// partial-load mode.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read model %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Parse parses model YAML from data.
func Parse(data []byte) (*Model, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidModel, err, "parse model YAML")
	}
	if doc.Diagram == nil {
		return nil, errors.New(errors.ErrCodeMissingSection, "model is missing required top-level %q section", sectionName)
	}
	return doc.Diagram, nil
}
