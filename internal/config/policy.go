package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// PolicyFileSpec is the on-disk shape of the role policy:
//
//	actions:
//	  issue.create: [view, edit]
//	  issue.update: [edit]
//
// Listing an action enforces it; the roles are the ones a non-creator needs.
type PolicyFileSpec struct {
	Actions map[string][]string `yaml:"actions"`
}

func LoadPolicy(path string) (*PolicyFileSpec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicy(raw)
}

func ParsePolicy(raw []byte) (*PolicyFileSpec, error) {
	var spec PolicyFileSpec
	if err := yaml.UnmarshalStrict(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse policy file: %w", err)
	}
	return &spec, nil
}
