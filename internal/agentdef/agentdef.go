// Package agentdef loads declarative agent-definition documents. A
// definition names an agent and embeds the raw reason block that
// configures its search strategy.
package agentdef

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/grovekit/grove/internal/reason"
)

// Definition is one agent definition with its validated reason config.
type Definition struct {
	Name        string
	Description string
	Reason      reason.Config
}

// document is the on-disk YAML shape. The reason block stays a raw
// mapping here so reason.Parse owns validation and forward
// compatibility (unknown keys ignored).
type document struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Reason      map[string]any `yaml:"reason"`
}

// Load reads and validates an agent definition from a YAML file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read agent definition: %w", err)
	}
	return Parse(data, path)
}

// Parse validates an agent definition document. The path is only used
// to contextualize errors.
func Parse(data []byte, path string) (*Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("%s: agent definition needs a name", path)
	}

	cfg, err := reason.Parse(doc.Reason)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Definition{
		Name:        doc.Name,
		Description: doc.Description,
		Reason:      cfg,
	}, nil
}
