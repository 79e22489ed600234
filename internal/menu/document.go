package menu

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/thali-combo/internal/thali"
)

func loadYAML(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var root any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return entriesFrom(root)
}

func loadJSON(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return entriesFrom(root)
}

func loadTOML(path string) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var root map[string]any
	if err := toml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return entriesFrom(root)
}

// entriesFrom unwraps an optional {"thalis": [...]} mapping and turns every
// mapping entry into a thali.Record.
func entriesFrom(root any) ([]any, error) {
	if m, ok := root.(map[string]any); ok {
		wrapped, ok := m[RootKey]
		if !ok {
			return nil, fmt.Errorf("%w: no %q key", ErrNotSequence, RootKey)
		}
		root = wrapped
	}

	list, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, root)
	}

	entries := make([]any, len(list))
	for i, item := range list {
		if m, ok := item.(map[string]any); ok {
			entries[i] = thali.Record(m)
			continue
		}
		entries[i] = item
	}

	return entries, nil
}
