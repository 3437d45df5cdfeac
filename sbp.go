// Package sbp provides thin file-system wrappers around the blueprint
// codec, for callers that want to operate on paths rather than byte
// slices.
package sbp

import (
	"fmt"
	"os"

	"github.com/ficsit-tools/sbp/blueprint"
)

// ParseFile reads path and parses it as a complete blueprint.
func ParseFile(path string) (*blueprint.Blueprint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sbp: read %s: %w", path, err)
	}

	bp, err := blueprint.ParseBlueprint(data)
	if err != nil {
		return nil, fmt.Errorf("sbp: parse %s: %w", path, err)
	}

	return bp, nil
}

// WriteFile serializes bp and writes it to path, replacing any existing
// file with the same permissions a normal blueprint save carries.
func WriteFile(path string, bp *blueprint.Blueprint) error {
	data, err := blueprint.SerializeBlueprint(bp)
	if err != nil {
		return fmt.Errorf("sbp: serialize %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("sbp: write %s: %w", path, err)
	}

	return nil
}
