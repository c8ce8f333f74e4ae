// Package composeout serializes a compose document and writes it to disk.
// It is part of the Imperative Shell: the only place the output file is
// touched. Serialization happens fully in memory before the file is opened,
// so a failed run never leaves a partial document behind.
package composeout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rdahl/traincompose/internal/core/cluster"
)

// Marshal serializes doc in the representation implied by the output path:
// two-space indented JSON for .json files, YAML for everything else. Both
// encoders emit map keys in sorted order, so identical documents always
// serialize to identical bytes.
func Marshal(path string, doc *cluster.ComposeDocument) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode compose document as JSON: %w", err)
		}
		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode compose document as YAML: %w", err)
	}
	return data, nil
}

// Write serializes doc and writes it to path, returning the bytes written.
func Write(path string, doc *cluster.ComposeDocument) ([]byte, error) {
	data, err := Marshal(path, doc)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write compose document to %s: %w", path, err)
	}
	return data, nil
}
