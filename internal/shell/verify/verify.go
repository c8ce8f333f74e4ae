// Package verify re-parses an emitted compose document through the
// compose-spec loader. It is a structural sanity check on the generator's
// output - no container runtime is involved and nothing is executed.
package verify

import (
	"context"
	"errors"
	"fmt"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"

	"github.com/rdahl/traincompose/internal/core/cluster"
)

// Document checks that content parses as a well-formed compose project.
// JSON output passes through the same path, since JSON is a YAML subset.
func Document(ctx context.Context, content []byte) error {
	var dict map[string]any
	if err := yaml.Unmarshal(content, &dict); err != nil {
		return fmt.Errorf("decode emitted document: %w", err)
	}
	if dict == nil {
		return errors.New("emitted document is empty")
	}

	// An empty cluster is legal, but the compose loader wants at least one
	// service, so the round-trip only applies to non-empty documents.
	if services, ok := dict["services"].(map[string]any); ok && len(services) == 0 {
		return nil
	}

	_, err := loader.LoadWithContext(ctx, types.ConfigDetails{
		ConfigFiles: []types.ConfigFile{
			{
				Content: content,
				Config:  dict,
			},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName(cluster.ProjectName, false)
		opts.SkipNormalization = true
		opts.SkipExtends = true
	})
	if err != nil {
		return fmt.Errorf("emitted document is not a valid compose project: %w", err)
	}

	return nil
}
