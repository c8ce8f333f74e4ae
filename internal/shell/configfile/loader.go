// Package configfile reads the scalar cluster configuration artifact from
// disk. It is part of the Imperative Shell: the only place the input file is
// touched. Decoding is strict - unknown and missing fields are configuration
// errors, so the core only ever sees a fully validated Config.
package configfile

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/rdahl/traincompose/internal/core/cluster"
)

// requiredKeys are the exact fields the configuration artifact must carry.
var requiredKeys = []string{"release", "servers", "workers"}

// Load reads, strictly decodes and validates the configuration at path.
// The file format is inferred from the extension (the default artifact is
// config.json; YAML works the same way).
func Load(path string) (cluster.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return cluster.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	allowed := make(map[string]bool, len(requiredKeys))
	for _, key := range requiredKeys {
		allowed[key] = true
		if !v.IsSet(key) {
			return cluster.Config{}, cluster.NewValidationError(key, "field is required", cluster.ErrMissingField)
		}
	}
	for _, key := range v.AllKeys() {
		if !allowed[key] {
			return cluster.Config{}, cluster.NewValidationError(key, "field is not part of the configuration", cluster.ErrUnknownField)
		}
	}

	var cfg cluster.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cluster.Config{}, cluster.NewValidationError("", fmt.Sprintf("decode config: %v", err), err)
	}

	if err := cfg.Validate(); err != nil {
		return cluster.Config{}, err
	}

	return cfg, nil
}
