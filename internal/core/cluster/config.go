package cluster

// =============================================================================
// Config
// =============================================================================

// Config is the scalar input the whole document derives from. It is built
// once by the configuration loader and never mutated.
type Config struct {
	Release bool `mapstructure:"release" json:"release" yaml:"release"`
	Servers int  `mapstructure:"servers" json:"servers" yaml:"servers"`
	Workers int  `mapstructure:"workers" json:"workers" yaml:"workers"`
}

// Validate checks the value constraints on an already-decoded Config.
// Zero counts are legal; negative counts are not.
func (c Config) Validate() error {
	if c.Servers < 0 {
		return NewValidationError("servers", "servers must be >= 0", ErrNegativeCount)
	}
	if c.Workers < 0 {
		return NewValidationError("workers", "workers must be >= 0", ErrNegativeCount)
	}
	return nil
}

// Mode returns the build mode baked into every service's build args.
func (c Config) Mode() string {
	if c.Release {
		return "release"
	}
	return "debug"
}

// LogLevel returns the log level handed to the deployed binaries.
// Release builds log at info, everything else at debug.
func (c Config) LogLevel() string {
	if c.Release {
		return "info"
	}
	return "debug"
}
