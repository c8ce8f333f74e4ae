package main

// =============================================================================
// Path Resolution
// =============================================================================

// Default locations mirror the deployment layout: the configuration artifact
// sits next to the generator, the compose file one level up in the project
// root.
const (
	DefaultConfigPath = "config.json"
	DefaultOutputPath = "../compose.yml"

	configPathEnv = "CONFIG_PATH"
	outputPathEnv = "OUTPUT_PATH"
)

// Paths holds the two externally supplied file locations.
type Paths struct {
	Config string
	Output string
}

// resolvePaths applies the environment overrides on top of the defaults.
// getenv is injected so tests don't have to mutate the process environment.
func resolvePaths(getenv func(string) string) Paths {
	paths := Paths{
		Config: DefaultConfigPath,
		Output: DefaultOutputPath,
	}
	if v := getenv(configPathEnv); v != "" {
		paths.Config = v
	}
	if v := getenv(outputPathEnv); v != "" {
		paths.Output = v
	}
	return paths
}
