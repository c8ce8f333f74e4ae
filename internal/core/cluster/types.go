package cluster

// =============================================================================
// ComposeDocument - Main Output Type
// =============================================================================

// ComposeDocument is the generated compose descriptor for the whole cluster.
// It is produced fresh on every run and has no persistent identity. The
// struct serializes losslessly to both YAML and JSON with identical key
// structure.
type ComposeDocument struct {
	Name     string                     `yaml:"name" json:"name"`
	Services map[string]ServiceSpec     `yaml:"services" json:"services"`
	Networks map[string]NetworkSettings `yaml:"networks" json:"networks"`
}

// =============================================================================
// Service Types
// =============================================================================

// ServiceSpec is the per-instance record of build parameters, ports,
// networks, and environment variables. One instance per (role, index) pair.
type ServiceSpec struct {
	ContainerName string         `yaml:"container_name" json:"container_name"`
	Build         BuildSettings  `yaml:"build" json:"build"`
	Ports         []string       `yaml:"ports" json:"ports"`
	Networks      []string       `yaml:"networks" json:"networks"`
	Environment   map[string]any `yaml:"environment" json:"environment"`
}

// BuildSettings holds the image build parameters for a service.
type BuildSettings struct {
	Dockerfile string            `yaml:"dockerfile" json:"dockerfile"`
	Args       map[string]string `yaml:"args" json:"args"`
}

// =============================================================================
// Network Types
// =============================================================================

// NetworkSettings describes one top-level network entry.
type NetworkSettings struct {
	Driver string `yaml:"driver" json:"driver"`
}
