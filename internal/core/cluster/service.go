package cluster

import "fmt"

// =============================================================================
// Service Spec Building
// =============================================================================

// BuildService builds the service entry for instance `index` of `role`.
// Instance numbering is 0-based, so the first server is "server-0" on the
// role's base port. The returned name doubles as the container name.
//
// The environment block is a wire contract with the deployed binaries:
// they read HOST, PORT and RUST_LOG at startup, so those keys must be
// reproduced verbatim.
//
// This is a pure function with no side effects; it is total for any
// non-negative index.
func BuildService(role Role, cfg Config, index int) (string, ServiceSpec) {
	port := AllocatePort(role.BasePort, index)
	name := fmt.Sprintf("%s-%d", role.NamePrefix, index)

	spec := ServiceSpec{
		ContainerName: name,
		Build: BuildSettings{
			Dockerfile: role.DockerfilePath,
			Args: map[string]string{
				"MODE": cfg.Mode(),
			},
		},
		Ports:    []string{fmt.Sprintf("%d:%d", port, port)},
		Networks: []string{role.NetworkName},
		Environment: map[string]any{
			"HOST":     "0.0.0.0",
			"PORT":     port,
			"RUST_LOG": cfg.LogLevel(),
		},
	}

	return name, spec
}
