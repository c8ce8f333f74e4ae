package cluster

import "fmt"

// =============================================================================
// Document Assembly
// =============================================================================

// Assemble expands a validated Config into the complete compose document:
// one service entry per configured instance of every role, all attached to
// the single bridge network.
//
// This is a pure function - no I/O, no side effects. Identical Config input
// always yields a structurally identical ComposeDocument.
//
// Service-name and port collisions cannot happen while the role table keeps
// disjoint prefixes and base ports, but both are re-checked during the merge
// and surface as an InvariantError rather than a silently dropped entry.
func Assemble(cfg Config) (*ComposeDocument, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Servers+cfg.Workers >= RolePortGap {
		return nil, NewValidationError(
			"servers+workers",
			fmt.Sprintf("total instance count %d must stay below the role port gap %d", cfg.Servers+cfg.Workers, RolePortGap),
			ErrTooManyInstances,
		)
	}

	rolePlan := []struct {
		role  Role
		count int
	}{
		{ServerRole, cfg.Servers},
		{WorkerRole, cfg.Workers},
	}

	services := make(map[string]ServiceSpec, cfg.Servers+cfg.Workers)
	portOwner := make(map[int]string, cfg.Servers+cfg.Workers)

	for _, rp := range rolePlan {
		for index := 0; index < rp.count; index++ {
			name, spec := BuildService(rp.role, cfg, index)

			if _, exists := services[name]; exists {
				return nil, NewInvariantError(name, "service name already assigned", ErrDuplicateService)
			}

			port := AllocatePort(rp.role.BasePort, index)
			if owner, taken := portOwner[port]; taken {
				return nil, NewInvariantError(name, fmt.Sprintf("port %d already bound by %s", port, owner), ErrDuplicatePort)
			}

			services[name] = spec
			portOwner[port] = name
		}
	}

	return &ComposeDocument{
		Name:     ProjectName,
		Services: services,
		Networks: map[string]NetworkSettings{
			NetworkName: {Driver: NetworkDriver},
		},
	}, nil
}
