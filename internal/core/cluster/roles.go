package cluster

// =============================================================================
// Role Table
// =============================================================================

// Fixed deployment topology. These are not user-supplied; changing a role's
// port range or Dockerfile means editing one constant here.
const (
	// ProjectName is the top-level name of the generated document.
	ProjectName = "distributed-training"

	// NetworkName is the single bridge network every service attaches to.
	NetworkName = "training-network"

	// NetworkDriver is the driver of that network.
	NetworkDriver = "bridge"

	// RolePortGap is the distance between consecutive role base ports.
	// Port uniqueness across the document holds only while the total
	// instance count stays below this gap, so Assemble enforces it.
	RolePortGap = 10000
)

// Role is a static descriptor for one class of service instance.
type Role struct {
	NamePrefix     string
	DockerfilePath string
	BasePort       int
	NetworkName    string
}

var (
	// ServerRole describes the parameter server instances.
	ServerRole = Role{
		NamePrefix:     "server",
		DockerfilePath: "parameter_server/Dockerfile",
		BasePort:       40000,
		NetworkName:    NetworkName,
	}

	// WorkerRole describes the training worker instances.
	WorkerRole = Role{
		NamePrefix:     "worker",
		DockerfilePath: "worker/Dockerfile",
		BasePort:       50000,
		NetworkName:    NetworkName,
	}
)
