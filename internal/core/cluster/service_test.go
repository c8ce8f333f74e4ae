package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// BuildService Tests
// =============================================================================

func TestBuildService_ServerRelease(t *testing.T) {
	name, spec := BuildService(ServerRole, Config{Release: true, Servers: 1}, 0)

	assert.Equal(t, "server-0", name)
	assert.Equal(t, "server-0", spec.ContainerName)
	assert.Equal(t, "parameter_server/Dockerfile", spec.Build.Dockerfile)
	assert.Equal(t, map[string]string{"MODE": "release"}, spec.Build.Args)
	assert.Equal(t, []string{"40000:40000"}, spec.Ports)
	assert.Equal(t, []string{"training-network"}, spec.Networks)
}

func TestBuildService_WorkerDebug(t *testing.T) {
	name, spec := BuildService(WorkerRole, Config{Release: false, Workers: 1}, 0)

	assert.Equal(t, "worker-0", name)
	assert.Equal(t, "worker/Dockerfile", spec.Build.Dockerfile)
	assert.Equal(t, map[string]string{"MODE": "debug"}, spec.Build.Args)
	assert.Equal(t, []string{"50000:50000"}, spec.Ports)
}

func TestBuildService_Environment(t *testing.T) {
	_, spec := BuildService(ServerRole, Config{Release: true}, 2)

	require.Len(t, spec.Environment, 3)
	assert.Equal(t, "0.0.0.0", spec.Environment["HOST"])
	assert.Equal(t, 40002, spec.Environment["PORT"])
	assert.Equal(t, "info", spec.Environment["RUST_LOG"])
}

func TestBuildService_DebugLogLevel(t *testing.T) {
	_, spec := BuildService(WorkerRole, Config{Release: false}, 0)

	assert.Equal(t, "debug", spec.Environment["RUST_LOG"])
}

func TestBuildService_HostPortEqualsContainerPort(t *testing.T) {
	_, spec := BuildService(WorkerRole, Config{}, 41)

	require.Len(t, spec.Ports, 1)
	assert.Equal(t, "50041:50041", spec.Ports[0])
	assert.Equal(t, 50041, spec.Environment["PORT"])
}
