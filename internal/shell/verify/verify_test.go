package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdahl/traincompose/internal/core/cluster"
	"github.com/rdahl/traincompose/internal/shell/composeout"
)

// =============================================================================
// Document Tests
// =============================================================================

func emitted(t *testing.T, path string, cfg cluster.Config) []byte {
	t.Helper()
	doc, err := cluster.Assemble(cfg)
	require.NoError(t, err)
	data, err := composeout.Marshal(path, doc)
	require.NoError(t, err)
	return data
}

func TestDocument_ValidYAML(t *testing.T) {
	data := emitted(t, "compose.yml", cluster.Config{Release: true, Servers: 2, Workers: 1})

	assert.NoError(t, Document(context.Background(), data))
}

func TestDocument_ValidJSON(t *testing.T) {
	data := emitted(t, "compose.json", cluster.Config{Release: false, Servers: 1, Workers: 1})

	assert.NoError(t, Document(context.Background(), data))
}

func TestDocument_EmptyClusterSkipsRoundTrip(t *testing.T) {
	data := emitted(t, "compose.yml", cluster.Config{Servers: 0, Workers: 0})

	assert.NoError(t, Document(context.Background(), data))
}

func TestDocument_MalformedYAML(t *testing.T) {
	err := Document(context.Background(), []byte("services: ["))

	assert.Error(t, err)
}

func TestDocument_EmptyContent(t *testing.T) {
	err := Document(context.Background(), []byte(""))

	assert.Error(t, err)
}

func TestDocument_ServiceWithoutImageOrBuild(t *testing.T) {
	err := Document(context.Background(), []byte("services:\n  broken: {}\n"))

	assert.Error(t, err)
}
