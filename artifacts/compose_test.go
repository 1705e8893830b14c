package artifacts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeFileBindsAppToLoopbackOnly(t *testing.T) {
	content := string(ComposeFile(testConfig()))

	assert.Contains(t, content, `"127.0.0.1:5678:5678"`)
	// only the application service publishes a port
	assert.Equal(t, 1, strings.Count(content, "ports:"))
	assert.NotContains(t, content, "0.0.0.0")
}

func TestComposeFileGatesAppOnHealthyDatabase(t *testing.T) {
	content := string(ComposeFile(testConfig()))

	assert.Contains(t, content, "depends_on:")
	assert.Contains(t, content, "condition: service_healthy")
	assert.Contains(t, content, "pg_isready")
}

func TestComposeFileDeclaresVolumesAndNetwork(t *testing.T) {
	content := string(ComposeFile(testConfig()))

	assert.Contains(t, content, "db_data:/var/lib/postgresql/data")
	assert.Contains(t, content, "n8n_data:/home/node/.n8n")
	assert.Contains(t, content, "driver: bridge")
	assert.Contains(t, content, "restart: unless-stopped")
}

func TestComposeFileDeterministic(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, ComposeFile(cfg), ComposeFile(cfg))
}
