package artifacts

import (
	"testing"

	"webup/flowup/domain"

	"github.com/stretchr/testify/assert"
)

func testConfig() domain.DeploymentConfig {
	return domain.DeploymentConfig{
		TargetHost:  "demo.example.org",
		AdminUser:   "ops",
		InstallDir:  "/opt/n8n",
		DBPassword:  "dbsecret",
		AppPassword: "appsecret",
	}
}

func TestEnvFileContent(t *testing.T) {
	expected := `POSTGRES_DB=n8n
POSTGRES_USER=n8n
POSTGRES_PASSWORD=dbsecret
N8N_BASIC_AUTH_ACTIVE=true
N8N_BASIC_AUTH_USER=ops
N8N_BASIC_AUTH_PASSWORD=appsecret
N8N_HOST=demo.example.org
N8N_PROTOCOL=https
N8N_PORT=5678
WEBHOOK_URL=https://demo.example.org/
GENERIC_TIMEZONE=UTC
N8N_USER_MANAGEMENT_DISABLED=true
N8N_PERSONALIZATION_ENABLED=false
`

	assert.Equal(t, expected, string(EnvFile(testConfig())))
}

func TestEnvFileDeterministic(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, EnvFile(cfg), EnvFile(cfg))
}
