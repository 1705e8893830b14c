package artifacts

import (
	"fmt"
	"strings"

	"webup/flowup/domain"
)

// EnvFile renders the flat KEY=VALUE environment file consumed by the
// compose file through ${KEY} substitution. The output is fully
// determined by the configuration; the file is overwritten on every
// run, so a rerun rotates the credentials it contains.
func EnvFile(cfg domain.DeploymentConfig) []byte {
	var b strings.Builder

	writeLine := func(key, value string) {
		fmt.Fprintf(&b, "%s=%s\n", key, value)
	}

	writeLine("POSTGRES_DB", "n8n")
	writeLine("POSTGRES_USER", "n8n")
	writeLine("POSTGRES_PASSWORD", cfg.DBPassword)
	writeLine("N8N_BASIC_AUTH_ACTIVE", "true")
	writeLine("N8N_BASIC_AUTH_USER", cfg.AdminUser)
	writeLine("N8N_BASIC_AUTH_PASSWORD", cfg.AppPassword)
	writeLine("N8N_HOST", cfg.TargetHost)
	writeLine("N8N_PROTOCOL", "https")
	writeLine("N8N_PORT", fmt.Sprintf("%d", domain.AppPort))
	writeLine("WEBHOOK_URL", cfg.BaseURL()+"/")
	writeLine("GENERIC_TIMEZONE", "UTC")
	// no self-registration, no first-run customization survey
	writeLine("N8N_USER_MANAGEMENT_DISABLED", "true")
	writeLine("N8N_PERSONALIZATION_ENABLED", "false")

	return []byte(b.String())
}
