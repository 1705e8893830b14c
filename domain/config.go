package domain

// Compiled-in defaults, meant to be edited (or overridden with a
// flowup.yml file) before running the deploy command.
const (
	// PlaceholderHost is the documented placeholder. The resolver
	// refuses to run while the target host still equals it.
	PlaceholderHost = "n8n.example.com"

	DefaultTargetHost = PlaceholderHost
	DefaultAdminUser  = "admin"
	DefaultInstallDir = "/opt/n8n"
)

// Fixed service names and ports of the deployed stack.
const (
	DBService  = "db"
	AppService = "n8n"

	// AppPort is the n8n service port, bound to the loopback
	// interface only. The reverse proxy is the public entry point.
	AppPort = 5678
)

// DeploymentConfig holds everything needed to provision the host.
// It is built once by config.Resolve and never mutated afterwards.
type DeploymentConfig struct {
	TargetHost string
	AdminUser  string
	InstallDir string

	// Fresh random secrets, generated on every run. A rerun rotates
	// the credentials; the previous values live only in the .env file.
	DBPassword  string
	AppPassword string
}

// BaseURL is the externally reachable address once the certificate
// step has completed.
func (c DeploymentConfig) BaseURL() string {
	return "https://" + c.TargetHost
}
