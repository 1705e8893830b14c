package steps

import (
	"path/filepath"

	"webup/flowup/artifacts"
	"webup/flowup/domain"
)

// GenerateArtifacts writes the .env and compose files into the install
// directory. Both are fully overwritten, so rerunning rotates the
// credentials stored in .env.
func GenerateArtifacts(cfg domain.DeploymentConfig) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Generate configuration files",
		Class: domain.SafeToRerun,
		Run: func() error {
			envPath := filepath.Join(cfg.InstallDir, artifacts.EnvFilename)
			if err := artifacts.WriteFile(envPath, artifacts.EnvFile(cfg), 0600); err != nil {
				return err
			}

			composePath := filepath.Join(cfg.InstallDir, artifacts.ComposeFilename)
			return artifacts.WriteFile(composePath, artifacts.ComposeFile(cfg), 0644)
		},
	}
}
