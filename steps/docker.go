package steps

import (
	"fmt"
	"os/exec"
	"strings"

	"webup/flowup/domain"
)

// DockerInstall installs the docker engine and the compose plugin.
// Skipped when docker is already on the PATH.
func DockerInstall(runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Install docker engine",
		Class: domain.SafeToRerun,
		Check: func() bool {
			_, err := exec.LookPath("docker")
			return err != nil
		},
		Run: func() error {
			if err := runner.Run(aptCommand("install", "-y", "docker.io", "docker-compose-v2")); err != nil {
				return err
			}
			return runner.Run(domain.NewCommand([]string{"systemctl", "enable", "--now", "docker"}))
		},
	}
}

// StartContainers brings the compose stack up. The engine's restart
// policy, not flowup, keeps the services running afterwards.
func StartContainers(cfg domain.DeploymentConfig, runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Start containers",
		Class: domain.SafeToRerun,
		Run: func() error {
			return runner.Run(domain.NewComposeCommand([]string{"up", "-d"}, cfg.InstallDir))
		},
	}
}

// VerifyDeployment greps the compose status output for a running-state
// marker on the application service.
func VerifyDeployment(cfg domain.DeploymentConfig, runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Verify containers",
		Class: domain.SafeToRerun,
		Run: func() error {
			out, err := runner.Output(domain.NewComposeCommand([]string{"ps", domain.AppService}, cfg.InstallDir))
			if err != nil {
				return err
			}
			if !strings.Contains(out, "Up") && !strings.Contains(out, "running") {
				return fmt.Errorf("service '%s' is not running:\n%s", domain.AppService, out)
			}
			return nil
		},
	}
}
