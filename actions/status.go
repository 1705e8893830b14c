package actions

import (
	"fmt"

	"webup/flowup/domain"
	"webup/flowup/utils"

	"github.com/fatih/color"
)

// StatusActionHandler prints the compose status and probes n8n once on
// its loopback port.
func StatusActionHandler(cfg domain.DeploymentConfig) error {
	cmd := domain.NewComposeCommand([]string{"ps"}, cfg.InstallDir)
	if err := cmd.Execute(); err != nil {
		return err
	}

	check := utils.NewReadinessCheck(fmt.Sprintf("http://127.0.0.1:%d/", domain.AppPort))
	check.MaxAttempts = 1

	if _, err := check.Wait(); err != nil {
		fmt.Printf("\n %s n8n is not answering on 127.0.0.1:%d\n", color.RedString("✗"), domain.AppPort)
		return err
	}

	fmt.Printf("\n %s n8n is answering on 127.0.0.1:%d\n", color.GreenString("✓"), domain.AppPort)
	return nil
}
