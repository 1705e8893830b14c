package actions

import (
	"fmt"
	"path/filepath"

	"webup/flowup/artifacts"
	"webup/flowup/domain"
	"webup/flowup/steps"

	"github.com/Songmu/prompter"
	"github.com/fatih/color"
)

// DeployActionHandler runs the whole provisioning sequence and prints
// the final summary. There is no rollback on failure: applied steps
// stay in place for inspection and the command can simply be rerun.
func DeployActionHandler(cfg domain.DeploymentConfig, assumeYes bool) error {
	fmt.Printf(" ▶  Provisioning '%s' (install dir: %s)\n", cfg.TargetHost, cfg.InstallDir)

	if !assumeYes {
		ok := prompter.YN("This will update packages, reset the firewall and (re)write the config files. Continue?", true)
		if !ok {
			return nil
		}
	}

	warnings, err := domain.RunSteps(steps.Sequence(cfg, domain.ExecRunner{}))
	if err != nil {
		fmt.Printf("\n %s Provisioning aborted: %v\n", color.RedString("✗"), err)
		fmt.Println("   Applied steps are left in place; rerun 'flowup deploy' after fixing the cause.")
		return err
	}

	printSummary(cfg, warnings)
	return nil
}

func printSummary(cfg domain.DeploymentConfig, warnings []string) {
	fmt.Println()
	if len(warnings) == 0 {
		fmt.Printf(" %s n8n is deployed\n\n", color.GreenString("✓"))
		fmt.Printf("   URL: %s\n", cfg.BaseURL())
	} else {
		fmt.Printf(" %s n8n is deployed with warnings:\n", color.YellowString("⚠"))
		for _, warning := range warnings {
			fmt.Printf("   → %s\n", warning)
		}
		fmt.Println()
		fmt.Printf("   URL (HTTP only until a certificate is issued): http://%s\n", cfg.TargetHost)
		fmt.Printf("   Once DNS points here, retry with: certbot --nginx -d %s\n", cfg.TargetHost)
	}

	fmt.Printf("   User: %s\n", cfg.AdminUser)
	fmt.Printf("   Password: %s\n", cfg.AppPassword)
	fmt.Printf("   Database password: %s\n", cfg.DBPassword)
	fmt.Printf("\n   Credentials are stored in %s. Rerunning 'flowup deploy' rotates them.\n",
		filepath.Join(cfg.InstallDir, artifacts.EnvFilename))

	fmt.Println("\n   Useful commands:")
	fmt.Println("   → flowup logs       follow the service logs")
	fmt.Println("   → flowup restart    restart the containers")
	fmt.Println("   → flowup update     pull new images and restart")
	fmt.Println("   → flowup backup     archive the config files and the database")
	fmt.Println("")
}
