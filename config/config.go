package config

import (
	"fmt"
	"io/ioutil"
	"os"

	"webup/flowup/domain"
	"webup/flowup/utils"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the optional override file looked up in the
// current directory. The compiled-in defaults in the domain package
// remain the primary configuration path.
const DefaultFilename = "flowup.yml"

// SecretBytes is the entropy of each generated password before
// encoding.
const SecretBytes = 24

// Resolve builds the deployment configuration: compiled-in defaults,
// optional yaml override, placeholder validation, fresh secrets.
// It never writes a file.
func Resolve(overridePath string) (domain.DeploymentConfig, error) {
	cfg := domain.DeploymentConfig{
		TargetHost: domain.DefaultTargetHost,
		AdminUser:  domain.DefaultAdminUser,
		InstallDir: domain.DefaultInstallDir,
	}

	if err := applyOverrideFile(&cfg, overridePath); err != nil {
		return cfg, err
	}

	if cfg.TargetHost == domain.PlaceholderHost {
		return cfg, &domain.ConfigurationError{
			Field:  "target_host",
			Reason: fmt.Sprintf("still set to the placeholder '%s'; edit the defaults or provide %s", domain.PlaceholderHost, DefaultFilename),
		}
	}

	if cfg.AdminUser == domain.DefaultAdminUser {
		fmt.Printf(" %s admin user is still '%s'; consider choosing a dedicated account name\n", color.YellowString("⚠"), domain.DefaultAdminUser)
	}

	dbPassword, err := utils.GenerateSecret(SecretBytes)
	if err != nil {
		return cfg, err
	}
	appPassword, err := utils.GenerateSecret(SecretBytes)
	if err != nil {
		return cfg, err
	}
	cfg.DBPassword = dbPassword
	cfg.AppPassword = appPassword

	return cfg, nil
}

func applyOverrideFile(cfg *domain.DeploymentConfig, path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		// the override file is optional
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var parsed overrideSpec
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		fmt.Printf("Unable to parse '%s'. Check the file's syntax.\n", path)
		return err
	}

	if parsed.TargetHost != "" {
		cfg.TargetHost = parsed.TargetHost
	}
	if parsed.AdminUser != "" {
		cfg.AdminUser = parsed.AdminUser
	}
	if parsed.InstallDir != "" {
		cfg.InstallDir = parsed.InstallDir
	}

	return nil
}
