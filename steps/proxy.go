package steps

import (
	"os"
	"path/filepath"

	"webup/flowup/artifacts"
	"webup/flowup/domain"
)

// Package variables so tests can point the step at a scratch
// directory.
var (
	sitesAvailableDir = "/etc/nginx/sites-available"
	sitesEnabledDir   = "/etc/nginx/sites-enabled"
)

// ConfigureProxy writes the HTTP-only vhost (stage A), enables it via
// the sites-enabled symlink convention, disables the distribution
// default site, and reloads nginx.
func ConfigureProxy(cfg domain.DeploymentConfig, runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Configure reverse proxy",
		Class: domain.SafeToRerun,
		// a validation failure blocks the reload but not the run; the
		// previous valid nginx configuration stays active
		Warn: true,
		Run: func() error {
			site := filepath.Join(sitesAvailableDir, cfg.TargetHost)
			if err := artifacts.WriteFile(site, artifacts.NginxSite(cfg), 0644); err != nil {
				return err
			}

			// the default site would shadow our vhost on plain-IP requests
			os.Remove(filepath.Join(sitesEnabledDir, "default"))

			link := filepath.Join(sitesEnabledDir, cfg.TargetHost)
			if _, err := os.Lstat(link); os.IsNotExist(err) {
				if err := os.Symlink(site, link); err != nil {
					return err
				}
			}

			return reloadProxy(runner)
		},
	}
}

// reloadProxy validates the nginx configuration before signalling the
// daemon. A broken config must never reach a running nginx: on
// validation failure the reload is skipped and the previous valid
// configuration stays active.
func reloadProxy(runner domain.Runner) error {
	out, err := runner.Output(domain.NewCommand([]string{"nginx", "-t"}))
	if err != nil {
		return &domain.ReverseProxyValidationError{Output: out}
	}
	return runner.Run(domain.NewCommand([]string{"systemctl", "reload", "nginx"}))
}
