package steps

import "webup/flowup/domain"

// RequestCertificate runs certbot in nginx-plugin mode: it rewrites
// the stage-A vhost in place, adding TLS termination and the
// HTTP-to-HTTPS redirect. A failure is a warning, not an abort: the
// HTTP-only site keeps working and the step can be retried by hand
// once DNS points at this host.
func RequestCertificate(cfg domain.DeploymentConfig, runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Request TLS certificate",
		Class: domain.SafeToRerun,
		Warn:  true,
		Run: func() error {
			cmd := domain.NewCommand([]string{
				"certbot", "--nginx",
				"-d", cfg.TargetHost,
				"--non-interactive",
				"--agree-tos",
				"--register-unsafely-without-email",
				"--redirect",
			})
			if err := runner.Run(cmd); err != nil {
				return &domain.CertificateAcquisitionError{Host: cfg.TargetHost, Err: err}
			}

			// certbot edited the vhost: validate and reload again
			return reloadProxy(runner)
		},
	}
}
