// Package steps builds the ordered provisioning sequence. The order is
// a hard dependency chain: docker must exist before containers start,
// containers must answer before nginx forwards to them, and the HTTP
// vhost must exist before certbot can rewrite it to HTTPS.
package steps

import "webup/flowup/domain"

// Sequence returns the provisioning steps for the given configuration,
// in execution order.
func Sequence(cfg domain.DeploymentConfig, runner domain.Runner) []domain.ProvisioningStep {
	return []domain.ProvisioningStep{
		SystemUpdate(runner),
		Firewall(runner),
		DockerInstall(runner),
		GenerateArtifacts(cfg),
		StartContainers(cfg, runner),
		WaitForApp(),
		ConfigureProxy(cfg, runner),
		RequestCertificate(cfg, runner),
		VerifyDeployment(cfg, runner),
	}
}
