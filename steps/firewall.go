package steps

import "webup/flowup/domain"

// Firewall resets ufw to a default-deny-incoming policy and opens SSH
// plus the nginx profile (80/443). The reset drops any rules added
// outside this tool.
func Firewall(runner domain.Runner) domain.ProvisioningStep {
	rules := [][]string{
		{"ufw", "--force", "reset"},
		{"ufw", "default", "deny", "incoming"},
		{"ufw", "default", "allow", "outgoing"},
		{"ufw", "allow", "OpenSSH"},
		{"ufw", "allow", "Nginx Full"},
		{"ufw", "--force", "enable"},
	}

	return domain.ProvisioningStep{
		Name:  "Configure firewall",
		Class: domain.DestructiveOnce,
		Run: func() error {
			for _, rule := range rules {
				if err := runner.Run(domain.NewCommand(rule)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
