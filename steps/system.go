package steps

import "webup/flowup/domain"

var aptEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

func aptCommand(args ...string) domain.Command {
	cmd := domain.NewCommand(append([]string{"apt-get"}, args...))
	cmd.Env = aptEnv
	return cmd
}

// SystemUpdate refreshes the package index and upgrades installed
// packages non-interactively.
func SystemUpdate(runner domain.Runner) domain.ProvisioningStep {
	return domain.ProvisioningStep{
		Name:  "Update system packages",
		Class: domain.SafeToRerun,
		Run: func() error {
			if err := runner.Run(aptCommand("update")); err != nil {
				return err
			}
			return runner.Run(aptCommand("upgrade", "-y"))
		},
	}
}
