package steps

import (
	"fmt"

	"webup/flowup/domain"
	"webup/flowup/utils"
)

// WaitForApp blocks until n8n answers on its loopback port. A timeout
// aborts the whole run: configuring the proxy and requesting a
// certificate for a dead upstream would leave a half-configured host
// that looks healthy from the outside.
func WaitForApp() domain.ProvisioningStep {
	url := fmt.Sprintf("http://127.0.0.1:%d/", domain.AppPort)

	return domain.ProvisioningStep{
		Name:  "Wait for n8n to answer",
		Class: domain.SafeToRerun,
		Run: func() error {
			check := utils.NewReadinessCheck(url)
			attempts, err := check.Wait()
			if err != nil {
				return err
			}
			fmt.Printf("    n8n answered after %d probe(s)\n", attempts)
			return nil
		},
	}
}
