package domain

import (
	"fmt"

	"github.com/fatih/color"
)

// IdempotencyClass documents what rerunning a step does.
type IdempotencyClass string

const (
	// SafeToRerun steps converge to the same host state on every run.
	SafeToRerun IdempotencyClass = "safe-to-rerun"
	// DestructiveOnce steps replace existing state (e.g. a firewall
	// reset drops rules added outside this tool).
	DestructiveOnce IdempotencyClass = "destructive-once"
)

// ProvisioningStep is one side-effecting unit of work against an
// external tool.
type ProvisioningStep struct {
	Name  string
	Class IdempotencyClass

	// Check reports whether the step still needs to run. A nil Check
	// means the step always runs.
	Check func() bool

	// Run performs the step.
	Run func() error

	// Warn marks a step whose failure is reported as a warning
	// instead of aborting the sequence.
	Warn bool
}

// RunSteps executes the steps in order, stopping at the first failing
// step that is not marked Warn. There is no rollback: state applied by
// earlier steps is left in place for inspection, and the operator is
// expected to rerun after remediation.
//
// The returned slice holds the messages of non-fatal failures.
func RunSteps(steps []ProvisioningStep) ([]string, error) {
	var warnings []string

	for _, step := range steps {
		fmt.Printf("\n ▶  %s\n", step.Name)

		if step.Check != nil && !step.Check() {
			fmt.Printf("    Step '%s' skipped (already applied).\n", step.Name)
			continue
		}

		if err := step.Run(); err != nil {
			if step.Warn {
				fmt.Printf(" %s %s: %v\n", color.YellowString("⚠"), step.Name, err)
				warnings = append(warnings, fmt.Sprintf("%s: %v", step.Name, err))
				continue
			}
			fmt.Printf(" %s %s: %v\n", color.RedString("✗"), step.Name, err)
			return warnings, err
		}

		fmt.Printf(" %s %s\n", color.GreenString("✓"), step.Name)
	}

	return warnings, nil
}
