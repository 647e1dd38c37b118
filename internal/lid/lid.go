// internal/lid/lid.go
package lid

import (
	"context"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

type StepResult struct {
	Name          string
	Skipped       bool
	NotApplicable bool
	Error         error
}

// Steps assembles the artifact writers for this machine. The per-user steps
// are omitted when the invoking user is unknown (direct root login); the
// Regolith block is omitted when no Regolith session is detected.
func Steps(ctx context.Context, exec executor.Executor, u *User, logindDropInDir, polkitRulesDir string) []Step {
	steps := []Step{
		PolkitStep(polkitRulesDir),
		LogindStep(logindDropInDir),
	}
	if u == nil {
		return steps
	}
	steps = append(steps, GsettingsStep(u))
	if RegolithPresent(ctx, exec, u.Home) {
		steps = append(steps, XresourcesStep(u))
	}
	return steps
}

// Configure runs the artifact writers in order, fail-fast except for
// best-effort steps whose failures are reported and ignored.
func Configure(ctx context.Context, exec executor.Executor, steps []Step) ([]StepResult, error) {
	var results []StepResult

	for _, step := range steps {
		if step.Applicable != nil {
			applicable, err := step.Applicable(ctx, exec)
			if err != nil {
				return results, err
			}
			if !applicable {
				ui.Skip(step.Label + " (not applicable on this system)")
				results = append(results, StepResult{Name: step.Name, Skipped: true, NotApplicable: true})
				continue
			}
		}

		done, err := step.Check(ctx, exec)
		if err != nil {
			return results, err
		}
		if done {
			ui.Skip(step.Label + " (already configured)")
			results = append(results, StepResult{Name: step.Name, Skipped: true})
			continue
		}

		if err := step.Apply(ctx, exec); err != nil {
			if step.BestEffort {
				ui.Warn(step.Label + " failed (ignored): " + err.Error())
				results = append(results, StepResult{Name: step.Name, Error: err})
				continue
			}
			ui.Error(step.Label + " failed: " + err.Error())
			results = append(results, StepResult{Name: step.Name, Error: err})
			return results, err
		}

		ui.Success(step.Label)
		results = append(results, StepResult{Name: step.Name})
	}
	return results, nil
}
