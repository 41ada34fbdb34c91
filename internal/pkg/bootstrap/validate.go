package bootstrap

import (
	"context"
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/spinner"
	"github.com/project-devenv/devenv/internal/pkg/validators"
)

// Validate runs all validation checks. The interpreter check runs first and
// short-circuits the rest: every later gate and every provisioning step
// assumes a supported interpreter.
func (p *BootstrapFactory) Validate(ctx context.Context, skip map[string]bool) error {
	return runRules(ctx, validators.PythonRegistry.Rules(), skip)
}

func runRules(ctx context.Context, rules []validators.Rule, skip map[string]bool) error {
	var validationErrors []error

	for _, rule := range rules {
		ruleName := rule.Name()
		if skip[ruleName] {
			logger.Warningf("%s check skipped; proceeding without validation may leave a broken environment.", ruleName)

			continue
		}

		s := spinner.New("Validating " + ruleName + " ...")
		s.Start(ctx)
		err := rule.Verify()

		if err != nil {
			s.Fail(err.Error())
			s.StopWithHint(err.Error(), rule.Hint())

			// exit right away on an unsupported interpreter, the remaining
			// checks and every provisioning step depend on it
			if ruleName == "interpreter" {
				return fmt.Errorf("unsupported interpreter: %w", err)
			}

			switch rule.Level() {
			case constants.ValidationLevelError:
				validationErrors = append(validationErrors, fmt.Errorf("%s: %w", ruleName, err))
			case constants.ValidationLevelWarning:
				logger.Warningln(err.Error())
			}
		} else {
			s.Stop(rule.Message())
		}
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%d validation check(s) failed", len(validationErrors))
	}

	logger.Infoln("All validations passed")

	return nil
}
