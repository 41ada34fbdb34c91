package interpreter

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/logger"
)

type InterpreterRule struct {
	probe hostprobe.Probe
}

func NewInterpreterRule(probe hostprobe.Probe) *InterpreterRule {
	return &InterpreterRule{probe: probe}
}

func (r *InterpreterRule) Name() string {
	return "interpreter"
}

func (r *InterpreterRule) Description() string {
	return fmt.Sprintf("Validates that the host Python version is %d.%d or lower.",
		constants.SupportedInterpreterMajor, constants.SupportedInterpreterMinorMax)
}

func (r *InterpreterRule) Verify() error {
	logger.Infoln("Validating host interpreter version...", logger.VerbosityLevelDebug)

	version, err := r.probe.InterpreterVersion()
	if err != nil {
		return fmt.Errorf("failed to detect interpreter version: %w", err)
	}

	if version.Major != constants.SupportedInterpreterMajor ||
		version.Minor > constants.SupportedInterpreterMinorMax {
		return fmt.Errorf("unsupported Python version: %s. Python %d.%d or lower is required, set %s to select a different interpreter",
			version, constants.SupportedInterpreterMajor, constants.SupportedInterpreterMinorMax, constants.EnvInterpreter)
	}

	return nil
}

func (r *InterpreterRule) Message() string {
	return "Host Python version is supported"
}

func (r *InterpreterRule) Level() constants.ValidationLevel {
	return constants.ValidationLevelError
}

func (r *InterpreterRule) Hint() string {
	return fmt.Sprintf("Install Python %d.%d (for example with pyenv) and point %s at it, e.g. %s=python%d.%d",
		constants.SupportedInterpreterMajor, constants.SupportedInterpreterMinorMax,
		constants.EnvInterpreter, constants.EnvInterpreter,
		constants.SupportedInterpreterMajor, constants.SupportedInterpreterMinorMax)
}
