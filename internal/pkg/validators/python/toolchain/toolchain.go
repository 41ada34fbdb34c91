package toolchain

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/logger"
)

const toolchainBinary = "cargo"

type ToolchainRule struct {
	probe hostprobe.Probe
}

func NewToolchainRule(probe hostprobe.Probe) *ToolchainRule {
	return &ToolchainRule{probe: probe}
}

func (r *ToolchainRule) Name() string {
	return "toolchain"
}

func (r *ToolchainRule) Description() string {
	return "Validates that the Rust toolchain is available to build native dependencies."
}

func (r *ToolchainRule) Verify() error {
	logger.Infoln("Validating Rust toolchain presence...", logger.VerbosityLevelDebug)

	if _, err := r.probe.LookPath(toolchainBinary); err != nil {
		return fmt.Errorf("%s not found on PATH: a Rust toolchain is required to build native dependencies", toolchainBinary)
	}

	return nil
}

func (r *ToolchainRule) Message() string {
	return "Rust toolchain is available"
}

func (r *ToolchainRule) Level() constants.ValidationLevel {
	return constants.ValidationLevelError
}

func (r *ToolchainRule) Hint() string {
	return fmt.Sprintf(`Install the Rust toolchain and re-run. For installation instructions refer to %shttps://rustup.rs%s`,
		"\033[34m",
		"\033[0m")
}
