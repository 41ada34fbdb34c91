package uv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

// EnvTool provisions the environment with uv instead of venv+pip.
type EnvTool struct {
	run func(step string, cmd *exec.Cmd) error
}

func NewEnvTool() *EnvTool {
	return &EnvTool{run: runStep}
}

func (t *EnvTool) Type() types.RuntimeType {
	return types.RuntimeTypeUv
}

func (t *EnvTool) EnvExists() bool {
	_, err := os.Stat(constants.EnvDir)

	return err == nil
}

func (t *EnvTool) CreateEnv(ctx context.Context) error {
	return t.run("environment creation", t.createEnvCmd(ctx))
}

// UpgradeInstaller is a no-op: uv vendors its own resolver, there is no
// in-environment installer to upgrade.
func (t *EnvTool) UpgradeInstaller(ctx context.Context) error {
	logger.Infoln("uv manages its own resolver; skipping installer upgrade", logger.VerbosityLevelDebug)

	return nil
}

func (t *EnvTool) InstallRequirements(ctx context.Context, manifest string) error {
	return t.run("dependency install", t.installRequirementsCmd(ctx, manifest))
}

func (t *EnvTool) InstallHooks(ctx context.Context) error {
	return t.run("hook registration", t.installHooksCmd(ctx))
}

func (t *EnvTool) createEnvCmd(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, "uv", "venv", constants.EnvDir)
}

func (t *EnvTool) installRequirementsCmd(ctx context.Context, manifest string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "uv", "pip", "install", "-r", manifest)
	cmd.Env = types.ActivatedEnv(os.Environ())

	return cmd
}

func (t *EnvTool) installHooksCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, filepath.Join(types.EnvBinDir(), "pre-commit"), "install")
	cmd.Env = types.ActivatedEnv(os.Environ())

	return cmd
}

func runStep(step string, cmd *exec.Cmd) error {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}

		return &types.ToolError{Step: step, ExitCode: code, Stderr: stderr.String(), Err: err}
	}

	return nil
}
