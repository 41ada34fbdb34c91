package pip

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

// EnvTool provisions a venv and populates it with pip.
type EnvTool struct {
	python string

	// run executes a prepared command; replaced in tests.
	run func(step string, cmd *exec.Cmd) error
}

// NewEnvTool creates the pip-backed environment toolchain. The host
// interpreter honors the DEVENV_PYTHON override.
func NewEnvTool() *EnvTool {
	return &EnvTool{
		python: hostprobe.InterpreterBinary(),
		run:    runStep,
	}
}

func (t *EnvTool) Type() types.RuntimeType {
	return types.RuntimeTypePip
}

func (t *EnvTool) EnvExists() bool {
	_, err := os.Stat(constants.EnvDir)

	return err == nil
}

func (t *EnvTool) CreateEnv(ctx context.Context) error {
	return t.run("environment creation", t.createEnvCmd(ctx))
}

func (t *EnvTool) UpgradeInstaller(ctx context.Context) error {
	return t.run("installer upgrade", t.upgradeInstallerCmd(ctx))
}

func (t *EnvTool) InstallRequirements(ctx context.Context, manifest string) error {
	return t.run("dependency install", t.installRequirementsCmd(ctx, manifest))
}

func (t *EnvTool) InstallHooks(ctx context.Context) error {
	return t.run("hook registration", t.installHooksCmd(ctx))
}

// Command builders are separated from execution so tests can inspect the
// exact argv and environment without spawning anything.

func (t *EnvTool) createEnvCmd(ctx context.Context) *exec.Cmd {
	return exec.CommandContext(ctx, t.python, "-m", "venv", constants.EnvDir)
}

func (t *EnvTool) upgradeInstallerCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, types.EnvPython(), "-m", "pip", "install", "--upgrade", "pip")
	cmd.Env = types.ActivatedEnv(os.Environ())

	return cmd
}

func (t *EnvTool) installRequirementsCmd(ctx context.Context, manifest string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, types.EnvPython(), "-m", "pip", "install", "-r", manifest)
	cmd.Env = types.ActivatedEnv(os.Environ())

	return cmd
}

func (t *EnvTool) installHooksCmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, filepath.Join(types.EnvBinDir(), "pre-commit"), "install")
	cmd.Env = types.ActivatedEnv(os.Environ())

	return cmd
}

// runStep runs the command, capturing stderr so failures carry the tool's
// own diagnostics and exit code.
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
