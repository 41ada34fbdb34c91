package venv

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/project-devenv/devenv/internal/pkg/cli/helpers"
	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
	"github.com/project-devenv/devenv/internal/pkg/spinner"
)

// VenvBootstrap provisions a virtual environment through the configured
// toolchain. Steps run in a fixed order and the first failure aborts the
// sequence with no rollback of earlier side effects.
type VenvBootstrap struct {
	tool runtime.EnvTool

	// confirm asks whether to reuse an existing environment; replaced in tests.
	confirm func(title string) (bool, error)

	interactive bool
}

func NewVenvBootstrap(tool runtime.EnvTool) *VenvBootstrap {
	return &VenvBootstrap{
		tool:        tool,
		confirm:     confirmPrompt,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

func (b *VenvBootstrap) Type() types.RuntimeType {
	return b.tool.Type()
}

func (b *VenvBootstrap) Configure(ctx context.Context, opts types.ProvisionOptions) error {
	if err := b.prepareEnv(ctx, opts); err != nil {
		return err
	}

	s := spinner.New("Upgrading package installer")
	s.Start(ctx)
	if err := b.tool.UpgradeInstaller(ctx); err != nil {
		s.Fail("failed to upgrade package installer")

		return err
	}
	s.Stop("Package installer up to date")

	s = spinner.New("Installing " + constants.RequirementsFile)
	s.Start(ctx)
	if err := b.tool.InstallRequirements(ctx, constants.RequirementsFile); err != nil {
		s.Fail("failed to install dependencies")

		return err
	}
	s.Stop("Dependencies installed")

	return b.registerHooks(ctx)
}

// prepareEnv decides what to do with a pre-existing environment directory and
// creates a fresh one when needed. Reuse is explicit: interactive confirm,
// --assume-yes, or a warning in non-interactive runs; the directory is never
// deleted without --recreate.
func (b *VenvBootstrap) prepareEnv(ctx context.Context, opts types.ProvisionOptions) error {
	if b.tool.EnvExists() {
		switch {
		case opts.Recreate:
			logger.Infoln("Removing existing " + constants.EnvDir)
			if err := os.RemoveAll(constants.EnvDir); err != nil {
				return fmt.Errorf("failed to remove existing environment: %w", err)
			}
		case opts.AssumeYes:
			logger.Infoln("Reusing existing " + constants.EnvDir)

			return nil
		case b.interactive:
			reuse, err := b.confirm(constants.EnvDir + " already exists. Reuse it?")
			if err != nil {
				return fmt.Errorf("confirmation prompt failed: %w", err)
			}
			if !reuse {
				return fmt.Errorf("aborted: %s already exists, re-run with --recreate for a fresh environment", constants.EnvDir)
			}

			return nil
		default:
			logger.Warningf("%s already exists, reusing it. Pass --recreate for a fresh environment.\n", constants.EnvDir)

			return nil
		}
	}

	s := spinner.New("Creating virtual environment at " + constants.EnvDir)
	s.Start(ctx)
	if err := b.tool.CreateEnv(ctx); err != nil {
		s.Fail("failed to create virtual environment")

		return err
	}
	s.Stop("Virtual environment created at " + constants.EnvDir)

	return nil
}

func (b *VenvBootstrap) registerHooks(ctx context.Context) error {
	if _, err := os.Stat(constants.HookManifestFile); err != nil {
		logger.Warningf("%s not found, skipping hook registration\n", constants.HookManifestFile)

		return nil
	}

	// the manifest parse is informational, pre-commit itself is authoritative
	if manifest, err := helpers.LoadHookManifest(constants.HookManifestFile); err == nil {
		logger.Infof("Registering %d hook(s) from %d repo(s)\n", manifest.HookCount(), len(manifest.Repos))
	}

	s := spinner.New("Registering pre-commit hook")
	s.Start(ctx)
	if err := b.tool.InstallHooks(ctx); err != nil {
		s.Fail("failed to register pre-commit hook")

		return err
	}
	s.Stop("Pre-commit hook registered")

	return nil
}

func confirmPrompt(title string) (bool, error) {
	reuse := true
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Reuse").
			Negative("Abort").
			Value(&reuse),
	)).Run()

	return reuse, err
}
