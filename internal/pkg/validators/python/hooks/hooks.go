package hooks

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/cli/helpers"
	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/logger"
)

type HooksRule struct {
	probe hostprobe.Probe
}

func NewHooksRule(probe hostprobe.Probe) *HooksRule {
	return &HooksRule{probe: probe}
}

func (r *HooksRule) Name() string {
	return "hooks"
}

func (r *HooksRule) Description() string {
	return fmt.Sprintf("Validates that the hook manifest (%s) is present and parseable.", constants.HookManifestFile)
}

func (r *HooksRule) Verify() error {
	logger.Infoln("Validating hook manifest...", logger.VerbosityLevelDebug)

	exists, err := r.probe.FileExists(constants.HookManifestFile)
	if err != nil {
		return fmt.Errorf("failed to check for %s: %w", constants.HookManifestFile, err)
	}
	if !exists {
		return fmt.Errorf("hook manifest %s not found, hook registration will be skipped", constants.HookManifestFile)
	}

	manifest, err := helpers.LoadHookManifest(constants.HookManifestFile)
	if err != nil {
		return err
	}

	if manifest.HookCount() == 0 {
		return fmt.Errorf("hook manifest %s declares no hooks", constants.HookManifestFile)
	}

	return nil
}

func (r *HooksRule) Message() string {
	return "Hook manifest is present"
}

func (r *HooksRule) Level() constants.ValidationLevel {
	return constants.ValidationLevelWarning
}

func (r *HooksRule) Hint() string {
	return fmt.Sprintf("Add a %s to the repository to get pre-commit checks registered automatically", constants.HookManifestFile)
}
