package manifest

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/logger"
)

type ManifestRule struct {
	probe hostprobe.Probe
}

func NewManifestRule(probe hostprobe.Probe) *ManifestRule {
	return &ManifestRule{probe: probe}
}

func (r *ManifestRule) Name() string {
	return "manifest"
}

func (r *ManifestRule) Description() string {
	return fmt.Sprintf("Validates that the dependency manifest (%s) is present in the working tree.", constants.RequirementsFile)
}

func (r *ManifestRule) Verify() error {
	logger.Infoln("Validating dependency manifest presence...", logger.VerbosityLevelDebug)

	exists, err := r.probe.FileExists(constants.RequirementsFile)
	if err != nil {
		return fmt.Errorf("failed to check for %s: %w", constants.RequirementsFile, err)
	}
	if !exists {
		return fmt.Errorf("dependency manifest %s not found in the working directory", constants.RequirementsFile)
	}

	return nil
}

func (r *ManifestRule) Message() string {
	return "Dependency manifest is present"
}

func (r *ManifestRule) Level() constants.ValidationLevel {
	return constants.ValidationLevelError
}

func (r *ManifestRule) Hint() string {
	return fmt.Sprintf("Run this command from the repository root, where %s lives", constants.RequirementsFile)
}
