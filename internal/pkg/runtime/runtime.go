package runtime

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime/pip"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
	"github.com/project-devenv/devenv/internal/pkg/runtime/uv"
)

const (
	// EnvRuntimeType is the environment variable for runtime type.
	EnvRuntimeType = "DEVENV_RUNTIME"
)

// EnvTool drives the external toolchain that provisions and populates the
// isolated environment. Every method shells out and blocks until the tool
// exits; failures surface as *types.ToolError.
type EnvTool interface {
	// Type returns the toolchain this instance drives.
	Type() types.RuntimeType

	// EnvExists reports whether the environment directory is already present.
	EnvExists() bool

	// CreateEnv provisions a fresh environment at the fixed relative path.
	CreateEnv(ctx context.Context) error

	// UpgradeInstaller upgrades the environment's package installer.
	UpgradeInstaller(ctx context.Context) error

	// InstallRequirements installs every package listed in the manifest into
	// the environment.
	InstallRequirements(ctx context.Context, manifest string) error

	// InstallHooks registers the pre-commit hook using the environment's
	// tools.
	InstallHooks(ctx context.Context) error
}

// RuntimeFactory creates runtime instances based on configuration.
type RuntimeFactory struct {
	runtimeType types.RuntimeType
}

// NewRuntimeFactory creates a new runtime factory with the specified runtime type.
func NewRuntimeFactory(runtimeType types.RuntimeType) *RuntimeFactory {
	return &RuntimeFactory{
		runtimeType: runtimeType,
	}
}

// NewFactoryFromEnv creates a factory using environment variable or default.
func NewFactoryFromEnv() *RuntimeFactory {
	runtimeType := types.RuntimeTypePip // default
	if envRuntime := os.Getenv(EnvRuntimeType); envRuntime != "" {
		rt := types.RuntimeType(strings.ToLower(envRuntime))
		if rt.Valid() {
			runtimeType = rt
		} else {
			logger.Warningf("Invalid runtime type in %s: %s, using default: %s\n",
				EnvRuntimeType, envRuntime, types.RuntimeTypePip)
		}
	}

	return NewRuntimeFactory(runtimeType)
}

// Create creates a runtime instance based on the factory configuration.
func (f *RuntimeFactory) Create() (EnvTool, error) {
	return CreateRuntime(f.runtimeType)
}

// GetRuntimeType returns the configured runtime type.
func (f *RuntimeFactory) GetRuntimeType() types.RuntimeType {
	return f.runtimeType
}

// CreateRuntime creates a runtime instance based on the specified type.
func CreateRuntime(runtimeType types.RuntimeType) (EnvTool, error) {
	switch runtimeType {
	case types.RuntimeTypePip:
		logger.Infof("Initializing pip runtime\n", logger.VerbosityLevelDebug)

		return pip.NewEnvTool(), nil
	case types.RuntimeTypeUv:
		logger.Infof("Initializing uv runtime\n", logger.VerbosityLevelDebug)

		return uv.NewEnvTool(), nil
	default:
		return nil, fmt.Errorf("unsupported runtime type: %s", runtimeType)
	}
}
