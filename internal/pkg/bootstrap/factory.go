package bootstrap

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/bootstrap/venv"
	"github.com/project-devenv/devenv/internal/pkg/runtime"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

// BootstrapFactory creates Bootstrap instances for a runtime type.
type BootstrapFactory struct {
	runtimeType types.RuntimeType
}

func NewBootstrapFactory(runtimeType types.RuntimeType) *BootstrapFactory {
	return &BootstrapFactory{runtimeType: runtimeType}
}

// Create builds the bootstrap instance backed by the configured toolchain.
func (p *BootstrapFactory) Create() (Bootstrap, error) {
	tool, err := runtime.CreateRuntime(p.runtimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime: %w", err)
	}

	return venv.NewVenvBootstrap(tool), nil
}
