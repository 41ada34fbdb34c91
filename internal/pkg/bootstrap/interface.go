package bootstrap

import (
	"context"

	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

// Bootstrap defines the interface for environment bootstrapping operations.
// Different runtimes implement this interface to provide
// runtime-specific bootstrap functionality.
type Bootstrap interface {
	// Configure performs the complete provisioning of the environment:
	// creating it, upgrading the package installer, installing the declared
	// dependencies, and registering the commit hook. Steps run in that order
	// and the first failure aborts the rest with no rollback.
	Configure(ctx context.Context, opts types.ProvisionOptions) error

	// Type returns the runtime type this bootstrap implementation supports.
	Type() types.RuntimeType
}
