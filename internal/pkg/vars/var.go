package vars

import "github.com/project-devenv/devenv/internal/pkg/runtime"

// RuntimeFactory is the process-wide factory for the environment toolchain.
// It is replaced by the root command when --runtime is set.
var RuntimeFactory = runtime.NewFactoryFromEnv()
