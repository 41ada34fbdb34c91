package types

import (
	"path/filepath"
	"strings"

	"github.com/project-devenv/devenv/internal/pkg/constants"
)

// EnvBinDir returns the environment's executable directory.
func EnvBinDir() string {
	return filepath.Join(constants.EnvDir, "bin")
}

// EnvPython returns the environment's interpreter path.
func EnvPython() string {
	return filepath.Join(EnvBinDir(), "python")
}

// ActivatedEnv layers the environment over the host process environment:
// the env bin directory is prepended to PATH and VIRTUAL_ENV is set, so the
// environment's interpreter and tools take precedence over the host's.
func ActivatedEnv(environ []string) []string {
	out := make([]string, 0, len(environ)+1)

	pathSeen := false
	for _, kv := range environ {
		switch {
		case strings.HasPrefix(kv, "PATH="):
			out = append(out, "PATH="+EnvBinDir()+string(filepath.ListSeparator)+strings.TrimPrefix(kv, "PATH="))
			pathSeen = true
		case strings.HasPrefix(kv, "VIRTUAL_ENV="):
			// replaced below
		default:
			out = append(out, kv)
		}
	}

	if !pathSeen {
		out = append(out, "PATH="+EnvBinDir())
	}
	out = append(out, "VIRTUAL_ENV="+constants.EnvDir)

	return out
}
