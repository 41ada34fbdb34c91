// Package hostprobetest provides a canned Probe for tests that need to
// simulate arbitrary interpreters and toolchains without a real host.
package hostprobetest

import (
	"fmt"

	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
)

type Fake struct {
	Version    hostprobe.Version
	VersionErr error

	// Binaries maps binary names to resolved paths.
	Binaries map[string]string

	// Files maps working-directory file names to presence.
	Files map[string]bool
}

var _ hostprobe.Probe = (*Fake)(nil)

func (f *Fake) InterpreterVersion() (hostprobe.Version, error) {
	if f.VersionErr != nil {
		return hostprobe.Version{}, f.VersionErr
	}

	return f.Version, nil
}

func (f *Fake) LookPath(bin string) (string, error) {
	if path, ok := f.Binaries[bin]; ok {
		return path, nil
	}

	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", bin)
}

func (f *Fake) FileExists(name string) (bool, error) {
	return f.Files[name], nil
}
