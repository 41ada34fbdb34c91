package hostprobe

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/project-devenv/devenv/internal/pkg/constants"
)

// Version is the interpreter version pair consumed by the interpreter gate.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Probe answers questions about host state. All rules read the host through
// this interface so tests can simulate arbitrary interpreters and toolchains.
type Probe interface {
	// InterpreterVersion detects the host interpreter version.
	InterpreterVersion() (Version, error)

	// LookPath resolves a binary on the execution path.
	LookPath(bin string) (string, error)

	// FileExists reports whether a fixed-name file is present in the
	// working directory.
	FileExists(name string) (bool, error)
}

// InterpreterBinary returns the interpreter the probe runs, honoring the
// DEVENV_PYTHON override.
func InterpreterBinary() string {
	if bin := os.Getenv(constants.EnvInterpreter); bin != "" {
		return bin
	}

	return "python3"
}

type hostProbe struct{}

// Default returns the probe backed by the real host.
func Default() Probe {
	return hostProbe{}
}

func (hostProbe) InterpreterVersion() (Version, error) {
	bin := InterpreterBinary()

	out, err := exec.Command(bin, "--version").CombinedOutput()
	if err != nil {
		return Version{}, fmt.Errorf("failed to run %s --version: %w", bin, err)
	}

	return ParseVersion(strings.TrimSpace(string(out)))
}

func (hostProbe) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (hostProbe) FileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// ParseVersion parses `--version` output of the form "Python 3.11.4".
// Pre-release suffixes ("3.13.0rc1") are tolerated since the gate only
// consumes major and minor.
func ParseVersion(raw string) (Version, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Version{}, fmt.Errorf("unable to determine interpreter version from %q", raw)
	}

	parts := strings.SplitN(fields[len(fields)-1], ".", 3)
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("unable to determine interpreter version from %q", raw)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("error extracting major version from %q: %w", raw, err)
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("error extracting minor version from %q: %w", raw, err)
	}

	return Version{Major: major, Minor: minor}, nil
}
