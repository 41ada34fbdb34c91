package constants

const (
	// EnvDir is the fixed relative path of the managed virtual environment.
	EnvDir = ".venv"

	// RequirementsFile is the dependency manifest read from the working tree.
	RequirementsFile = "dev-requirements.txt"

	// HookManifestFile is the pre-commit hook manifest read from the working tree.
	HookManifestFile = ".pre-commit-config.yaml"

	// SupportedInterpreterMajor / SupportedInterpreterMinorMax bound the host
	// interpreter version accepted by the interpreter gate. Minor versions
	// above the max are rejected because native dependencies do not ship
	// wheels for them yet.
	SupportedInterpreterMajor    = 3
	SupportedInterpreterMinorMax = 12

	// EnvInterpreter selects an alternate host interpreter binary.
	EnvInterpreter = "DEVENV_PYTHON"
)

type ValidationLevel int

const (
	ValidationLevelWarning ValidationLevel = iota
	ValidationLevelError
)

// String returns the human-readable level name.
func (l ValidationLevel) String() string {
	switch l {
	case ValidationLevelError:
		return "error"
	case ValidationLevelWarning:
		return "warning"
	default:
		return "unknown"
	}
}
