package types

import (
	"fmt"
	"strings"
)

// RuntimeType represents the toolchain that owns the isolated environment.
type RuntimeType string

const (
	RuntimeTypePip RuntimeType = "pip"
	RuntimeTypeUv  RuntimeType = "uv"
)

// String returns the string representation of RuntimeType.
func (r RuntimeType) String() string {
	return string(r)
}

// Valid checks if the runtime type is valid.
func (r RuntimeType) Valid() bool {
	switch r {
	case RuntimeTypePip, RuntimeTypeUv:
		return true
	default:
		return false
	}
}

// ToolError carries the exit status and captured stderr of a failed external
// tool invocation so the process exit code can propagate it.
type ToolError struct {
	Step     string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Step, e.Err, s)
	}

	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// ProvisionOptions controls how an existing environment directory is handled
// when provisioning reruns against a working tree that already has one.
type ProvisionOptions struct {
	// Recreate removes the existing environment before provisioning.
	Recreate bool

	// AssumeYes reuses an existing environment without prompting.
	AssumeYes bool
}
