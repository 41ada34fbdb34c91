package validators

import (
	"sync"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/hooks"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/interpreter"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/manifest"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/toolchain"
)

// Initialize the default registry with built-in rules.
func init() {
	probe := hostprobe.Default()

	// adding interpreter rule on top to verify this check first,
	// a failure there short-circuits everything else
	PythonRegistry.Register(interpreter.NewInterpreterRule(probe))
	PythonRegistry.Register(toolchain.NewToolchainRule(probe))
	PythonRegistry.Register(manifest.NewManifestRule(probe))
	PythonRegistry.Register(hooks.NewHooksRule(probe))
}

// Rule defines the interface for validation rules.
type Rule interface {
	Verify() error
	Message() string
	Name() string
	Level() constants.ValidationLevel
	Hint() string
	Description() string
}

// PythonRegistry is the registry instance that holds all registered checks.
var PythonRegistry = NewValidationRegistry()

// ValidationRegistry holds the list of checks.
type ValidationRegistry struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewValidationRegistry creates a new registry.
func NewValidationRegistry() *ValidationRegistry {
	return &ValidationRegistry{
		rules: make([]Rule, 0),
	}
}

// Register adds a new check to the list.
func (r *ValidationRegistry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule)
}

// Rules returns the list of registered checks.
func (r *ValidationRegistry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.rules
}
