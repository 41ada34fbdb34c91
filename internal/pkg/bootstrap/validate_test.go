package bootstrap

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/validators"
)

// fakeRule records whether it ran so ordering and short-circuiting can be
// asserted without touching the host.
type fakeRule struct {
	name  string
	level constants.ValidationLevel
	err   error

	ran *bool
}

func (r *fakeRule) Verify() error {
	if r.ran != nil {
		*r.ran = true
	}

	return r.err
}

func (r *fakeRule) Name() string                     { return r.name }
func (r *fakeRule) Message() string                  { return r.name + " ok" }
func (r *fakeRule) Description() string              { return r.name }
func (r *fakeRule) Hint() string                     { return "" }
func (r *fakeRule) Level() constants.ValidationLevel { return r.level }

var _ = Describe("runRules", func() {
	ctx := context.Background()

	It("passes when every rule passes", func() {
		rules := []validators.Rule{
			&fakeRule{name: "interpreter", level: constants.ValidationLevelError},
			&fakeRule{name: "toolchain", level: constants.ValidationLevelError},
		}

		Expect(runRules(ctx, rules, nil)).To(Succeed())
	})

	It("short-circuits the remaining rules when the interpreter rule fails", func() {
		toolchainRan := false
		rules := []validators.Rule{
			&fakeRule{name: "interpreter", level: constants.ValidationLevelError, err: errors.New("unsupported Python version: 3.13")},
			&fakeRule{name: "toolchain", level: constants.ValidationLevelError, ran: &toolchainRan},
		}

		err := runRules(ctx, rules, nil)
		Expect(err).To(MatchError(ContainSubstring("3.13")))
		Expect(toolchainRan).To(BeFalse())
	})

	It("collects error-level failures and reports the count", func() {
		rules := []validators.Rule{
			&fakeRule{name: "interpreter", level: constants.ValidationLevelError},
			&fakeRule{name: "toolchain", level: constants.ValidationLevelError, err: errors.New("cargo not found")},
			&fakeRule{name: "manifest", level: constants.ValidationLevelError, err: errors.New("manifest missing")},
		}

		err := runRules(ctx, rules, nil)
		Expect(err).To(MatchError(ContainSubstring("2 validation check(s) failed")))
	})

	It("does not fail on warning-level rules", func() {
		rules := []validators.Rule{
			&fakeRule{name: "interpreter", level: constants.ValidationLevelError},
			&fakeRule{name: "hooks", level: constants.ValidationLevelWarning, err: errors.New("hook manifest not found")},
		}

		Expect(runRules(ctx, rules, nil)).To(Succeed())
	})

	It("skips rules named in the skip set", func() {
		toolchainRan := false
		rules := []validators.Rule{
			&fakeRule{name: "interpreter", level: constants.ValidationLevelError},
			&fakeRule{name: "toolchain", level: constants.ValidationLevelError, err: errors.New("cargo not found"), ran: &toolchainRan},
		}

		Expect(runRules(ctx, rules, map[string]bool{"toolchain": true})).To(Succeed())
		Expect(toolchainRan).To(BeFalse())
	})
})
