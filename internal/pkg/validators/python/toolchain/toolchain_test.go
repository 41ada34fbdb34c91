package toolchain_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/hostprobe/hostprobetest"
	"github.com/project-devenv/devenv/internal/pkg/validators/python/toolchain"
)

var _ = Describe("ToolchainRule", func() {
	It("passes when cargo resolves on the execution path", func() {
		probe := &hostprobetest.Fake{Binaries: map[string]string{"cargo": "/usr/bin/cargo"}}
		Expect(toolchain.NewToolchainRule(probe).Verify()).To(Succeed())
	})

	It("fails when cargo is absent", func() {
		rule := toolchain.NewToolchainRule(&hostprobetest.Fake{})
		err := rule.Verify()
		Expect(err).To(MatchError(ContainSubstring("cargo")))
	})

	It("points at the Rust installer in its hint", func() {
		rule := toolchain.NewToolchainRule(&hostprobetest.Fake{})
		Expect(rule.Hint()).To(ContainSubstring("rustup.rs"))
		Expect(rule.Level()).To(Equal(constants.ValidationLevelError))
	})
})
