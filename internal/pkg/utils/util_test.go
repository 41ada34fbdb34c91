package utils_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/utils"
)

var _ = Describe("CapitalizeAndFormat", func() {
	It("capitalizes single words", func() {
		Expect(utils.CapitalizeAndFormat("interpreter")).To(Equal("Interpreter"))
	})

	It("turns separators into spaces", func() {
		Expect(utils.CapitalizeAndFormat("pre-commit_hooks")).To(Equal("Pre Commit Hooks"))
	})

	It("passes empty strings through", func() {
		Expect(utils.CapitalizeAndFormat("")).To(Equal(""))
	})
})
