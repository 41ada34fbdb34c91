package helpers_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/cli/helpers"
)

var _ = Describe("ParseSkipChecks", func() {
	It("normalizes case and whitespace", func() {
		skip := helpers.ParseSkipChecks([]string{" Toolchain ", "HOOKS"})
		Expect(skip).To(HaveKey("toolchain"))
		Expect(skip).To(HaveKey("hooks"))
	})

	It("splits comma-joined values", func() {
		skip := helpers.ParseSkipChecks([]string{"toolchain,hooks"})
		Expect(skip).To(HaveLen(2))
	})

	It("ignores empty entries", func() {
		Expect(helpers.ParseSkipChecks([]string{"", " , "})).To(BeEmpty())
	})
})

var _ = Describe("LoadHookManifest", func() {
	It("parses repos and counts hooks", func() {
		path := writeTemp(`repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.5.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
  - repo: local
    hooks:
      - id: lint
`)

		m, err := helpers.LoadHookManifest(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Repos).To(HaveLen(2))
		Expect(m.HookCount()).To(Equal(3))
	})

	It("fails on unreadable files", func() {
		_, err := helpers.LoadHookManifest(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("read hook manifest")))
	})

	It("fails on malformed YAML", func() {
		_, err := helpers.LoadHookManifest(writeTemp("repos: ["))
		Expect(err).To(MatchError(ContainSubstring("parse hook manifest")))
	})
})

func writeTemp(content string) string {
	GinkgoHelper()

	path := filepath.Join(GinkgoT().TempDir(), ".pre-commit-config.yaml")
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

	return path
}
