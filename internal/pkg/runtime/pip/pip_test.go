package pip

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
)

var _ = Describe("EnvTool", func() {
	var (
		ctx  context.Context
		tool *EnvTool
	)

	BeforeEach(func() {
		ctx = context.Background()
		tool = NewEnvTool()
	})

	It("reports the pip runtime type", func() {
		Expect(tool.Type()).To(Equal(types.RuntimeTypePip))
	})

	Describe("command builders", func() {
		It("creates the environment with the host interpreter", func() {
			cmd := tool.createEnvCmd(ctx)
			Expect(cmd.Args[1:]).To(Equal([]string{"-m", "venv", constants.EnvDir}))
			Expect(cmd.Args[0]).To(ContainSubstring("python"))
		})

		It("honors the interpreter override", func() {
			GinkgoT().Setenv(constants.EnvInterpreter, "python3.12")

			cmd := NewEnvTool().createEnvCmd(ctx)
			Expect(cmd.Args[0]).To(Equal("python3.12"))
		})

		It("upgrades pip with the environment's interpreter and activated env", func() {
			cmd := tool.upgradeInstallerCmd(ctx)
			Expect(cmd.Args).To(Equal([]string{types.EnvPython(), "-m", "pip", "install", "--upgrade", "pip"}))
			Expect(cmd.Env).To(ContainElement("VIRTUAL_ENV=" + constants.EnvDir))
		})

		It("installs requirements from the given manifest", func() {
			cmd := tool.installRequirementsCmd(ctx, constants.RequirementsFile)
			Expect(cmd.Args).To(Equal([]string{types.EnvPython(), "-m", "pip", "install", "-r", constants.RequirementsFile}))
		})

		It("registers hooks with the environment's pre-commit", func() {
			cmd := tool.installHooksCmd(ctx)
			Expect(cmd.Args).To(Equal([]string{filepath.Join(types.EnvBinDir(), "pre-commit"), "install"}))
			Expect(cmd.Env).To(ContainElement("VIRTUAL_ENV=" + constants.EnvDir))
		})
	})

	Describe("step execution", func() {
		It("labels each step for error reporting", func() {
			var steps []string
			tool.run = func(step string, cmd *exec.Cmd) error {
				steps = append(steps, step)

				return nil
			}

			Expect(tool.CreateEnv(ctx)).To(Succeed())
			Expect(tool.UpgradeInstaller(ctx)).To(Succeed())
			Expect(tool.InstallRequirements(ctx, constants.RequirementsFile)).To(Succeed())
			Expect(tool.InstallHooks(ctx)).To(Succeed())

			Expect(steps).To(Equal([]string{
				"environment creation",
				"installer upgrade",
				"dependency install",
				"hook registration",
			}))
		})

		It("wraps a failed command in a ToolError with its exit code", func() {
			err := runStep("dependency install", exec.Command("false"))

			var toolErr *types.ToolError
			Expect(errors.As(err, &toolErr)).To(BeTrue())
			Expect(toolErr.Step).To(Equal("dependency install"))
			Expect(toolErr.ExitCode).To(Equal(1))
		})

		It("captures stderr from the failed command", func() {
			err := runStep("dependency install", exec.Command("sh", "-c", "echo no matching distribution >&2; exit 3"))

			var toolErr *types.ToolError
			Expect(errors.As(err, &toolErr)).To(BeTrue())
			Expect(toolErr.ExitCode).To(Equal(3))
			Expect(toolErr.Stderr).To(ContainSubstring("no matching distribution"))
		})
	})

	Describe("EnvExists", func() {
		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			wd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(dir)).To(Succeed())
			DeferCleanup(os.Chdir, wd)
		})

		It("is false before the environment directory is created", func() {
			Expect(tool.EnvExists()).To(BeFalse())
		})

		It("is true once the environment directory is present", func() {
			Expect(os.Mkdir(constants.EnvDir, 0o755)).To(Succeed())
			Expect(tool.EnvExists()).To(BeTrue())
		})
	})
})
