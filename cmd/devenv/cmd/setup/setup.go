package setup

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/project-devenv/devenv/internal/pkg/bootstrap"
	"github.com/project-devenv/devenv/internal/pkg/constants"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
	"github.com/project-devenv/devenv/internal/pkg/vars"
)

// SetupCmd represents the setup command.
func SetupCmd() *cobra.Command {
	setupCmd := &cobra.Command{
		Use:     "setup",
		Short:   "Bootstraps the development environment",
		Long:    setupDescription(),
		Example: setupExample(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			factory := bootstrap.NewBootstrapFactory(vars.RuntimeFactory.GetRuntimeType())

			// gates first, nothing is mutated until they pass
			if err := factory.Validate(cmd.Context(), nil); err != nil {
				return fmt.Errorf("setup prerequisites not met: %w", err)
			}

			bootstrapInstance, err := factory.Create()
			if err != nil {
				return fmt.Errorf("failed to create bootstrap instance: %w", err)
			}

			if err := bootstrapInstance.Configure(cmd.Context(), types.ProvisionOptions{}); err != nil {
				return fmt.Errorf("failed to bootstrap the environment: %w", err)
			}

			logger.Infoln("Development environment bootstrapped successfully")
			logger.Infoln("----------------------------------------------------------------------------")
			style := lipgloss.NewStyle().Foreground(lipgloss.Color("#32BD27"))
			message := style.Render("Activate it with `source " + constants.EnvDir + "/bin/activate`")
			logger.Infoln(message)

			return nil
		},
	}

	// subcommands
	setupCmd.AddCommand(validateCmd())
	setupCmd.AddCommand(provisionCmd())

	return setupCmd
}

func setupExample() string {
	return `  # Validate prerequisites and provision the environment
  devenv setup

  # Validate the host only
  devenv setup validate

  # Provision with a clean environment
  devenv setup provision --recreate

  # Get help on a specific subcommand
  devenv setup validate --help`
}

func setupDescription() string {
	return fmt.Sprintf(`The setup command validates host prerequisites and provisions an isolated
Python development environment for the current working tree.

Available subcommands:

Validate - checks below prerequisites, mutating nothing:
 - Host Python version (%d.%d or lower)
 - Rust toolchain presence (cargo on PATH)
 - Dependency manifest presence (%s)
 - Hook manifest presence (%s)

Provision - performs below actions, in order, aborting on the first failure:
 - Creates a virtual environment at %s
 - Upgrades the environment's package installer
 - Installs the packages declared in %s
 - Registers the pre-commit hook`,
		constants.SupportedInterpreterMajor, constants.SupportedInterpreterMinorMax,
		constants.RequirementsFile, constants.HookManifestFile,
		constants.EnvDir, constants.RequirementsFile)
}
