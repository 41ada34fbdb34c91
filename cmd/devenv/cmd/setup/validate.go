package setup

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/project-devenv/devenv/internal/pkg/bootstrap"
	"github.com/project-devenv/devenv/internal/pkg/cli/helpers"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/utils"
	"github.com/project-devenv/devenv/internal/pkg/validators"
	"github.com/project-devenv/devenv/internal/pkg/vars"
)

// validateCmd represents the validate subcommand of setup.
func validateCmd() *cobra.Command {
	var skipChecks []string
	var verbose bool
	var list bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validates the host prerequisites",
		Long: `Validate that all prerequisites are met before provisioning the environment.

The checks run in registration order and the interpreter check short-circuits
the rest. Nothing on disk is touched by validation.

Available checks to skip:
  interpreter  - Host Python version check
  toolchain    - Rust toolchain (cargo) presence check
  manifest     - Dependency manifest presence check
  hooks        - Hook manifest presence check`,
		Example: `  # Run all validation checks
  devenv setup validate

  # Skip the Rust toolchain check
  devenv setup validate --skip-validation toolchain

  # Skip multiple checks
  devenv setup validate --skip-validation toolchain,hooks

  # List the registered checks
  devenv setup validate --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if verbose {
				logger.SetVerbosity(logger.VerbosityLevelDebug)
			}

			if list {
				printRules()

				return nil
			}

			logger.Infof("Running setup validation...\n")

			skip := helpers.ParseSkipChecks(skipChecks)
			if len(skip) > 0 {
				logger.Warningln("Skipping validation checks: " + strings.Join(skipChecks, ", "))
			}

			factory := bootstrap.NewBootstrapFactory(vars.RuntimeFactory.GetRuntimeType())
			if err := factory.Validate(cmd.Context(), skip); err != nil {
				return fmt.Errorf("setup validation failed: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&skipChecks, "skip-validation", []string{},
		"Skip specific validation checks (comma-separated: interpreter,toolchain,manifest,hooks)")
	cmd.Flags().BoolVar(&list, "list", false, "List the registered validation checks")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}

func printRules() {
	printer := utils.NewTableWriter()
	printer.SetHeaders("NAME", "LEVEL", "DESCRIPTION")

	for _, rule := range validators.PythonRegistry.Rules() {
		printer.AppendRow(utils.CapitalizeAndFormat(rule.Name()), rule.Level().String(), rule.Description())
	}

	printer.CloseTableWriter()
}
