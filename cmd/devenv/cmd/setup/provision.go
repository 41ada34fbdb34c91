package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/project-devenv/devenv/internal/pkg/bootstrap"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
	"github.com/project-devenv/devenv/internal/pkg/vars"
)

// provisionCmd represents the provision subcommand of setup. Unlike the
// parent command it does not re-run the gates.
func provisionCmd() *cobra.Command {
	var recreate bool
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provisions the development environment",
		Long:  `Provision the virtual environment, install declared dependencies, and register the pre-commit hook.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Once precheck passes, silence usage for any *later* internal errors.
			cmd.SilenceUsage = true

			logger.Infoln("Running setup provisioning...")

			factory := bootstrap.NewBootstrapFactory(vars.RuntimeFactory.GetRuntimeType())
			bootstrapInstance, err := factory.Create()
			if err != nil {
				return fmt.Errorf("failed to create bootstrap instance: %w", err)
			}

			opts := types.ProvisionOptions{
				Recreate:  recreate,
				AssumeYes: assumeYes,
			}
			if err := bootstrapInstance.Configure(cmd.Context(), opts); err != nil {
				return fmt.Errorf("setup provisioning failed: %w", err)
			}

			logger.Infof("Setup provisioning completed successfully.")

			return nil
		},
	}

	cmd.Flags().BoolVar(&recreate, "recreate", false, "Remove an existing environment before provisioning")
	cmd.Flags().BoolVarP(&assumeYes, "assume-yes", "y", false, "Reuse an existing environment without prompting")

	return cmd
}
