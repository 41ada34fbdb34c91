package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/project-devenv/devenv/cmd/devenv/cmd/setup"
	"github.com/project-devenv/devenv/cmd/devenv/cmd/version"
	"github.com/project-devenv/devenv/internal/pkg/logger"
	"github.com/project-devenv/devenv/internal/pkg/runtime"
	"github.com/project-devenv/devenv/internal/pkg/runtime/types"
	"github.com/project-devenv/devenv/internal/pkg/vars"
)

var runtimeFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "devenv",
	Short:   "Development environment bootstrapper",
	Long:    `A CLI tool that provisions an isolated Python development environment for a source checkout.`,
	Version: version.GetVersion(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if runtimeFlag == "" {
			return nil
		}

		rt := types.RuntimeType(strings.ToLower(runtimeFlag))
		if !rt.Valid() {
			return fmt.Errorf("unsupported runtime type: %s", runtimeFlag)
		}
		vars.RuntimeFactory = runtime.NewRuntimeFactory(rt)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Prerequisite failures exit with 1; provisioning failures propagate the
// external tool's exit code when it is known.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Flush()

		var toolErr *types.ToolError
		if errors.As(err, &toolErr) && toolErr.ExitCode > 0 {
			os.Exit(toolErr.ExitCode)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&runtimeFlag, "runtime", "",
		"environment toolchain to use (pip, uv); defaults to $DEVENV_RUNTIME or pip")

	RootCmd.AddCommand(version.VersionCmd)
	RootCmd.AddCommand(setup.SetupCmd())
}
