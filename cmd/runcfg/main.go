package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"runcfg/internal/cli"
	"runcfg/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "runcfg",
		Short:         "Test run configuration resolver",
		Long:          `Select the run or debug configuration used to execute tests, from the settings of a workspace folder or its deprecated launch.test.json file, and run the tests with it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create and register all commands
	cmds := commands.NewCommands()
	cmds.Register(rootCmd, &flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
