package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "flipctl",
		Short:         "Manage flipword topics and admin credentials",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "Path to a YAML config file")

	rootCommand.AddCommand(newHashPasswordCommand())
	rootCommand.AddCommand(newExportCommand())
	rootCommand.AddCommand(newImportCommand())
	return rootCommand
}

func main() {
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
