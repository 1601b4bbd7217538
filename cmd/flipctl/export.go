package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/flipword/api/internal/exporter"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var (
		format string
		out    string
	)

	command := &cobra.Command{
		Use:   "export",
		Short: "Write the stored topics document to stdout or a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := exporter.ParseFormat(format)
			if err != nil {
				return err
			}

			ctx := context.Background()
			repo, closeStore, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			doc, err := repo.Read(ctx)
			if err != nil {
				return fmt.Errorf("failed to load topics: %w", err)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				file, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer file.Close()
				w = file
			}

			if err := exporter.Write(w, f, doc); err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			if out != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported topics to %s\n", out)
			}
			return nil
		},
	}

	command.Flags().StringVarP(&format, "format", "f", exporter.FormatJSON, "Output format: json, yaml, csv or md")
	command.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return command
}
