package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/flipword/api/internal/importer"
	"github.com/flipword/api/internal/model"
	"github.com/flipword/api/internal/validator"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "import",
		Short: "Load topics into the store",
	}
	command.AddCommand(newImportDocumentCommand())
	command.AddCommand(newImportWordsCommand())
	return command
}

func newImportDocumentCommand() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	command := &cobra.Command{
		Use:   "document",
		Short: "Replace the whole topics document with a JSON or YAML backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := importer.ReadDocument(file)
			if err != nil {
				return err
			}
			v, err := validator.New()
			if err != nil {
				return err
			}
			if err := v.PrepareDocument(&doc); err != nil {
				printProblems(cmd.ErrOrStderr(), err)
				return errors.New("document is invalid, nothing was written")
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] %d topics are valid\n", len(doc.Topics))
				return nil
			}

			ctx := context.Background()
			repo, closeStore, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := repo.WriteDocument(ctx, doc); err != nil {
				return fmt.Errorf("failed to save topics document: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Replaced topics document with %d topics\n", len(doc.Topics))
			return nil
		},
	}

	command.Flags().StringVar(&file, "file", "", "Path to a .json or .yaml topics document")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Validate only")
	_ = command.MarkFlagRequired("file")
	return command
}

func newImportWordsCommand() *cobra.Command {
	var (
		file       string
		slug       string
		title      string
		sheet      string
		skipHeader bool
		dryRun     bool
	)

	command := &cobra.Command{
		Use:   "words",
		Short: "Create or replace one topic from a .xlsx or .csv word list",
		Long: "Columns are en, zh, pos, enSent, zhSent. The topic with the same slug " +
			"is replaced; new words get fresh ids.",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := importer.ImportWords(importer.Config{
				FilePath:   file,
				SheetName:  sheet,
				SkipHeader: skipHeader,
			})
			if err != nil {
				return err
			}
			for _, msg := range result.Errors {
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "skipped %s\n", msg)
			}

			topic := model.Topic{Slug: slug, Title: title, Words: result.Words}
			v, err := validator.New()
			if err != nil {
				return err
			}
			if err := v.PrepareTopic(&topic); err != nil {
				printProblems(cmd.ErrOrStderr(), err)
				return errors.New("topic is invalid, nothing was written")
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "[dry-run] topic %q with %d words is valid (%d rows skipped)\n",
					topic.Slug, len(topic.Words), result.Skipped)
				return nil
			}

			ctx := context.Background()
			repo, closeStore, err := openRepository(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := repo.WriteTopic(ctx, topic); err != nil {
				return fmt.Errorf("failed to save topic %q: %w", topic.Slug, err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Saved topic %q with %d words (%d rows skipped)\n",
				topic.Slug, len(topic.Words), result.Skipped)
			return nil
		},
	}

	command.Flags().StringVar(&file, "file", "", "Path to a .xlsx or .csv word list")
	command.Flags().StringVar(&slug, "slug", "", "Topic slug")
	command.Flags().StringVar(&title, "title", "", "Topic title")
	command.Flags().StringVar(&sheet, "sheet", "", "Sheet name for .xlsx files (default: first sheet)")
	command.Flags().BoolVar(&skipHeader, "skip-header", false, "Ignore the first row")
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Validate only")
	_ = command.MarkFlagRequired("file")
	_ = command.MarkFlagRequired("slug")
	_ = command.MarkFlagRequired("title")
	return command
}

func printProblems(w io.Writer, err error) {
	red := color.New(color.FgRed)
	var verr *validator.Error
	if !errors.As(err, &verr) {
		red.Fprintln(w, err)
		return
	}
	for _, p := range verr.Problems {
		red.Fprintln(w, " -", p)
	}
}
