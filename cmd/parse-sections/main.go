package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/htmlextract/internal/config"
	"github.com/dgallion1/htmlextract/internal/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	cfg := config.Load()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	in := cfg.SectionsInput
	out := cfg.SectionsOutput
	var nested bool

	cmd := &cobra.Command{
		Use:           "parse-sections",
		Short:         "Split an HTML document into heading sections and write them as JSON or YAML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := pipeline.NewSectionParser(log).Run(in, out, pipeline.SectionOptions{Nested: nested})
			switch {
			case err == nil:
				fmt.Fprintf(cmd.OutOrStdout(), "Successfully parsed %d sections!\n", res.Sections)
			case errors.Is(err, pipeline.ErrNoSections):
				// Not a failure: warn and leave the output untouched.
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: No content sections found in the HTML file!")
				return nil
			case pipeline.IsNotFound(err):
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: HTML file not found! Please check the file path.")
			default:
				fmt.Fprintf(cmd.ErrOrStderr(), "Error during HTML parsing: %v\n", err)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", in, "input document (.html, .htm, .md)")
	cmd.Flags().StringVarP(&out, "out", "o", out, "output file (.json, .yaml, .yml), overwritten if present")
	cmd.Flags().BoolVar(&nested, "nested", false, "write a heading outline instead of a flat list")
	return cmd
}
