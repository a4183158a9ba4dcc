package main

import (
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
	in := cfg.TextInput
	out := cfg.TextOutput

	cmd := &cobra.Command{
		Use:           "extract-text",
		Short:         "Strip markup from an HTML document and write its plain text",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := pipeline.NewTextExtractor(log).Run(in, out)
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Content extracted successfully!")
			case pipeline.IsNotFound(err):
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: Input HTML file not found!")
			default:
				fmt.Fprintf(cmd.ErrOrStderr(), "Error during content extraction: %v\n", err)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", in, "input document (.html, .htm, .md)")
	cmd.Flags().StringVarP(&out, "out", "o", out, "output text file, overwritten if present")
	return cmd
}
