package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tm/internal/output"
)

// newApplyCmd creates the apply command.
func newApplyCmd() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply [palette]",
		Short: "Render every template into the cache directory",
		Long: `Render every template into the cache directory using a palette.

The cache directory is cleared first. Templates are rendered one at a time in
name order; subdirectories and dotfiles are skipped. Without a palette
argument the palette key of the config file is used.

Examples:
  tm apply ~/colors/viking                  # render everything
  tm apply ~/colors/viking -v               # print each template as it is rendered
  tm apply ~/colors/viking --include '*.h'  # only C headers
  tm apply --json                           # palette from config, JSON summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			palettePath := ""
			if len(args) == 1 {
				palettePath = args[0]
			}
			return runApply(cmd, palettePath, flags)
		},
	}

	addApplyFlags(cmd, flags)
	return cmd
}

// runApply executes a full build.
func runApply(cmd *cobra.Command, palettePath string, flags *applyFlags) error {
	printer := newPrinter(cmd)

	builder, _, file, err := newBuilder(cmd, printer, flags)
	if err != nil {
		return reportErr(printer, err)
	}

	if palettePath == "" {
		palettePath = file.Palette
	}
	if palettePath == "" {
		return reportErr(printer, output.NewUsageError("no palette given; pass a palette file or set 'palette' in the config file"))
	}

	result, err := builder.Build(cmd.Context(), palettePath)
	if err != nil {
		return reportErr(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}
	if isVerbose(cmd) {
		printer.Stderr("rendered %d templates into %s\n", len(result.Written), result.CacheDir)
	}
	return nil
}
