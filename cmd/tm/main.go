// Package main provides the entry point for the tm CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/tm/internal/config"
	"github.com/gorewood/tm/internal/envfile"
	"github.com/gorewood/tm/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

// run executes the command tree and maps the error to an exit code. It is
// the only place a failure turns into process termination.
func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError prints errors the command did not already report. Commands
// report their own *output.ExitError through the Printer.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the tm CLI.
func newRootCmd() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "tm [palette]",
		Short: "Render color-scheme templates from a palette",
		Long: `tm renders color-scheme templates from a palette file.

A palette is a plain text file with one color per line; line N is color N.
Templates are plain files in the template directory where X0 .. X15 stand
for palette colors. Each template is rendered into the cache directory under
the same name:

  tm ~/colors/viking        # same as: tm apply ~/colors/viking

Templates are read from $TM_TEMPLATE_DIR, or $XDG_CONFIG_HOME/tm, or
~/.config/tm. Outputs go to $TM_CACHE_DIR, or $XDG_CACHE_HOME/tm, or
~/.cache/tm. The cache directory is cleared on every run.`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runApply(cmd, args[0], flags)
			}
			if isJSONMode(cmd) {
				printer := newPrinter(cmd)
				err := output.NewUsageError("no palette or command given. Run 'tm --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load the env file from the config directory. Real environment
	// variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.ParseColorMode(stringFlag(cmd, "color")); err != nil {
			newPrinter(cmd).Error(err)
			return err
		}
		loadEnvFile()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Print a line for each template as it is rendered")
	cmd.PersistentFlags().Bool("debug", false, "Log build events to stderr")
	addApplyFlags(cmd, flags)

	lipgloss.SetHasDarkBackground(true)

	addCommands(cmd)

	return cmd
}

// loadEnvFile applies <config dir>/.env, ignoring a missing file.
func loadEnvFile() {
	if dir := config.Dir(); dir != "" {
		_, _ = envfile.Load(filepath.Join(dir, envfile.FileName))
	}
}

// addCommands adds all subcommands.
func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newApplyCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPaletteCmd())
	cmd.AddCommand(newPathsCmd())
	cmd.AddCommand(newServeCmd())
}
