package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gorewood/tm/internal/cache"
	"github.com/gorewood/tm/internal/config"
	"github.com/gorewood/tm/internal/output"
)

// applyFlags holds the flags shared by the root and apply commands.
type applyFlags struct {
	templates string
	cache     string
	include   []string
	exclude   []string
}

// addApplyFlags registers the directory and filter flags on cmd.
func addApplyFlags(cmd *cobra.Command, flags *applyFlags) {
	cmd.Flags().StringVar(&flags.templates, "templates", "", "Template directory (overrides $TM_TEMPLATE_DIR)")
	cmd.Flags().StringVar(&flags.cache, "cache", "", "Cache directory (overrides $TM_CACHE_DIR)")
	cmd.Flags().StringSliceVar(&flags.include, "include", nil, "Only render templates matching these globs")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "Skip templates matching these globs")
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return boolFlag(cmd, "json")
}

// isVerbose reads the --verbose persistent flag from the command hierarchy.
func isVerbose(cmd *cobra.Command) bool {
	return boolFlag(cmd, "verbose")
}

func boolFlag(cmd *cobra.Command, name string) bool {
	return stringFlag(cmd, name) == "true"
}

// stringFlag looks a flag up on cmd, then on the root's persistent flags.
func stringFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// newPrinter creates a Printer honoring --json and --color. Human-mode
// errors and diagnostics go to the command's stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	mode, err := output.ParseColorMode(stringFlag(cmd, "color"))
	if err != nil {
		mode = output.ColorAuto
	}
	return output.NewPrinter(out, isJSONMode(cmd), mode.Styled(output.IsTTY(out))).
		WithStderr(cmd.ErrOrStderr())
}

// newLogger returns a debug logger on stderr when --debug is set, else nil.
func newLogger(cmd *cobra.Command) *slog.Logger {
	if !boolFlag(cmd, "debug") {
		return nil
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// resolveSettings resolves directories from the environment and config file,
// then applies command-line overrides.
func resolveSettings(flags *applyFlags) (config.Paths, *config.File, error) {
	paths, file, err := config.Resolve()
	if err != nil {
		return config.Paths{}, nil, output.NewErrorWithCause(output.ExitUsageError, "loading configuration", err)
	}

	if flags != nil {
		if flags.templates != "" {
			paths.TemplateDir = flags.templates
		}
		if flags.cache != "" {
			paths.CacheDir = flags.cache
		}
	}
	return paths, file, nil
}

// resolveFilter combines config file patterns with flag overrides. A flag
// replaces the file's list rather than adding to it.
func resolveFilter(file *config.File, flags *applyFlags) cache.Filter {
	filter := cache.Filter{Include: file.Include, Exclude: file.Exclude}
	if flags == nil {
		return filter
	}
	if len(flags.include) > 0 {
		filter.Include = flags.include
	}
	if len(flags.exclude) > 0 {
		filter.Exclude = flags.exclude
	}
	return filter
}

// newBuilder wires a cache builder from resolved settings.
func newBuilder(cmd *cobra.Command, printer *output.Printer, flags *applyFlags) (*cache.Builder, config.Paths, *config.File, error) {
	paths, file, err := resolveSettings(flags)
	if err != nil {
		return nil, config.Paths{}, nil, err
	}

	opts := cache.Options{
		TemplateDir: paths.TemplateDir,
		CacheDir:    paths.CacheDir,
		Filter:      resolveFilter(file, flags),
		Logger:      newLogger(cmd),
	}
	if isVerbose(cmd) {
		opts.Progress = func(tmpl cache.Template) {
			printer.Stderr("creating %s from %s\n", tmpl.Output, tmpl.Source)
		}
	}

	builder, err := cache.NewBuilder(opts)
	if err != nil {
		return nil, config.Paths{}, nil, err
	}
	return builder, paths, file, nil
}

// reportErr prints err through the printer and returns it.
func reportErr(printer *output.Printer, err error) error {
	printer.Error(err)
	return err
}
