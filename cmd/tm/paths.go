package main

import (
	"github.com/spf13/cobra"
)

// newPathsCmd creates the paths command.
func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show the resolved config, template and cache directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			paths, file, err := resolveSettings(nil)
			if err != nil {
				return reportErr(printer, err)
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					"config_dir":   paths.ConfigDir,
					"config_file":  paths.ConfigFile,
					"template_dir": paths.TemplateDir,
					"cache_dir":    paths.CacheDir,
					"palette":      file.Palette,
				})
			}

			configFile := paths.ConfigFile
			if configFile == "" {
				configFile = "(none)"
			}
			printer.KeyValue("config", paths.ConfigDir)
			printer.KeyValue("config file", configFile)
			printer.KeyValue("templates", paths.TemplateDir)
			printer.KeyValue("cache", paths.CacheDir)
			if file.Palette != "" {
				printer.KeyValue("palette", file.Palette)
			}
			return nil
		},
	}
}
