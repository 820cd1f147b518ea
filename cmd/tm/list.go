package main

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and where their output goes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	addApplyFlags(cmd, flags)
	return cmd
}

func runList(cmd *cobra.Command, flags *applyFlags) error {
	printer := newPrinter(cmd)

	builder, paths, _, err := newBuilder(cmd, printer, flags)
	if err != nil {
		return reportErr(printer, err)
	}

	templates, err := builder.Templates()
	if err != nil {
		return reportErr(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"template_dir": paths.TemplateDir,
			"cache_dir":    paths.CacheDir,
			"templates":    templates,
		})
	}

	if len(templates) == 0 {
		printer.Stderr("no templates in %s\n", paths.TemplateDir)
		return nil
	}

	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		rows = append(rows, []string{tmpl.Name, tmpl.Output})
	}
	printer.Table([]string{"TEMPLATE", "OUTPUT"}, rows)
	return nil
}
