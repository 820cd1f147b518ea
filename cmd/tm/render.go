package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/tm/internal/cache"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "render <template> [palette]",
		Short: "Print one rendered template to stdout",
		Long: `Render a single template and print the result without touching the cache.

The template may be a path, or the name of a file in the template directory.

Examples:
  tm render colors.h ~/colors/viking
  tm render ./kitty.conf ~/colors/viking > /tmp/kitty.conf`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			palettePath := ""
			if len(args) == 2 {
				palettePath = args[1]
			}
			return runRender(cmd, args[0], palettePath, flags)
		},
	}

	cmd.Flags().StringVar(&flags.templates, "templates", "", "Template directory (overrides $TM_TEMPLATE_DIR)")
	return cmd
}

func runRender(cmd *cobra.Command, templateArg, palettePath string, flags *applyFlags) error {
	printer := newPrinter(cmd)

	paths, file, err := resolveSettings(flags)
	if err != nil {
		return reportErr(printer, err)
	}
	if palettePath == "" {
		palettePath = file.Palette
	}

	pal, err := cache.LoadPalette(palettePath)
	if err != nil {
		return reportErr(printer, err)
	}

	templatePath := locateTemplate(templateArg, paths.TemplateDir)
	if isVerbose(cmd) {
		printer.Stderr("rendering %s\n", templatePath)
	}
	text, err := cache.RenderFile(templatePath, pal)
	if err != nil {
		return reportErr(printer, err)
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"template": templatePath, "text": text})
	}
	printer.Print("%s", text)
	return nil
}

// locateTemplate returns arg if it names an existing file, otherwise the
// file of that name in the template directory when arg is a bare name.
func locateTemplate(arg, templateDir string) string {
	if _, err := os.Stat(arg); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return arg
	}
	if filepath.Base(arg) != arg || templateDir == "" {
		return arg
	}
	return filepath.Join(templateDir, arg)
}
