package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/tm/internal/cache"
	"github.com/gorewood/tm/internal/engine"
)

// paletteEntry is one row of palette output.
type paletteEntry struct {
	Index      int    `json:"index"`
	Color      string `json:"color"`
	Resolvable bool   `json:"resolvable"`
}

// newPaletteCmd creates the palette command.
func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [file]",
		Short: "Show the colors of a palette with their indices",
		Long: `Show every entry of a palette file with the placeholder that refers to it.

Entries past X15 are listed but can never be referenced from a template.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPalette(cmd, path)
		},
	}
}

func runPalette(cmd *cobra.Command, path string) error {
	printer := newPrinter(cmd)

	if path == "" {
		_, file, err := resolveSettings(nil)
		if err != nil {
			return reportErr(printer, err)
		}
		path = file.Palette
	}

	pal, err := cache.LoadPalette(path)
	if err != nil {
		return reportErr(printer, err)
	}

	entries := make([]paletteEntry, 0, pal.Len())
	for i, color := range pal.Colors() {
		entries = append(entries, paletteEntry{Index: i, Color: color, Resolvable: i <= engine.MaxIndex})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"palette": path, "colors": entries})
	}

	for _, entry := range entries {
		note := ""
		if !entry.Resolvable {
			note = "  (unused)"
		}
		printer.Print("X%-3d %s %s%s\n", entry.Index, printer.Swatch(entry.Color), entry.Color, note)
	}
	if pal.Len() <= engine.MaxIndex {
		printer.Warn("palette has %d entries; %s", pal.Len(), missingRange(pal.Len()))
	}
	return nil
}

// missingRange describes the placeholders a palette of n entries cannot
// resolve. n must be at most engine.MaxIndex.
func missingRange(n int) string {
	if n == engine.MaxIndex {
		return fmt.Sprintf("templates using X%d will fail", n)
	}
	return fmt.Sprintf("templates using X%d..X%d will fail", n, engine.MaxIndex)
}
