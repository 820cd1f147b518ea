package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/tm/internal/cache"
	"github.com/gorewood/tm/internal/engine"
)

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Template string `json:"template"          jsonschema:"template text containing X0..X15 placeholders"`
	Palette  string `json:"palette,omitempty" jsonschema:"palette file path (defaults to the configured palette)"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	Text string `json:"text" jsonschema:"rendered text, one newline after every line"`
}

func handleRender(env Env) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		pal, err := cache.LoadPalette(env.palettePath(input.Palette))
		if err != nil {
			return nil, RenderOutput{}, err
		}
		text, err := cache.RenderText("template", input.Template, pal)
		if err != nil {
			return nil, RenderOutput{}, err
		}
		return nil, RenderOutput{Text: text}, nil
	}
}

// --- Apply tool ---

// ApplyInput is the input for the apply tool.
type ApplyInput struct {
	Palette string   `json:"palette,omitempty" jsonschema:"palette file path (defaults to the configured palette)"`
	Include []string `json:"include,omitempty" jsonschema:"only render templates matching these globs"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"skip templates matching these globs"`
}

// ApplyOutput is the output for the apply tool.
type ApplyOutput struct {
	CacheDir string   `json:"cache_dir" jsonschema:"directory the outputs were written to"`
	Written  []string `json:"written"   jsonschema:"output file paths in render order"`
}

func handleApply(env Env) mcp.ToolHandlerFor[ApplyInput, ApplyOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ApplyInput) (*mcp.CallToolResult, ApplyOutput, error) {
		builder, err := env.builder(input.Include, input.Exclude)
		if err != nil {
			return nil, ApplyOutput{}, err
		}

		result, err := builder.Build(ctx, env.palettePath(input.Palette))
		if err != nil {
			return nil, ApplyOutput{}, err
		}

		out := ApplyOutput{CacheDir: result.CacheDir, Written: make([]string, 0, len(result.Written))}
		for _, tmpl := range result.Written {
			out.Written = append(out.Written, tmpl.Output)
		}
		return nil, out, nil
	}
}

// --- Palette tool ---

// PaletteInput is the input for the palette tool.
type PaletteInput struct {
	Path string `json:"path,omitempty" jsonschema:"palette file path (defaults to the configured palette)"`
}

// PaletteColor is one indexed palette entry.
type PaletteColor struct {
	Index      int    `json:"index"      jsonschema:"placeholder index"`
	Color      string `json:"color"      jsonschema:"color value, verbatim"`
	Resolvable bool   `json:"resolvable" jsonschema:"whether templates can reference this index"`
}

// PaletteOutput is the output for the palette tool.
type PaletteOutput struct {
	Count  int            `json:"count"  jsonschema:"number of entries"`
	Colors []PaletteColor `json:"colors" jsonschema:"entries in file order"`
}

func handlePalette(env Env) mcp.ToolHandlerFor[PaletteInput, PaletteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input PaletteInput) (*mcp.CallToolResult, PaletteOutput, error) {
		pal, err := cache.LoadPalette(env.palettePath(input.Path))
		if err != nil {
			return nil, PaletteOutput{}, err
		}

		out := PaletteOutput{Count: pal.Len(), Colors: make([]PaletteColor, 0, pal.Len())}
		for i, color := range pal.Colors() {
			out.Colors = append(out.Colors, PaletteColor{
				Index:      i,
				Color:      color,
				Resolvable: i <= engine.MaxIndex,
			})
		}
		return nil, out, nil
	}
}

// --- Templates tool ---

// TemplatesInput is the input for the templates tool (no parameters needed).
type TemplatesInput struct{}

// TemplatesOutput is the output for the templates tool.
type TemplatesOutput struct {
	TemplateDir string           `json:"template_dir" jsonschema:"directory templates are read from"`
	CacheDir    string           `json:"cache_dir"    jsonschema:"directory outputs are written to"`
	Templates   []cache.Template `json:"templates"    jsonschema:"templates in render order"`
}

func handleTemplates(env Env) mcp.ToolHandlerFor[TemplatesInput, TemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ TemplatesInput) (*mcp.CallToolResult, TemplatesOutput, error) {
		builder, err := env.builder(nil, nil)
		if err != nil {
			return nil, TemplatesOutput{}, err
		}
		templates, err := builder.Templates()
		if err != nil {
			return nil, TemplatesOutput{}, err
		}
		return nil, TemplatesOutput{
			TemplateDir: env.Paths.TemplateDir,
			CacheDir:    env.Paths.CacheDir,
			Templates:   templates,
		}, nil
	}
}

// --- Helpers ---

func (e Env) palettePath(requested string) string {
	if requested != "" {
		return requested
	}
	return e.DefaultPalette
}

// builder creates a cache builder, replacing the configured filter with any
// patterns the caller passed.
func (e Env) builder(include, exclude []string) (*cache.Builder, error) {
	filter := e.Filter
	if len(include) > 0 {
		filter.Include = include
	}
	if len(exclude) > 0 {
		filter.Exclude = exclude
	}

	builder, err := cache.NewBuilder(cache.Options{
		TemplateDir: e.Paths.TemplateDir,
		CacheDir:    e.Paths.CacheDir,
		Filter:      filter,
	})
	if err != nil {
		return nil, fmt.Errorf("configuring build: %w", err)
	}
	return builder, nil
}
