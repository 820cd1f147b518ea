package cache

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gorewood/tm/internal/engine"
	"github.com/gorewood/tm/internal/output"
	"github.com/gorewood/tm/internal/palette"
)

// outputPerm is the mode of rendered files.
const outputPerm os.FileMode = 0o644

// Template is one template file and where its rendering goes.
type Template struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Output string `json:"output"`
}

// Result summarizes a build.
type Result struct {
	Palette  string     `json:"palette"`
	CacheDir string     `json:"cache_dir"`
	Written  []Template `json:"written"`
}

// Options configures a Builder.
type Options struct {
	TemplateDir string
	CacheDir    string
	Filter      Filter

	// Progress is called before each template is rendered.
	Progress func(Template)

	// Logger receives debug events (skipped entries, cache reset).
	// Nil discards them.
	Logger *slog.Logger
}

// Builder renders a template directory into a cache directory.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

// NewBuilder creates a Builder. Filter patterns are validated here so a bad
// pattern fails before anything is touched.
func NewBuilder(opts Options) (*Builder, error) {
	if err := opts.Filter.Validate(); err != nil {
		return nil, output.NewUsageError(err.Error())
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Builder{opts: opts, logger: logger}, nil
}

// Templates lists the templates a build would render, in name order.
func (b *Builder) Templates() ([]Template, error) {
	dir := b.opts.TemplateDir
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		msg := "template directory " + dir + " does not exist; create it and add templates"
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, output.NewErrorWithCause(output.ExitTemplateDir, msg, err)
		}
		return nil, output.NewError(output.ExitTemplateDir, msg)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, output.NewErrorWithCause(output.ExitTemplateDir, "reading template directory "+dir, err)
	}

	var templates []Template
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasPrefix(name, "."):
			b.logger.Debug("skipping dotfile", slog.String("name", name))
			continue
		case entry.IsDir():
			b.logger.Debug("skipping directory", slog.String("name", name))
			continue
		case !b.opts.Filter.Match(name):
			b.logger.Debug("filtered out", slog.String("name", name))
			continue
		}

		templates = append(templates, Template{
			Name:   name,
			Source: filepath.Join(dir, name),
			Output: filepath.Join(b.opts.CacheDir, name),
		})
	}
	return templates, nil
}

// Build loads the palette, resets the cache directory and renders every
// template into it. The palette is loaded before the cache is cleared, so
// an unreadable palette leaves the previous outputs in place.
func (b *Builder) Build(ctx context.Context, palettePath string) (*Result, error) {
	templates, err := b.Templates()
	if err != nil {
		return nil, err
	}

	pal, err := LoadPalette(palettePath)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("resetting cache", slog.String("dir", b.opts.CacheDir))
	if err := Reset(b.opts.CacheDir, b.opts.TemplateDir); err != nil {
		return nil, err
	}

	result := &Result{
		Palette:  palettePath,
		CacheDir: b.opts.CacheDir,
		Written:  make([]Template, 0, len(templates)),
	}
	for _, tmpl := range templates {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if b.opts.Progress != nil {
			b.opts.Progress(tmpl)
		}

		if err := b.renderTo(tmpl, pal); err != nil {
			return result, err
		}
		result.Written = append(result.Written, tmpl)
		b.logger.Debug("wrote template", slog.String("output", tmpl.Output))
	}
	return result, nil
}

func (b *Builder) renderTo(tmpl Template, pal engine.Palette) error {
	rendered, err := RenderFile(tmpl.Source, pal)
	if err != nil {
		return err
	}
	if err := writeFile(tmpl.Output, []byte(rendered), outputPerm); err != nil {
		return output.NewErrorWithCause(output.ExitWriteError, "writing "+tmpl.Output, err)
	}
	return nil
}

// LoadPalette loads a palette, mapping failure to the palette exit code.
func LoadPalette(path string) (palette.Palette, error) {
	if path == "" {
		return palette.Palette{}, output.NewUsageError("no palette file given")
	}
	pal, err := palette.Load(path)
	if err != nil {
		return palette.Palette{}, output.NewErrorWithCause(output.ExitPaletteError, "cannot load palette", err)
	}
	return pal, nil
}

// RenderFile reads the template at path and substitutes pal into it.
func RenderFile(path string, pal engine.Palette) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", output.NewErrorWithCause(output.ExitTemplateError, "reading template "+path, err)
	}
	return RenderText(filepath.Base(path), string(data), pal)
}

// RenderText substitutes pal into text. name labels errors.
func RenderText(name, text string, pal engine.Palette) (string, error) {
	rendered, err := engine.Document(text, pal)
	if err != nil {
		var indexErr *engine.IndexError
		if errors.As(err, &indexErr) {
			return "", output.NewErrorWithCause(output.ExitPaletteRange, name, err)
		}
		return "", output.NewErrorWithCause(output.ExitTemplateError, name, err)
	}
	return rendered, nil
}
