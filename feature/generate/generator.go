package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"i18next-typesafe/core/catalog"
	"i18next-typesafe/core/locale"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Result describes one generation.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Keys   int    `json:"keys"`
}

// Generator turns the canonical locale file into the key type declaration.
type Generator struct {
	fs     afero.Fs
	input  string
	output string
	logger *zap.Logger
}

// NewGenerator creates a generator reading input and writing output on fsys.
func NewGenerator(fsys afero.Fs, input, output string, logger *zap.Logger) *Generator {
	return &Generator{fs: fsys, input: input, output: output, logger: logger}
}

// Input returns the watched input path.
func (g *Generator) Input() string {
	return g.input
}

// Keys loads the input and returns its flattened keys.
func (g *Generator) Keys() (catalog.KeySet, error) {
	doc, err := locale.LoadFile(g.fs, g.input)
	if err != nil {
		return nil, err
	}
	return catalog.Flatten(doc), nil
}

// Artifact renders the declaration without writing it.
func (g *Generator) Artifact() (string, int, error) {
	keys, err := g.Keys()
	if err != nil {
		return "", 0, err
	}
	return Render(keys), keys.Len(), nil
}

// Generate renders the declaration and writes it, creating the output
// directory when needed.
func (g *Generator) Generate() (*Result, error) {
	text, n, err := g.Artifact()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", g.input, err)
	}

	if dir := filepath.Dir(g.output); dir != "" {
		if err := g.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(g.fs, g.output, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", g.output, err)
	}

	g.logger.Debug("Wrote key type", zap.String("output", g.output), zap.Int("keys", n))
	return &Result{Input: g.input, Output: g.output, Keys: n}, nil
}

// stamp identifies a version of the input file.
type stamp struct {
	exists  bool
	modTime int64
	size    int64
}

func (g *Generator) stat() stamp {
	info, err := g.fs.Stat(g.input)
	if err != nil {
		if !os.IsNotExist(err) {
			g.logger.Warn("Failed to stat input", zap.String("input", g.input), zap.Error(err))
		}
		return stamp{}
	}
	return stamp{exists: true, modTime: info.ModTime().UnixNano(), size: info.Size()}
}

// Watch generates once and then regenerates whenever the input's
// modification time changes, checking every tick. A missing input is fatal,
// both at start and when the file disappears later. Parse and write failures
// are logged and watching continues until ctx is done. onResult, when set,
// receives every successful generation.
func (g *Generator) Watch(ctx context.Context, ticks <-chan struct{}, onResult func(*Result)) error {
	last := g.stat()
	if err := g.regenerate(onResult); errors.Is(err, locale.ErrNotFound) {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			cur := g.stat()
			if cur == last {
				continue
			}
			if last.exists && !cur.exists {
				if _, err := g.fs.Stat(g.input); os.IsNotExist(err) {
					return fmt.Errorf("input %s was removed: %w", g.input, locale.ErrNotFound)
				}
			}
			last = cur
			g.logger.Info("Input changed, regenerating", zap.String("input", g.input))
			if err := g.regenerate(onResult); errors.Is(err, locale.ErrNotFound) {
				return err
			}
		}
	}
}

func (g *Generator) regenerate(onResult func(*Result)) error {
	res, err := g.Generate()
	if err != nil {
		g.logger.Error("Failed to generate key type", zap.Error(err))
		return err
	}
	g.logger.Info("Generated key type", zap.String("output", res.Output), zap.Int("keys", res.Keys))
	if onResult != nil {
		onResult(res)
	}
	return nil
}
