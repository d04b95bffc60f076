package builder

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/pivotal-cf/css-ease-presets/pkg/ease"
)

const (
	VariablesFileName     = "ease-vars.css"
	ClassesFileName       = "ease-classes.css"
	DefaultModuleFileName = "index.mjs"
)

type GenerateInput struct {
	SourceDirectory string
	OutputDirectory string
	ModuleFile      string
	SHA256          bool
}

type Generator struct {
	filesystem billy.Filesystem
	logger     logger
}

func NewGenerator(filesystem billy.Filesystem, logger logger) Generator {
	return Generator{
		filesystem: filesystem,
		logger:     logger,
	}
}

type artifact struct {
	name  string
	write func(path string) error
}

// Generate loads eases.json from the source directory and writes every
// artifact to the output directory in a fixed order. The table is read before
// the output directory is created so a missing or malformed table leaves the
// output directory as it was.
func (g Generator) Generate(input GenerateInput) ([]string, error) {
	table, err := ease.ReadTable(g.filesystem, g.filesystem.Join(input.SourceDirectory, ease.TableFileName))
	if err != nil {
		return nil, err
	}

	err = g.filesystem.MkdirAll(input.OutputDirectory, 0o755)
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	moduleFile := input.ModuleFile
	if moduleFile == "" {
		moduleFile = DefaultModuleFileName
	}

	artifacts := []artifact{
		{name: VariablesFileName, write: g.rendered(table, RenderVariables)},
		{name: ClassesFileName, write: g.rendered(table, RenderClasses)},
		{name: ease.AnimationsFileName, write: g.copied(g.filesystem.Join(input.SourceDirectory, ease.AnimationsFileName))},
		{name: ease.TableFileName, write: g.rendered(table, RenderJSON)},
		{name: moduleFile, write: g.rendered(table, RenderModule)},
	}

	var written []string
	for _, a := range artifacts {
		path := g.filesystem.Join(input.OutputDirectory, a.name)
		err := a.write(path)
		if err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	if input.SHA256 {
		checksummer := NewChecksummer(g.filesystem, g.logger)
		for _, path := range written {
			err := checksummer.Sum(path)
			if err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

func (g Generator) rendered(table ease.Table, render func(ease.Table) ([]byte, error)) func(string) error {
	return func(path string) error {
		buf, err := render(table)
		if err != nil {
			return err
		}
		return util.WriteFile(g.filesystem, path, buf, 0o644)
	}
}

func (g Generator) copied(source string) func(string) error {
	return func(path string) error {
		in, err := g.filesystem.Open(source)
		if err != nil {
			return err
		}
		defer closeAndIgnoreError(in)

		// building in place; truncating the destination would empty the source
		if filepath.Clean(source) == filepath.Clean(path) {
			return nil
		}

		out, err := g.filesystem.Create(path)
		if err != nil {
			return err
		}

		_, err = io.Copy(out, in)
		if err != nil {
			closeAndIgnoreError(out)
			return err
		}
		return out.Close()
	}
}
