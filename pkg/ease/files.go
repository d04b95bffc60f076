package ease

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"
)

const (
	TableFileName      = "eases.json"
	AnimationsFileName = "animations.css"
	EasefileName       = "Easefile"
)

func ReadTable(fs billy.Basic, path string) (Table, error) {
	buf, err := readFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read eases: %w", err)
	}
	table, err := ParseTable(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Easefile configures the build command. Zero values mean "use the flag default".
type Easefile struct {
	SourceDirectory string `yaml:"source_directory,omitempty"`
	OutputDirectory string `yaml:"output_directory,omitempty"`
	ModuleFile      string `yaml:"module_file,omitempty"`
	SHA256          bool   `yaml:"sha256,omitempty"`
}

func ReadEasefile(fs billy.Basic, path string) (Easefile, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Easefile{}, fmt.Errorf("failed to open Easefile: %w", err)
	}
	defer closeAndIgnoreError(f)

	var easefile Easefile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	err = dec.Decode(&easefile)
	if err != nil && !errors.Is(err, io.EOF) {
		return Easefile{}, fmt.Errorf("failed to parse Easefile: %w", err)
	}
	return easefile, nil
}

// ReadOptionalEasefile returns the zero Easefile when path does not exist.
func ReadOptionalEasefile(fsys billy.Basic, path string) (Easefile, error) {
	easefile, err := ReadEasefile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Easefile{}, nil
	}
	return easefile, err
}

func readFile(fs billy.Basic, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer closeAndIgnoreError(f)
	return io.ReadAll(f)
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
