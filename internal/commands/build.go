package commands

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/pivotal-cf/jhanda"

	"github.com/pivotal-cf/css-ease-presets/internal/builder"
	"github.com/pivotal-cf/css-ease-presets/internal/commands/flags"
	"github.com/pivotal-cf/css-ease-presets/pkg/ease"
)

type Build struct {
	outLogger        *log.Logger
	filesystem       billy.Filesystem
	workingDirectory string

	Options struct {
		flags.Standard

		SourceDirectory string `short:"s"  long:"source-directory"  default:"src"        description:"path to the directory containing eases.json and animations.css"`
		OutputDirectory string `short:"o"  long:"output-directory"  default:"dist"       description:"path to the directory the artifacts are written to"`
		ModuleFile      string `short:"m"  long:"module-file"       default:"index.mjs"  description:"name of the generated ES module"`
		SHA256          bool   `           long:"sha256"                                 description:"writes a SHA256 checksum file beside each artifact"`
	}
}

// NewBuild returns the build command. Relative paths are joined to
// workingDirectory before they reach filesystem; an empty workingDirectory
// passes them through unchanged.
func NewBuild(outLogger *log.Logger, filesystem billy.Filesystem, workingDirectory string) *Build {
	return &Build{
		outLogger:        outLogger,
		filesystem:       filesystem,
		workingDirectory: workingDirectory,
	}
}

func (b *Build) Execute(args []string) error {
	err := b.loadOptions(args)
	if err != nil {
		return err
	}

	generator := builder.NewGenerator(b.filesystem, b.outLogger)
	_, err = generator.Generate(builder.GenerateInput{
		SourceDirectory: b.path(b.Options.SourceDirectory),
		OutputDirectory: b.path(b.Options.OutputDirectory),
		ModuleFile:      b.Options.ModuleFile,
		SHA256:          b.Options.SHA256,
	})
	if err != nil {
		return err
	}

	b.outLogger.Printf("Built css-ease-presets → %s/\n", strings.TrimSuffix(b.Options.OutputDirectory, "/"))

	return nil
}

// loadOptions parses args then fills every option not set on the command line
// from the Easefile.
func (b *Build) loadOptions(args []string) error {
	_, err := jhanda.Parse(&b.Options, args)
	if err != nil {
		return err
	}

	var easefile ease.Easefile
	if flags.IsSet("ef", "easefile", args) {
		easefile, err = ease.ReadEasefile(b.filesystem, b.path(b.Options.Easefile))
	} else {
		easefile, err = ease.ReadOptionalEasefile(b.filesystem, b.path(b.Options.Easefile))
	}
	if err != nil {
		return err
	}

	prefix := b.Options.EasefilePathPrefix()
	resolve := func(p string) string {
		if prefix == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(prefix, p)
	}

	if easefile.SourceDirectory != "" && !flags.IsSet("s", "source-directory", args) {
		b.Options.SourceDirectory = resolve(easefile.SourceDirectory)
	}
	if easefile.OutputDirectory != "" && !flags.IsSet("o", "output-directory", args) {
		b.Options.OutputDirectory = resolve(easefile.OutputDirectory)
	}
	if easefile.ModuleFile != "" && !flags.IsSet("m", "module-file", args) {
		b.Options.ModuleFile = easefile.ModuleFile
	}
	if easefile.SHA256 && !flags.IsSet("", "sha256", args) {
		b.Options.SHA256 = true
	}

	return nil
}

func (b *Build) path(p string) string {
	if b.workingDirectory == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(b.workingDirectory, p)
}

func (b *Build) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command generates the ease artifacts from eases.json. It runs when ease is invoked without a command.",
		ShortDescription: "generates the ease preset artifacts",
		Flags:            b.Options,
	}
}
