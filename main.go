package main

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/pivotal-cf/jhanda"

	"github.com/pivotal-cf/css-ease-presets/internal/commands"
)

var version = "unknown"

const defaultCommand = "build"

func main() {
	errLogger := log.New(os.Stderr, "", 0)
	outLogger := log.New(os.Stdout, "", 0)

	var global struct {
		Help    bool `short:"h" long:"help"    description:"prints this usage information"   default:"false"`
		Version bool `short:"v" long:"version" description:"prints the ease release version" default:"false"`
	}

	args, err := jhanda.Parse(&global, os.Args[1:])
	if err != nil {
		errLogger.Fatal(err)
	}

	globalFlagsUsage, err := jhanda.PrintUsage(global)
	if err != nil {
		errLogger.Fatal(err)
	}

	var command string
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	if global.Version {
		command = "version"
	}

	if global.Help {
		command = "help"
	}

	if command == "" {
		command = defaultCommand
	}

	workingDirectory, err := os.Getwd()
	if err != nil {
		errLogger.Fatal(err)
	}

	// rooted at "/" so parent relative paths such as ../site resolve
	fs := osfs.New("/")

	commandSet := jhanda.CommandSet{}
	commandSet["help"] = commands.NewHelp(os.Stdout, globalFlagsUsage, commandSet, defaultCommand)
	commandSet["version"] = commands.NewVersion(outLogger, version)
	commandSet[defaultCommand] = commands.NewBuild(outLogger, fs, workingDirectory)

	err = commandSet.Execute(command, args)
	if err != nil {
		errLogger.Fatal(err)
	}
}
