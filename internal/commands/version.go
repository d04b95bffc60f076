package commands

import (
	"log"
	"runtime/debug"

	"github.com/pivotal-cf/jhanda"
)

type Version struct {
	logger  *log.Logger
	version string
}

// NewVersion returns the version command. When version was not stamped at
// link time, the main module version from the binary's build info is used.
func NewVersion(logger *log.Logger, version string) Version {
	if version == "" || version == "unknown" {
		version = buildInfoVersion()
	}
	return Version{
		logger:  logger,
		version: version,
	}
}

func (v Version) Execute([]string) error {
	v.logger.Printf("%s version %s\n", applicationName, v.version)

	return nil
}

func (v Version) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints the ease release version, falling back to the Go module version of the binary.",
		ShortDescription: "prints the ease release version",
	}
}

func buildInfoVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "unknown"
	}
	return info.Main.Version
}
