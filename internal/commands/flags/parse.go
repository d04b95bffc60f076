package flags

import (
	"path/filepath"
	"strings"
)

type Standard struct {
	Easefile string `short:"ef" long:"easefile" default:"Easefile" description:"path to an Easefile (ignored when the default is missing)"`
}

// EasefilePathPrefix is the directory relative paths in the Easefile are
// resolved against. It is empty when the Easefile is in the working directory.
func (options Standard) EasefilePathPrefix() string {
	pathPrefix := filepath.Dir(options.Easefile)
	if pathPrefix == "." {
		pathPrefix = ""
	}
	return pathPrefix
}

// IsSet can be used to check if a flag is set in a set
// of arguments. Both "long" and "short" flag names must
// be passed; an empty name is never matched.
func IsSet(short, long string, args []string) bool {
	check := func(name string, arg string) bool {
		if name == "" {
			return false
		}

		return arg == "--"+name || arg == "-"+name ||
			strings.HasPrefix(arg, "--"+name+"=") ||
			strings.HasPrefix(arg, "-"+name+"=")
	}

	for _, a := range args {
		if check(short, a) || check(long, a) {
			return true
		}
	}

	return false
}
