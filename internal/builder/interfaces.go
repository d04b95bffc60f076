package builder

import "io"

//counterfeiter:generate -o ./fakes/logger.go --fake-name Logger . logger
type logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
