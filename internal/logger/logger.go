// Package logger configures structured logging for the generator binaries.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// root is the shared logger every package-scoped entry hangs off, so
// SetVerbose applies everywhere at once.
var root = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}()

// Named returns a package-scoped logger entry writing to stderr with full
// timestamps.
func Named(name string) *logrus.Entry {
	return root.WithField("pkg", name)
}

// SetVerbose switches between info and debug level.
func SetVerbose(verbose bool) {
	if verbose {
		root.SetLevel(logrus.DebugLevel)
	} else {
		root.SetLevel(logrus.InfoLevel)
	}
}
