// Package logging configures the pipeline-internal progress logger.
//
// This is separate from the user-facing diagnostic renderer in
// internal/diag: logging is ops-facing verbosity toggled by -v/--verbose,
// while diag.Error is the one compile error ever shown to a user.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

// New returns a logger configured with a single-line, greppable format.
// verbose raises the level to Debug; otherwise only warnings and errors are
// emitted.
func New(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&easy.Formatter{
		TimestampFormat: "15:04:05.000",
		LogFormat:       "[%lvl%] %time% %msg%\n",
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return log
}
