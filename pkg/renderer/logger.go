package renderer

import (
	"fmt"
	"os"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// StderrLogger implements core.Logger by writing to stderr, matching the
// progress-line protocol spec.md §6 requires on standard error so stdout
// stays reserved for the PPM image.
type StderrLogger struct{}

func (StderrLogger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// NewStderrLogger creates a logger that writes render progress to stderr.
func NewStderrLogger() core.Logger {
	return StderrLogger{}
}
