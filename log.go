package id3

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide diagnostic sink. It defaults to a zerolog
// logger writing to stderr at the Info level, mirroring the slf4j loggers
// the tooling this package was modeled on uses for soft diagnostics. It
// reports malformed frames the frame loop drops and an ID3v2.4 extended
// header whose flag-byte count is not 1. Callers that don't want the noise
// can lower the level or swap in zerolog.Nop().
var Logger = zerolog.New(os.Stderr).With().Timestamp().Str("pkg", "id3").Logger()

func init() {
	Logger = Logger.Level(zerolog.InfoLevel)
}
