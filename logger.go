package ring

import (
	"log/slog"
	"sync/atomic"
)

// silent is installed until SetLogger is called. Its handler reports every
// level as disabled, so render-path log calls cost no formatting.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes log output of ring and the bundled surfaces to l.
// A nil l silences them again. Safe for concurrent use.
//
// What gets logged:
//   - Debug: each Indicator.Render (fill, convention, preset), each
//     surface Begin (canvas size), label locale fallbacks
//   - Info: PNG files written by ggsurface
//   - Warn: labels dropped because the font could not be loaded
//
// The ringdemo command installs a text handler at debug level when run
// with --verbose:
//
//	ring.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set with SetLogger. Surfaces in sub-packages
// log through it.
func Logger() *slog.Logger {
	return logger.Load()
}
