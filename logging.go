//////////////////////////////////////////////////////
// logging.go
// search/bot diagnostics
// grounded on search.go's Logger/NulLogger interface pair
//////////////////////////////////////////////////////

package threesus

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger logs bot/search progress: begin/end markers and the chosen move,
// the way an engine would log each top-level search it runs.
type Logger interface {
	// BeginMove signals a new GetNextMove call is starting.
	BeginMove(cfg BotConfig)
	// EndMove signals a GetNextMove call finished, with its stats.
	EndMove(stats Stats)
	// PrintMove logs the chosen direction and its quality, or the absence
	// of one.
	PrintMove(dir Direction, quality float32, found bool)
}

// NopLogger is a Logger that does nothing. The default when no logger is
// supplied.
type NopLogger struct{}

func (NopLogger) BeginMove(BotConfig)              {}
func (NopLogger) EndMove(Stats)                    {}
func (NopLogger) PrintMove(Direction, float32, bool) {}

// ZerologLogger logs through a zerolog.Logger.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a ZerologLogger writing to os.Stderr.
func NewZerologLogger() *ZerologLogger {
	return &ZerologLogger{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
}

// NewZerologLoggerWith wraps an already-configured zerolog.Logger.
func NewZerologLoggerWith(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: l}
}

func (zl *ZerologLogger) BeginMove(cfg BotConfig) {
	zl.log.Debug().
		Int("depth", cfg.Depth).
		Int("horizon", cfg.Horizon).
		Str("evaluator", cfg.Evaluator.Name()).
		Msg("search started")
}

func (zl *ZerologLogger) EndMove(stats Stats) {
	zl.log.Debug().
		Uint64("evaluations", stats.Evaluations).
		Msg("search finished")
}

func (zl *ZerologLogger) PrintMove(dir Direction, quality float32, found bool) {
	if !found {
		zl.log.Info().Msg("no legal move")
		return
	}
	zl.log.Info().
		Str("direction", dir.String()).
		Float32("quality", quality).
		Msg("move chosen")
}
