package mood

import (
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/rs/zerolog"
)

// Kind identifies which simulated detector ran.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
	KindVoice Kind = "voice"
)

// DetectEvent records metadata about a single detection call.
type DetectEvent struct {
	Kind    Kind
	Latency time.Duration
	Mood    domain.Mood
	Err     error
}

// Observer receives detection events for logging.
type Observer interface {
	OnDetect(event DetectEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnDetect(DetectEvent) {}

// LogObserver writes detection events to a zerolog logger.
type LogObserver struct {
	logger zerolog.Logger
}

// NewLogObserver creates an Observer that logs through logger.
func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger.With().Str("component", "mood").Logger()}
}

func (o *LogObserver) OnDetect(event DetectEvent) {
	if event.Err != nil {
		o.logger.Warn().
			Str("kind", string(event.Kind)).
			Dur("latency", event.Latency).
			Err(event.Err).
			Msg("mood detection abandoned")
		return
	}
	o.logger.Debug().
		Str("kind", string(event.Kind)).
		Dur("latency", event.Latency).
		Str("mood", string(event.Mood)).
		Msg("mood detected")
}
