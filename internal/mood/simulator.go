// Package mood simulates mood detection from a photo, free text, or a voice
// recording. No real analysis happens: image and voice return a random mood
// and text is classified by keyword.
package mood

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
)

// Latencies holds the artificial delay of each simulated call.
type Latencies struct {
	Image time.Duration
	Text  time.Duration
	Voice time.Duration
}

// DefaultLatencies mirrors the delays of a slow remote analysis API.
func DefaultLatencies() Latencies {
	return Latencies{
		Image: 1500 * time.Millisecond,
		Text:  1000 * time.Millisecond,
		Voice: 1200 * time.Millisecond,
	}
}

// Simulator produces moods after a configurable delay.
type Simulator struct {
	latency  Latencies
	observer Observer

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand replaces the random source, typically with a seeded one in tests.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

// WithObserver reports every completed call to obs.
func WithObserver(obs Observer) Option {
	return func(s *Simulator) { s.observer = obs }
}

// NewSimulator creates a Simulator with the given latencies.
func NewSimulator(latency Latencies, opts ...Option) *Simulator {
	s := &Simulator{
		latency:  latency,
		observer: NoopObserver{},
		rng:      rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // simulated output, not security sensitive
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DetectFromImage pretends to run facial emotion recognition on image.
// It only fails if ctx is done before the delay elapses.
func (s *Simulator) DetectFromImage(ctx context.Context, image string) (domain.Mood, error) {
	return s.run(ctx, KindImage, s.latency.Image, func() domain.Mood { return s.pick() })
}

// AnalyzeText classifies text with ClassifyText after the text delay.
func (s *Simulator) AnalyzeText(ctx context.Context, text string) (domain.Mood, error) {
	return s.run(ctx, KindText, s.latency.Text, func() domain.Mood { return ClassifyText(text) })
}

// AnalyzeVoice pretends to run speech emotion recognition on audio.
func (s *Simulator) AnalyzeVoice(ctx context.Context, audio string) (domain.Mood, error) {
	return s.run(ctx, KindVoice, s.latency.Voice, func() domain.Mood { return s.pick() })
}

func (s *Simulator) run(ctx context.Context, kind Kind, delay time.Duration, result func() domain.Mood) (domain.Mood, error) {
	start := time.Now()
	if err := sleep(ctx, delay); err != nil {
		s.observer.OnDetect(DetectEvent{Kind: kind, Latency: time.Since(start), Err: err})
		return "", err
	}
	m := result()
	s.observer.OnDetect(DetectEvent{Kind: kind, Latency: time.Since(start), Mood: m})
	return m, nil
}

func (s *Simulator) pick() domain.Mood {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return randomMoods[s.rng.IntN(len(randomMoods))]
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
