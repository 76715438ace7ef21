package recommend

import (
	"context"
	"errors"
	"time"

	"github.com/athulvp5125/Mood-Meal/internal/catalog"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/rs/zerolog"
)

// Latencies holds the artificial delay of each service call.
type Latencies struct {
	Recommend time.Duration
	Lookup    time.Duration
}

// DefaultLatencies mirrors a slow remote recipe API.
func DefaultLatencies() Latencies {
	return Latencies{
		Recommend: 1800 * time.Millisecond,
		Lookup:    800 * time.Millisecond,
	}
}

// Service answers recommendation and lookup queries against a catalog.
type Service struct {
	source  catalog.Source
	latency Latencies
	logger  zerolog.Logger
}

// NewService creates a Service reading from source.
func NewService(source catalog.Source, latency Latencies, logger zerolog.Logger) *Service {
	return &Service{
		source:  source,
		latency: latency,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// GetRecipesForMood returns the recommended recipes for the given inputs.
// The only error is ctx being done. A catalog read failure is logged and
// treated as an empty catalog.
func (s *Service) GetRecipesForMood(ctx context.Context, mood domain.Mood, restrictions domain.Restrictions, goal domain.HealthGoal) ([]domain.Recipe, error) {
	res, err := s.Recommend(ctx, Request{Mood: mood, Restrictions: restrictions, Goal: goal})
	if err != nil {
		return nil, err
	}
	return res.Recipes, nil
}

// Recommend is GetRecipesForMood with the fallback flags exposed.
func (s *Service) Recommend(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	if err := sleep(ctx, s.latency.Recommend); err != nil {
		return Result{}, err
	}

	recipes, err := s.source.List(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		s.logger.Error().Err(err).Msg("catalog read failed, using empty catalog")
		recipes = nil
	}

	res := Recommend(recipes, req)
	s.logger.Debug().
		Str("mood", string(req.Mood)).
		Str("restrictions", req.Restrictions.String()).
		Str("goal", string(req.Goal)).
		Int("results", len(res.Recipes)).
		Bool("mood_fallback", res.MoodFallback).
		Bool("final_fallback", res.FinalFallback).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation computed")
	return res, nil
}

// GetRecipeByID returns the recipe with id, or nil with no error when the
// catalog has no such recipe.
func (s *Service) GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error) {
	if err := sleep(ctx, s.latency.Lookup); err != nil {
		return nil, err
	}
	r, err := s.source.Get(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			s.logger.Error().Err(err).Str("recipe_id", id).Msg("recipe lookup failed")
		}
		return nil, nil
	}
	return r, nil
}

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
