// Package wizard drives the mood-to-recipe flow: which step is showing,
// which actions each step allows, and how async results reach the session.
//
// Every async action stamps the session generation when it starts. If the
// session is reset, or the wizard leaves the step, before the call returns,
// the result is dropped with ErrStaleResult and nothing is written.
package wizard

import (
	"context"
	"strings"
	"sync"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/athulvp5125/Mood-Meal/internal/session"
	"github.com/rs/zerolog"
)

// MoodDetector is the subset of the mood simulator the wizard calls.
type MoodDetector interface {
	DetectFromImage(ctx context.Context, image string) (domain.Mood, error)
	AnalyzeText(ctx context.Context, text string) (domain.Mood, error)
}

// RecipeFinder is the subset of the recommendation service the wizard calls.
type RecipeFinder interface {
	Recommend(ctx context.Context, req recommend.Request) (recommend.Result, error)
	GetRecipeByID(ctx context.Context, id string) (*domain.Recipe, error)
}

// Controller owns the session store and the current location.
type Controller struct {
	store    *session.Store
	detector MoodDetector
	finder   RecipeFinder
	logger   zerolog.Logger

	mu       sync.Mutex
	loc      Location
	inflight uint64 // token of the outstanding async call, 0 if none
	nextTok  uint64
}

// NewController creates a Controller positioned on the landing step.
func NewController(store *session.Store, detector MoodDetector, finder RecipeFinder, logger zerolog.Logger) *Controller {
	return &Controller{
		store:    store,
		detector: detector,
		finder:   finder,
		logger:   logger.With().Str("component", "wizard").Logger(),
		loc:      Location{Step: StepLanding},
	}
}

// Store exposes the session for reads.
func (c *Controller) Store() *session.Store { return c.store }

// Location returns the current step.
func (c *Controller) Location() Location {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loc
}

// Busy reports whether an async call is outstanding.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight != 0
}

// Start enters the landing step, resetting the session.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(StepLanding)
}

// Restart discards all session input and returns to the capture step. It is
// allowed from anywhere, including while a call is in flight.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(StepCapture)
}

func (c *Controller) resetLocked(to Step) {
	c.store.Reset()
	c.inflight = 0
	c.loc = Location{Step: to}
	c.sessionLogger().Info().Str("step", to.Label()).Msg("session reset")
}

// Begin leaves the landing step for capture.
func (c *Controller) Begin() error {
	return c.move("begin", StepLanding, Location{Step: StepCapture})
}

// Skip leaves the voice/text step without writing text or mood.
func (c *Controller) Skip() error {
	return c.move("skip", StepVoiceOrText, Location{Step: StepPreferences})
}

// ContinuePreferences advances from preferences to results.
func (c *Controller) ContinuePreferences() error {
	return c.move("continue", StepPreferences, Location{Step: StepResults})
}

// OpenRecipe drills into a recipe from the results list.
func (c *Controller) OpenRecipe(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyInput
	}
	return c.move("open recipe", StepResults, Location{Step: StepRecipeDetail, RecipeID: id})
}

// Back returns to the previous step. Session data is kept, except that
// landing on "/" restarts the session the way entering that route does.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight != 0 {
		return ErrBusy
	}
	prev, ok := previous(c.loc.Step)
	if !ok {
		return &TransitionError{From: c.loc.Step, Action: "go back"}
	}
	if prev == StepLanding {
		c.resetLocked(StepLanding)
		return nil
	}
	c.loc = Location{Step: prev}
	return nil
}

func previous(s Step) (Step, bool) {
	switch s {
	case StepCapture:
		return StepLanding, true
	case StepVoiceOrText:
		return StepCapture, true
	case StepPreferences:
		return StepVoiceOrText, true
	case StepResults:
		return StepPreferences, true
	case StepRecipeDetail:
		return StepResults, true
	}
	return s, false
}

// Goto jumps straight to a route, as the header links and the landing
// shortcuts do. Navigating to "/" resets the session.
func (c *Controller) Goto(path string) error {
	loc, err := ParseRoute(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight != 0 {
		return ErrBusy
	}
	if loc.Step == StepLanding {
		c.resetLocked(StepLanding)
		return nil
	}
	c.loc = loc
	return nil
}

func (c *Controller) move(action string, from Step, to Location) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight != 0 {
		return ErrBusy
	}
	if c.loc.Step != from {
		return &TransitionError{From: c.loc.Step, Action: action}
	}
	c.loc = to
	return nil
}

// call describes one outstanding async action.
type call struct {
	token uint64
	gen   uint64
	loc   Location
}

// begin reserves the async slot for a call made from step.
func (c *Controller) begin(action string, step Step) (call, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loc.Step != step {
		return call{}, &TransitionError{From: c.loc.Step, Action: action}
	}
	if c.inflight != 0 {
		return call{}, ErrBusy
	}
	c.nextTok++
	c.inflight = c.nextTok
	return call{token: c.nextTok, gen: c.store.Generation(), loc: c.loc}, nil
}

// finishLocked releases the async slot and reports whether the call is
// still current. The caller must hold c.mu.
func (c *Controller) finishLocked(k call) bool {
	if c.inflight == k.token {
		c.inflight = 0
	}
	return c.loc == k.loc && c.store.Generation() == k.gen
}

func (c *Controller) abandon(k call) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight == k.token {
		c.inflight = 0
	}
}

// SubmitCapture stores image, runs mood detection and advances to the
// voice/text step. The detected mood replaces any earlier one.
func (c *Controller) SubmitCapture(ctx context.Context, image string) (domain.Mood, error) {
	if image == "" {
		return "", ErrEmptyInput
	}
	k, err := c.begin("submit capture", StepCapture)
	if err != nil {
		return "", err
	}
	c.store.Update(k.gen, func(s *session.State) { s.Image = &image })

	mood, err := c.detector.DetectFromImage(ctx, image)
	if err != nil {
		c.abandon(k)
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finishLocked(k) || !c.store.Update(k.gen, func(s *session.State) { s.DetectedMood = &mood }) {
		c.sessionLogger().Debug().Str("mood", string(mood)).Msg("discarding stale image detection")
		return "", ErrStaleResult
	}
	c.loc = Location{Step: StepVoiceOrText}
	c.sessionLogger().Info().Str("mood", string(mood)).Msg("mood detected from image")
	return mood, nil
}

// SubmitText stores text, classifies it and advances to preferences. The
// classified mood is written only when no mood was detected earlier; the
// returned mood is the one now in effect.
func (c *Controller) SubmitText(ctx context.Context, text string) (domain.Mood, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	k, err := c.begin("submit text", StepVoiceOrText)
	if err != nil {
		return "", err
	}
	c.store.Update(k.gen, func(s *session.State) { s.TextInput = text })

	mood, err := c.detector.AnalyzeText(ctx, text)
	if err != nil {
		c.abandon(k)
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	effective := mood
	ok := c.finishLocked(k) && c.store.Update(k.gen, func(s *session.State) {
		if s.DetectedMood == nil {
			s.DetectedMood = &mood
		} else {
			effective = *s.DetectedMood
		}
	})
	if !ok {
		c.sessionLogger().Debug().Str("mood", string(mood)).Msg("discarding stale text analysis")
		return "", ErrStaleResult
	}
	c.loc = Location{Step: StepPreferences}
	c.sessionLogger().Info().
		Str("text_mood", string(mood)).
		Str("mood", string(effective)).
		Msg("text analysed")
	return effective, nil
}

// ToggleRestriction applies the dietary toggle rules and stores the result.
func (c *Controller) ToggleRestriction(r domain.DietaryRestriction) (domain.Restrictions, error) {
	if err := c.requireStep("toggle restriction", StepPreferences); err != nil {
		return nil, err
	}
	next := c.store.Restrictions().Toggle(r)
	c.store.SetRestrictions(next)
	return next, nil
}

// SetHealthGoal stores the chosen goal.
func (c *Controller) SetHealthGoal(g domain.HealthGoal) error {
	if err := c.requireStep("set health goal", StepPreferences); err != nil {
		return err
	}
	c.store.SetHealthGoal(g)
	return nil
}

// AddAllergy normalises raw and appends it. Blank and duplicate entries are
// ignored and reported as not added.
func (c *Controller) AddAllergy(raw string) (bool, error) {
	if err := c.requireStep("add allergy", StepPreferences); err != nil {
		return false, err
	}
	next, added := domain.AddAllergy(c.store.Allergies(), raw)
	if added {
		c.store.SetAllergies(next)
	}
	return added, nil
}

// RemoveAllergy drops value from the allergy list.
func (c *Controller) RemoveAllergy(value string) error {
	if err := c.requireStep("remove allergy", StepPreferences); err != nil {
		return err
	}
	c.store.SetAllergies(domain.RemoveAllergy(c.store.Allergies(), value))
	return nil
}

func (c *Controller) requireStep(action string, step Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loc.Step != step {
		return &TransitionError{From: c.loc.Step, Action: action}
	}
	return nil
}

// LoadResults fetches recommendations for the current session. A session
// without a detected mood is treated as neutral.
func (c *Controller) LoadResults(ctx context.Context) (recommend.Result, error) {
	k, err := c.begin("load results", StepResults)
	if err != nil {
		return recommend.Result{}, err
	}
	snap := c.store.Snapshot()
	req := recommend.Request{
		Mood:         domain.MoodNeutral,
		Restrictions: snap.Restrictions,
		Goal:         snap.HealthGoal,
	}
	if snap.DetectedMood != nil {
		req.Mood = *snap.DetectedMood
	}

	res, err := c.finder.Recommend(ctx, req)
	if err != nil {
		c.abandon(k)
		return recommend.Result{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finishLocked(k) {
		return recommend.Result{}, ErrStaleResult
	}
	return res, nil
}

// LoadRecipe fetches the recipe of the current detail step. A nil recipe
// with no error means the id is not in the catalog.
func (c *Controller) LoadRecipe(ctx context.Context) (*domain.Recipe, error) {
	k, err := c.begin("load recipe", StepRecipeDetail)
	if err != nil {
		return nil, err
	}
	r, err := c.finder.GetRecipeByID(ctx, k.loc.RecipeID)
	if err != nil {
		c.abandon(k)
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.finishLocked(k) {
		return nil, ErrStaleResult
	}
	if r == nil {
		c.sessionLogger().Warn().Str("recipe_id", k.loc.RecipeID).Msg("recipe not found")
	}
	return r, nil
}

func (c *Controller) sessionLogger() *zerolog.Logger {
	l := c.logger.With().Str("session_id", c.store.ID()).Logger()
	return &l
}
