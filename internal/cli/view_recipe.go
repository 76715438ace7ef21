package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// recipeLoadedMsg delivers a recipe lookup. A nil recipe means not found.
type recipeLoadedMsg struct {
	from   *recipeView
	recipe *domain.Recipe
	err    error
}

// recipeView shows one recipe in a scrollable viewport.
type recipeView struct {
	state    *SharedState
	id       string
	loading  bool
	loaded   bool
	recipe   *domain.Recipe
	err      error
	viewport viewport.Model
	spinner  spinner.Model
}

func newRecipeView(state *SharedState, id string) *recipeView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	vp.MouseWheelEnabled = true
	return &recipeView{state: state, id: id, spinner: sp, viewport: vp}
}

func (v *recipeView) ID() ViewID { return ViewRecipe }

func (v *recipeView) Title() string {
	if v.recipe != nil {
		return formatter.Truncate(v.recipe.Title, 24)
	}
	return wizard.StepRecipeDetail.Label()
}

func (v *recipeView) Location() wizard.Location {
	return wizard.Location{Step: wizard.StepRecipeDetail, RecipeID: v.id}
}

func (v *recipeView) ShortHelp() []key.Binding {
	if v.loading {
		return nil
	}
	if v.recipe == nil {
		return []key.Binding{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "back to results"))}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
	}
}

func (v *recipeView) Init() tea.Cmd {
	v.loading = true
	v.err = nil
	ctrl := v.state.Wizard
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		r, err := ctrl.LoadRecipe(context.Background())
		return recipeLoadedMsg{from: v, recipe: r, err: err}
	})
}

func (v *recipeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeLoadedMsg:
		if msg.from != v {
			return v, nil
		}
		v.loading = false
		switch {
		case errors.Is(msg.err, wizard.ErrStaleResult):
			return v, nil
		case msg.err != nil:
			v.err = msg.err
			return v, nil
		}
		v.loaded = true
		v.recipe = msg.recipe
		v.refresh()
		return v, nil

	case tea.WindowSizeMsg:
		v.viewport.Width = v.state.ContentWidth()
		v.viewport.Height = v.state.ContentHeight()
		v.refresh()
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if v.loading {
			return v, nil
		}
		if v.recipe == nil && msg.Type == tea.KeyEnter {
			return v, v.backToResults()
		}
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *recipeView) refresh() {
	if v.recipe == nil {
		return
	}
	v.viewport.SetContent(formatter.FormatRecipeDetail(v.recipe, v.state.DetectedMood()))
}

func (v *recipeView) backToResults() tea.Cmd {
	if err := v.state.Wizard.Back(); err != nil {
		return notify(navigationError(err))
	}
	return locationChanged()
}

func (v *recipeView) View() string {
	switch {
	case v.loading || (!v.loaded && v.err == nil):
		return "\n  " + v.spinner.View() + " " + formatter.Dim("Loading recipe details...") + "\n"
	case v.err != nil:
		return formatter.StyleRed.Render("✖ Could not load recipe: "+v.err.Error()) + "\n"
	case v.recipe == nil:
		var b strings.Builder
		b.WriteString(formatter.FormatRecipeNotFound() + "\n\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("No recipe has id %q.", v.id)) + "\n")
		b.WriteString(formatter.StyleGreen.Render("← Back to Recipes") + formatter.Dim("  (enter)") + "\n")
		return b.String()
	}
	return v.viewport.View()
}
