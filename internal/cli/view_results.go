package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// resultsLoadedMsg delivers the recommendation list.
type resultsLoadedMsg struct {
	from *resultsView
	res  recommend.Result
	err  error
}

// resultsView is step 4: the recommended recipes for the session.
type resultsView struct {
	state   *SharedState
	loading bool
	loaded  bool
	res     recommend.Result
	err     error
	cursor  int
	spinner spinner.Model
}

func newResultsView(state *SharedState) *resultsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &resultsView{state: state, spinner: sp}
}

func (v *resultsView) ID() ViewID                { return ViewResults }
func (v *resultsView) Title() string             { return wizard.StepResults.Label() }
func (v *resultsView) Location() wizard.Location { return wizard.Location{Step: wizard.StepResults} }

func (v *resultsView) ShortHelp() []key.Binding {
	if v.loading {
		return nil
	}
	if v.err != nil {
		return []key.Binding{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"))}
	}
	if len(v.res.Recipes) == 0 {
		return nil
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view recipe")),
	}
}

func (v *resultsView) Init() tea.Cmd {
	return v.load()
}

func (v *resultsView) load() tea.Cmd {
	v.loading = true
	v.err = nil
	ctrl := v.state.Wizard
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		res, err := ctrl.LoadResults(context.Background())
		return resultsLoadedMsg{from: v, res: res, err: err}
	})
}

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultsLoadedMsg:
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
		v.res = msg.res
		v.loaded = true
		v.cursor = 0
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
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *resultsView) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(v.res.Recipes)
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < n-1 {
			v.cursor++
		}
	case "r":
		if v.err != nil {
			return v.load()
		}
	case "enter":
		if n == 0 {
			return nil
		}
		if err := v.state.Wizard.OpenRecipe(v.res.Recipes[v.cursor].ID); err != nil {
			return notify(navigationError(err))
		}
		return locationChanged()
	}
	return nil
}

func (v *resultsView) View() string {
	var b strings.Builder
	m := v.state.DetectedMood()

	if v.loading || (!v.loaded && v.err == nil) {
		b.WriteString("\n  " + v.spinner.View() + " " + formatter.Dim("Finding the perfect recipes for your mood...") + "\n")
		return b.String()
	}
	if v.err != nil {
		b.WriteString(formatter.StyleRed.Render("✖ Could not load recipes: "+v.err.Error()) + "\n")
		b.WriteString(formatter.Dim("Press r to try again.") + "\n")
		return b.String()
	}

	b.WriteString(formatter.Header(formatter.ResultsHeading(m)) + "\n")
	b.WriteString(formatter.Dim(formatter.ResultsSubtitle(m)) + "\n\n")

	if len(v.res.Recipes) == 0 {
		b.WriteString(formatter.FormatEmptyResults() + "\n")
		return b.String()
	}

	switch {
	case v.res.FinalFallback:
		b.WriteString(formatter.StyleYellow.Render("Nothing matched every preference; showing our top picks instead.") + "\n\n")
	case v.res.MoodFallback:
		b.WriteString(formatter.Dim("No recipe is tagged for this mood; starting from our top picks.") + "\n\n")
	}

	for i := range v.res.Recipes {
		b.WriteString(formatter.FormatRecipeCard(&v.res.Recipes[i], i == v.cursor, v.state.ContentWidth()))
		b.WriteString("\n")
	}
	return b.String()
}
