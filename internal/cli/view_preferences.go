package cli

import (
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/cli/formatter"
	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type prefRowKind int

const (
	rowRestriction prefRowKind = iota
	rowGoal
	rowAllergy
	rowAddAllergy
	rowContinue
)

// prefRow is one selectable line of the preferences screen.
type prefRow struct {
	kind        prefRowKind
	restriction domain.DietaryRestriction
	goal        domain.HealthGoal
	allergy     string
}

// preferencesView is step 3: dietary restrictions, a health goal, and a free
// list of allergies. Every change is written to the session immediately.
type preferencesView struct {
	state  *SharedState
	cursor int
	input  textinput.Model
}

func newPreferencesView(state *SharedState) *preferencesView {
	ti := textinput.New()
	ti.Placeholder = "Add allergy (e.g., peanuts, shellfish)"
	ti.CharLimit = 60
	ti.Width = 40
	return &preferencesView{state: state, input: ti}
}

func (v *preferencesView) ID() ViewID                { return ViewPreferences }
func (v *preferencesView) Title() string             { return wizard.StepPreferences.Label() }
func (v *preferencesView) Location() wizard.Location { return wizard.Location{Step: wizard.StepPreferences} }

// CapturesInput is true while the allergy field has focus.
func (v *preferencesView) CapturesInput() bool { return v.input.Focused() }

func (v *preferencesView) ShortHelp() []key.Binding {
	if v.input.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "select")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add allergy")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
	}
}

func (v *preferencesView) Init() tea.Cmd { return nil }

// rows lists the screen's lines in display order. Allergy rows come and go,
// so the list is rebuilt from the session on every call.
func (v *preferencesView) rows() []prefRow {
	var rows []prefRow
	for _, r := range domain.AllRestrictions {
		rows = append(rows, prefRow{kind: rowRestriction, restriction: r})
	}
	for _, g := range domain.AllHealthGoals {
		rows = append(rows, prefRow{kind: rowGoal, goal: g})
	}
	for _, a := range v.state.Wizard.Store().Allergies() {
		rows = append(rows, prefRow{kind: rowAllergy, allergy: a})
	}
	rows = append(rows, prefRow{kind: rowAddAllergy}, prefRow{kind: rowContinue})
	return rows
}

func (v *preferencesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.input.Focused() {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.input.Focused() {
		return v, v.handleAllergyInput(km)
	}

	rows := v.rows()
	switch km.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case "a":
		v.cursor = len(rows) - 2
		return v, v.input.Focus()
	case "c":
		return v, v.proceed()
	case " ", "enter", "x":
		return v, v.activate(rows[min(v.cursor, len(rows)-1)], km.String())
	}
	return v, nil
}

func (v *preferencesView) activate(row prefRow, pressed string) tea.Cmd {
	ctrl := v.state.Wizard
	var err error
	switch row.kind {
	case rowRestriction:
		_, err = ctrl.ToggleRestriction(row.restriction)
	case rowGoal:
		err = ctrl.SetHealthGoal(row.goal)
	case rowAllergy:
		err = ctrl.RemoveAllergy(row.allergy)
		if n := len(v.rows()); v.cursor >= n {
			v.cursor = n - 1
		}
	case rowAddAllergy:
		return v.input.Focus()
	case rowContinue:
		if pressed == "x" {
			return nil
		}
		return v.proceed()
	}
	if err != nil {
		return notify(navigationError(err))
	}
	return nil
}

func (v *preferencesView) handleAllergyInput(km tea.KeyMsg) tea.Cmd {
	switch km.Type {
	case tea.KeyEsc:
		v.input.Blur()
		return nil
	case tea.KeyEnter:
		raw := v.input.Value()
		v.input.Reset()
		added, err := v.state.Wizard.AddAllergy(raw)
		if err != nil {
			return notify(navigationError(err))
		}
		if added {
			v.cursor = len(v.rows()) - 2
		}
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(km)
	return cmd
}

func (v *preferencesView) proceed() tea.Cmd {
	v.input.Blur()
	if err := v.state.Wizard.ContinuePreferences(); err != nil {
		return notify(navigationError(err))
	}
	return locationChanged()
}

func (v *preferencesView) View() string {
	store := v.state.Wizard.Store()
	restrictions := store.Restrictions()
	goal := store.HealthGoal()

	var b strings.Builder
	b.WriteString(formatter.Header(wizard.StepPreferences.Title()) + "\n")
	b.WriteString(formatter.Dim("Tell us about your dietary needs so we can personalize your recipe recommendations") + "\n")

	section := ""
	for i, row := range v.rows() {
		var heading, line string
		cur := formatter.Cursor(i == v.cursor && !v.input.Focused())
		switch row.kind {
		case rowRestriction:
			heading = "Dietary Restrictions"
			line = cur + formatter.Checkbox(restrictions.Has(row.restriction)) + " " + row.restriction.Label()
		case rowGoal:
			heading = "Health Goal"
			line = cur + formatter.Radio(goal == row.goal) + " " + row.goal.Label()
		case rowAllergy:
			heading = "Allergies"
			line = cur + formatter.StyleYellow.Render("•") + " " + row.allergy + "  " + formatter.Dim("(x to remove)")
		case rowAddAllergy:
			heading = "Allergies"
			line = cur + v.input.View()
		case rowContinue:
			line = "\n" + cur + formatter.StyleGreen.Render("Continue →")
		}
		if heading != "" && heading != section {
			section = heading
			b.WriteString("\n" + formatter.Bold(heading) + "\n")
		}
		b.WriteString(line + "\n")
	}

	if n := len(store.Allergies()); n > 0 {
		b.WriteString(formatter.Dim(fmt.Sprintf("\n%d allergies noted. They are shown for reference and do not filter recipes.", n)) + "\n")
	}
	return b.String()
}
