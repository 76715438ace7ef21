package cli

import (
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/spf13/pflag"
)

// moodFlag is a --mood value restricted to the mood enum.
type moodFlag struct {
	mood domain.Mood
}

var _ pflag.Value = (*moodFlag)(nil)

func (f *moodFlag) String() string { return string(f.mood) }
func (f *moodFlag) Type() string   { return "mood" }

func (f *moodFlag) Set(s string) error {
	m, err := domain.ParseMood(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.mood = m
	return nil
}

// restrictionsFlag collects --diet values. Each value may itself be a comma
// separated list, and repeats accumulate through the toggle rules so that
// "none" clears the others.
type restrictionsFlag struct {
	set domain.Restrictions
}

var _ pflag.Value = (*restrictionsFlag)(nil)

func (f *restrictionsFlag) String() string {
	if f.set == nil {
		return string(domain.DietNone)
	}
	return f.set.String()
}

func (f *restrictionsFlag) Type() string { return "diet" }

func (f *restrictionsFlag) Set(s string) error {
	if f.set == nil {
		f.set = domain.NewRestrictions()
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		r, err := domain.ParseRestriction(part)
		if err != nil {
			return err
		}
		if !f.set.Has(r) {
			f.set = f.set.Toggle(r)
		}
	}
	return nil
}

// Value returns the parsed restrictions, {none} when the flag was not given.
func (f *restrictionsFlag) Value() domain.Restrictions {
	if f.set == nil {
		return domain.NewRestrictions()
	}
	return f.set
}

// goalFlag is a --goal value restricted to the health goal enum.
type goalFlag struct {
	goal domain.HealthGoal
}

var _ pflag.Value = (*goalFlag)(nil)

func (f *goalFlag) String() string {
	if f.goal == "" {
		return string(domain.GoalNone)
	}
	return string(f.goal)
}

func (f *goalFlag) Type() string { return "goal" }

func (f *goalFlag) Set(s string) error {
	g, err := domain.ParseHealthGoal(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	f.goal = g
	return nil
}

// Value returns the parsed goal, GoalNone when the flag was not given.
func (f *goalFlag) Value() domain.HealthGoal {
	if f.goal == "" {
		return domain.GoalNone
	}
	return f.goal
}

// addPreferenceFlags registers --diet and --goal on fs.
func addPreferenceFlags(fs *pflag.FlagSet, diet *restrictionsFlag, goal *goalFlag) {
	fs.Var(diet, "diet", "Dietary restriction (repeatable or comma separated): "+strings.Join(restrictionNames(), ", "))
	fs.Var(goal, "goal", "Health goal: "+strings.Join(goalNames(), ", "))
}

func restrictionNames() []string {
	out := make([]string, len(domain.AllRestrictions))
	for i, r := range domain.AllRestrictions {
		out[i] = string(r)
	}
	return out
}

func goalNames() []string {
	out := make([]string, len(domain.AllHealthGoals))
	for i, g := range domain.AllHealthGoals {
		out[i] = string(g)
	}
	return out
}
