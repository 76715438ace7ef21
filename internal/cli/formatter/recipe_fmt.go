package formatter

import (
	"fmt"
	"strings"

	"github.com/athulvp5125/Mood-Meal/internal/domain"
	"github.com/athulvp5125/Mood-Meal/internal/recommend"
	"github.com/charmbracelet/lipgloss"
)

// ResultsHeading returns the results page title with the mood glyph.
func ResultsHeading(m *domain.Mood) string {
	return "Your Personalized Recipe Recommendations " + domain.EmotionEmoji(m)
}

// ResultsSubtitle explains which mood the list was curated for. With no
// detected mood it falls back to the user's preferences.
func ResultsSubtitle(m *domain.Mood) string {
	label := "preferences"
	if m != nil {
		label = string(*m)
	}
	return fmt.Sprintf("Based on your %s mood, we've curated these %s recipes just for you",
		label, domain.EmotionDescription(m))
}

// RecipeMeta renders the "25 mins • 420 cal" line of a recipe card.
func RecipeMeta(r *domain.Recipe) string {
	return Dim(fmt.Sprintf("%s • %d cal", Minutes(r.CookTime), r.Calories))
}

// FormatRecipeCard renders one entry of the results list.
func FormatRecipeCard(r *domain.Recipe, selected bool, width int) string {
	title := StyleFg.Render(r.Title)
	if selected {
		title = StyleBold.Render(r.Title)
	}

	var b strings.Builder
	b.WriteString(Cursor(selected) + title + "\n")
	b.WriteString("    " + RecipeMeta(r) + "\n")
	if r.Description != "" {
		desc := r.Description
		if width > 8 {
			desc = Truncate(desc, width-8)
		}
		b.WriteString("    " + Dim(desc) + "\n")
	}
	if tags := TagList(r.Tags); tags != "" {
		b.WriteString("    " + tags + "\n")
	}
	return b.String()
}

// FormatEmptyResults is shown when no recipe survives filtering.
func FormatEmptyResults() string {
	return StyleYellow.Render("No Recipes Found") + "\n\n" +
		Dim("We couldn't find recipes matching your current mood and preferences.\n"+
			"Try adjusting your dietary restrictions or health goals.")
}

// FormatRecipeNotFound is shown when a detail route names an unknown id.
func FormatRecipeNotFound() string {
	return StyleYellow.Render("⚠ Recipe Not Found") + "\n\n" +
		Dim("We couldn't find the recipe you're looking for.\n"+
			"It may have been removed or the ID is incorrect.")
}

// FormatRecipeDetail renders the full recipe page. When m is non-nil a
// "why we recommended this" panel is included.
func FormatRecipeDetail(r *domain.Recipe, m *domain.Mood) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(r.Title) + "\n")
	if r.Description != "" {
		b.WriteString(StyleFg.Render(r.Description) + "\n")
	}
	b.WriteString("\n")

	meta := []string{
		Dim("Total Time ") + Bold(Minutes(r.CookTime)),
		Dim("Difficulty ") + Bold(r.Difficulty),
		Dim("Calories ") + Bold(fmt.Sprintf("%d cal", r.Calories)),
		Dim("Serves ") + Bold(fmt.Sprintf("%d people", r.Servings)),
	}
	b.WriteString(strings.Join(meta, "   ") + "\n")
	if tags := TagList(r.Tags); tags != "" {
		b.WriteString(tags + "\n")
	}

	if m != nil {
		panel := lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(ColorHeader).
			PaddingLeft(1)
		b.WriteString("\n" + panel.Render(
			StyleHeader.Render("Why we recommended this recipe")+"\n"+
				StyleFg.Render(domain.MoodExplanation(*m, r.Title))) + "\n")
	}

	b.WriteString("\n" + Header("Ingredients") + "\n")
	for _, ing := range r.Ingredients {
		b.WriteString(StyleGreen.Render("•") + " " + ing + "\n")
	}

	b.WriteString("\n" + Header("Instructions") + "\n")
	for i, step := range r.Instructions {
		b.WriteString(StylePurple.Render(fmt.Sprintf("%d.", i+1)) + " " + step + "\n")
	}

	if len(r.Nutrition) > 0 {
		b.WriteString("\n" + Header("Nutrition Information") + "\n")
		rows := make([][]string, len(r.Nutrition))
		for i, n := range r.Nutrition {
			rows[i] = []string{n.Name, n.Value}
		}
		b.WriteString(RenderTable([]string{"Nutrient", "Amount"}, rows))
	}

	return b.String()
}

// FormatMoodResult renders the outcome of a single mood detection.
func FormatMoodResult(source string, m domain.Mood) string {
	return fmt.Sprintf("%s %s\n%s\n",
		Dim(source+":"),
		MoodBadge(&m),
		Dim("Recipes for this mood are "+m.Description()+"."))
}

// FormatRecommendations renders a recommendation result for the command line.
func FormatRecommendations(m *domain.Mood, res recommend.Result) string {
	var b strings.Builder

	b.WriteString(Header(ResultsHeading(m)) + "\n")
	b.WriteString(Dim(ResultsSubtitle(m)) + "\n\n")

	if len(res.Recipes) == 0 {
		b.WriteString(FormatEmptyResults() + "\n")
		return b.String()
	}

	for i := range res.Recipes {
		r := &res.Recipes[i]
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(r.Title),
			RecipeMeta(r)))
		b.WriteString(fmt.Sprintf("   %s\n", Dim("id "+r.ID)))
		if tags := TagList(r.Tags); tags != "" {
			b.WriteString("   " + tags + "\n")
		}
	}

	switch {
	case res.FinalFallback:
		b.WriteString("\n" + StyleYellow.Render("Nothing matched every preference; showing our top picks instead.") + "\n")
	case res.MoodFallback:
		b.WriteString("\n" + Dim("No recipe is tagged for this mood; starting from our top picks.") + "\n")
	}
	return b.String()
}
