package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/analysis"
	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/ranker"
)

// FormatSuggestions renders suggested prompts, optionally followed by the
// per-prompt score breakdown and the entry analysis.
func FormatSuggestions(res *app.SuggestionResult, explain bool) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n", PhaseBadge(res.Phase), Dim("via "+string(res.Source))))

	if len(res.SuggestedPrompts) == 0 {
		b.WriteString(Dim("No prompts available for this phase.") + "\n")
	}
	for i, p := range res.SuggestedPrompts {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render(fmt.Sprintf("%d.", i+1)), StyleFg.Render(p.Text)))
		if explain {
			b.WriteString(formatReasons(res.Scored, i))
		}
	}

	if explain && len(res.RetrievalErrors) > 0 {
		b.WriteString("\n" + Header("Retrieval") + "\n")
		for _, e := range res.RetrievalErrors {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("✖"), Dim(e)))
		}
	}

	if res.Analysis != nil {
		b.WriteString("\n" + formatAnalysisBody(*res.Analysis))
	}
	return RenderBox("Journal Prompts", strings.TrimRight(b.String(), "\n"))
}

func formatReasons(scored []ranker.ScoredPrompt, i int) string {
	if i >= len(scored) {
		return "     " + Dim("unscored (fallback tier)") + "\n"
	}
	sp := scored[i]
	if len(sp.Reasons) == 0 {
		return "     " + Dim("score 0") + "\n"
	}
	parts := make([]string, len(sp.Reasons))
	for j, r := range sp.Reasons {
		parts[j] = fmt.Sprintf("+%d %s %q", r.Delta, strings.ToLower(string(r.Code)), r.Term)
	}
	return fmt.Sprintf("     %s %s\n", StyleGreen.Render(fmt.Sprintf("score %d", sp.Score)), Dim(strings.Join(parts, ", ")))
}

// FormatAnalysis renders a standalone entry analysis.
func FormatAnalysis(res analysis.Result) string {
	return RenderBox("Entry Analysis", strings.TrimRight(formatAnalysisBody(res), "\n"))
}

func formatAnalysisBody(res analysis.Result) string {
	var b strings.Builder
	b.WriteString(Header("Analysis") + "\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("PHASE     "), PhaseBadge(res.DominantPhase)))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CONFIDENCE"), Meter(res.PhaseConfidence, 20)))

	scores := make([]string, len(res.PhaseScores))
	for i, s := range res.PhaseScores {
		scores[i] = fmt.Sprintf("%s %d", PhaseStyle(s.Phase).Render(s.Phase), s.Score)
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("SCORES    "), strings.Join(scores, "  ")))
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TONES     "), TagList(res.EmotionalTones)))

	themes := Dim("--")
	if len(res.KeyThemes) > 0 {
		themes = StyleBlue.Render(strings.Join(res.KeyThemes, ", "))
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("THEMES    "), themes))
	b.WriteString(fmt.Sprintf("  %s  %d\n", StyleDim.Render("WORDS     "), res.WordCount))
	return b.String()
}
