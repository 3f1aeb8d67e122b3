package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/spiralogic/internal/domain"
	"github.com/alexanderramin/spiralogic/internal/repository"
)

// FormatEventList renders recorded suggestion events, newest first.
func FormatEventList(events []*domain.SuggestionEvent, now time.Time) string {
	headers := []string{"WHEN", "USER", "PHASE", "TONES", "PROMPTS", "SOURCE"}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			Dim(HumanTimestampFrom(e.Timestamp, now)),
			e.UserID,
			PhaseBadge(e.PhaseDetected),
			TagList(e.EmotionalTones),
			fmt.Sprintf("%d", e.PromptsSuggested),
			Dim(e.RetrievalTier),
		})
	}
	return RenderBox("Recent Suggestions", strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatPhaseCounts renders a bar per phase scaled to the largest count.
func FormatPhaseCounts(counts []repository.PhaseCount) string {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	var b strings.Builder
	for _, c := range counts {
		ratio := 0.0
		if total > 0 {
			ratio = float64(c.Count) / float64(total)
		}
		b.WriteString(fmt.Sprintf("%-8s %s  %s\n", PhaseStyle(c.Phase).Render(c.Phase), Meter(ratio, 20), Dim(fmt.Sprintf("(%d)", c.Count))))
	}
	return RenderBox("Phases Detected", strings.TrimRight(b.String(), "\n"))
}
