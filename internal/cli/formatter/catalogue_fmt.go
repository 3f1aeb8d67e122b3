package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/spiralogic/internal/app"
	"github.com/alexanderramin/spiralogic/internal/domain"
)

// FormatPromptList renders the prompt catalogue as a table.
func FormatPromptList(prompts []*domain.Prompt) string {
	headers := []string{"ID", "PHASE", "PROMPT", "TAGS"}
	rows := make([][]string, 0, len(prompts))
	for _, p := range prompts {
		rows = append(rows, []string{
			TruncID(p.ID),
			PhaseBadge(p.Phase),
			StyleFg.Render(p.Text),
			TagList(p.ContextTags),
		})
	}
	return RenderBox(fmt.Sprintf("Prompts (%d)", len(prompts)), strings.TrimRight(RenderTable(headers, rows), "\n"))
}

// FormatImportResult summarizes an import, phases in name order.
func FormatImportResult(res *app.ImportResult) string {
	phases := make([]string, 0, len(res.ByPhase))
	for phase := range res.ByPhase {
		phases = append(phases, phase)
	}
	sort.Strings(phases)

	parts := make([]string, len(phases))
	for i, phase := range phases {
		parts[i] = fmt.Sprintf("%s %d", PhaseStyle(phase).Render(phase), res.ByPhase[phase])
	}
	return fmt.Sprintf("%s %d prompts  %s", StyleGreen.Render("✔ Imported"), res.Imported, Dim(strings.Join(parts, ", ")))
}
