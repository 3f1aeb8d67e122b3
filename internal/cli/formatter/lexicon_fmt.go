package formatter

import (
	"strings"

	"github.com/alexanderramin/spiralogic/internal/lexicon"
)

// FormatLexicons renders the phase and tone lexicons and the stop words.
func FormatLexicons(lex lexicon.Lexicons) string {
	var b strings.Builder

	b.WriteString(Header("Phases") + "\n")
	b.WriteString(RenderTable([]string{"PHASE", "TRIGGERS"}, categoryRows(lex.Phases, true)))
	b.WriteString("\n" + Header("Tones") + "\n")
	b.WriteString(RenderTable([]string{"TONE", "TRIGGERS"}, categoryRows(lex.Tones, false)))
	b.WriteString("\n" + Header("Stop Words") + "\n")
	b.WriteString(Dim(strings.Join(lex.StopWords.Words(), " ")))

	return RenderBox("Lexicons", b.String())
}

func categoryRows(l *lexicon.Lexicon, phases bool) [][]string {
	cats := l.Categories()
	rows := make([][]string, len(cats))
	for i, c := range cats {
		name := StyleBold.Render(c.Name)
		if phases {
			name = PhaseStyle(c.Name).Render(c.Name)
		}
		rows[i] = []string{name, Dim(strings.Join(c.Triggers(), ", "))}
	}
	return rows
}
