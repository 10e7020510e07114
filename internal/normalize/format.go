package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// FormatName title-cases a free-text record name for display ("hdfc top
// 100" -> "HDFC Top 100" stays wrong either way, but "emergency fund" ->
// "Emergency Fund"). Short tokens are kept upper-case since they are
// usually acronyms. Display-only: stored records keep the user's text.
func FormatName(raw string) string {
	words := strings.Fields(strings.TrimSpace(raw))
	for i, word := range words {
		if len(word) > 3 {
			words[i] = titleCaser.String(strings.ToLower(word))
		} else {
			words[i] = strings.ToUpper(word)
		}
	}
	return strings.Join(words, " ")
}
