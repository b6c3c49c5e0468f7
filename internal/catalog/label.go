package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var labelReplacer = strings.NewReplacer("-", " ", "_", " ", ".", " ")

// Label derives a human-readable label from a key: separators become spaces
// and each word is title-cased ("berth-planning" -> "Berth Planning").
func Label(key Key) string {
	words := strings.Fields(labelReplacer.Replace(string(key)))
	if len(words) == 0 {
		return ""
	}
	return cases.Title(language.English).String(strings.Join(words, " "))
}
