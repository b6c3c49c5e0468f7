package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Output formats accepted by the CLI subcommands.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatModules formats the catalog as JSON
func (f *Formatter) FormatModules(modules []ModuleDTO) error {
	return f.encode(modules)
}

// FormatGlossary formats a glossary result as JSON
func (f *Formatter) FormatGlossary(result GlossaryDTO) error {
	return f.encode(result)
}

// FormatGlossaryTable writes one aligned "TERM  DEFINITION" row per entry.
// Column width is measured in terminal cells so wide runes stay aligned.
func (f *Formatter) FormatGlossaryTable(result GlossaryDTO) error {
	if len(result.Terms) == 0 {
		_, err := fmt.Fprintf(f.writer, "No terms match %q.\n", result.Query)
		return err
	}

	termWidth := runewidth.StringWidth("TERM")
	for _, e := range result.Terms {
		termWidth = max(termWidth, runewidth.StringWidth(e.Term))
	}

	var sb strings.Builder
	writeRow := func(term, def string) {
		sb.WriteString(runewidth.FillRight(term, termWidth))
		sb.WriteString("  ")
		sb.WriteString(def)
		sb.WriteString("\n")
	}

	writeRow("TERM", "DEFINITION")
	for _, e := range result.Terms {
		writeRow(e.Term, e.Definition)
	}

	_, err := io.WriteString(f.writer, sb.String())
	return err
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
