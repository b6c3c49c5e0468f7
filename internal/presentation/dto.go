package presentation

import (
	"github.com/zjrosen/berth/internal/catalog"
	"github.com/zjrosen/berth/internal/glossary"
)

// ModuleDTO represents a catalog entry for presentation
type ModuleDTO struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Placeholder bool   `json:"placeholder"`
	File        string `json:"file,omitempty"` // Markdown source within the content directory
}

// GlossaryDTO represents a glossary search result
type GlossaryDTO struct {
	Query   string             `json:"query"`
	Total   int                `json:"total"`
	Matches int                `json:"matches"`
	Terms   []GlossaryEntryDTO `json:"terms"` // always present, in term order
}

// GlossaryEntryDTO represents a single term and its definition
type GlossaryEntryDTO struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// FromCatalogEntry converts a catalog entry to a DTO
func FromCatalogEntry(e catalog.Entry) ModuleDTO {
	dto := ModuleDTO{
		Key:         e.Key.String(),
		Label:       e.Label,
		Placeholder: e.Placeholder,
	}
	if p, ok := e.Provider.(*catalog.MarkdownProvider); ok {
		dto.File = p.Path()
	}
	return dto
}

// FromCatalogEntries converts catalog entries to DTOs, keeping catalog order
func FromCatalogEntries(entries []catalog.Entry) []ModuleDTO {
	dtos := make([]ModuleDTO, len(entries))
	for i, e := range entries {
		dtos[i] = FromCatalogEntry(e)
	}
	return dtos
}

// FromGlossaryResult converts a search result to a DTO
func FromGlossaryResult(r glossary.Result) GlossaryDTO {
	terms := make([]GlossaryEntryDTO, len(r.Entries))
	for i, e := range r.Entries {
		terms[i] = GlossaryEntryDTO{Term: e.Term, Definition: e.Definition}
	}
	return GlossaryDTO{
		Query:   r.Query,
		Total:   r.Total,
		Matches: len(r.Entries),
		Terms:   terms,
	}
}
