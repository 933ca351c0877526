// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns raw slide blocks into slide records: it pulls the
// VISUAL, TEXT and SPEAKER NOTES sections out of each block, resolves the
// slide's content, and normalizes markdown into display text and bullets.
package extract

import (
	"strings"
	"unicode"

	"github.com/pdiddy/mdslides/internal/segment"
	"github.com/pdiddy/mdslides/pkg/types"
)

// Section markers recognized inside a slide block.
const (
	markerVisual = "**VISUAL:**"
	markerText   = "**TEXT:**"
	markerNotes  = "**SPEAKER NOTES:**"
)

// Fields holds the trimmed sections of one slide block. Absent sections are
// empty strings.
type Fields struct {
	Visual string
	Text   string
	Notes  string
}

// Content returns Text when it is non-empty, otherwise Visual.
func (f Fields) Content() string {
	if f.Text != "" {
		return f.Text
	}
	return f.Visual
}

// ExtractFields locates each section marker in block and returns the text up
// to the section's terminator:
//
//	VISUAL         until "**TEXT:", "SPEAKER NOTES:" or end of block
//	TEXT           until "**SPEAKER NOTES:" or end of block
//	SPEAKER NOTES  until a line starting with "---" or end of block
func ExtractFields(block string) Fields {
	return Fields{
		Visual: section(block, markerVisual, visualEnd),
		Text:   section(block, markerText, textEnd),
		Notes:  section(block, markerNotes, notesEnd),
	}
}

// section returns the trimmed text following the first occurrence of marker,
// cut at the offset reported by end.
func section(block, marker string, end func(string) int) string {
	i := strings.Index(block, marker)
	if i < 0 {
		return ""
	}
	rest := strings.TrimLeftFunc(block[i+len(marker):], unicode.IsSpace)
	return strings.TrimSpace(rest[:end(rest)])
}

func visualEnd(s string) int {
	end := firstIndex(s, "**TEXT:")
	if i := strings.Index(s, "SPEAKER NOTES:"); i >= 0 && i < end {
		end = i
		// Cut the bold markers of "**SPEAKER NOTES:**" along with the label.
		if strings.HasSuffix(s[:i], "**") {
			end = i - 2
		}
	}
	return end
}

func textEnd(s string) int {
	return firstIndex(s, "**SPEAKER NOTES:")
}

func notesEnd(s string) int {
	return firstIndex(s, "\n---")
}

// firstIndex returns the index of sep in s, or len(s) when absent.
func firstIndex(s, sep string) int {
	if i := strings.Index(s, sep); i >= 0 {
		return i
	}
	return len(s)
}

// Document is a parsed slide deck.
type Document struct {
	// Preamble is the text before the first slide marker.
	Preamble string

	// Slides lists the slide records in source order.
	Slides []types.SlideRecord
}

// ParseDocument segments markdown and extracts every slide's fields. A
// document without slide markers yields no slides.
func ParseDocument(markdown string) Document {
	seg := segment.Split(markdown)
	doc := Document{
		Preamble: seg.Preamble,
		Slides:   make([]types.SlideRecord, 0, len(seg.Sections)),
	}
	for i, s := range seg.Sections {
		f := ExtractFields(s.Block)
		doc.Slides = append(doc.Slides, types.SlideRecord{
			Index:        i,
			Title:        s.Title,
			Visual:       f.Visual,
			Text:         f.Text,
			SpeakerNotes: f.Notes,
			Content:      f.Content(),
		})
	}
	return doc
}

// Parse returns the slide records of markdown.
func Parse(markdown string) []types.SlideRecord {
	return ParseDocument(markdown).Slides
}
