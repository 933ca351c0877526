// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the mdslides pipeline:
// the slide records produced by parsing, the deck metadata read from the
// preamble, and the configuration consumed by every stage.
package types

// SlideRecord is one parsed slide. Records are created in a single batch by
// the parser, read by the document builder, and discarded after the
// presentation is written.
type SlideRecord struct {
	// Index is the slide's rank in the deck, starting at 0.
	Index int `json:"index" yaml:"index"`

	// Title is the text captured from the slide marker. It may be empty.
	Title string `json:"title" yaml:"title"`

	// Visual is the **VISUAL:** section, trimmed.
	Visual string `json:"visual,omitempty" yaml:"visual,omitempty"`

	// Text is the **TEXT:** section, trimmed.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// SpeakerNotes is the **SPEAKER NOTES:** section, trimmed.
	SpeakerNotes string `json:"speaker_notes,omitempty" yaml:"speaker_notes,omitempty"`

	// Content is Text when non-empty, otherwise Visual. It is resolved once
	// at parse time.
	Content string `json:"content" yaml:"content"`
}

// IsTitleSlide reports whether the record is the first slide of the deck.
func (r SlideRecord) IsTitleSlide() bool {
	return r.Index == 0
}

// HasNotes reports whether the slide carries speaker notes.
func (r SlideRecord) HasNotes() bool {
	return r.SpeakerNotes != ""
}

// DeckMeta holds document-level properties read from the text that precedes
// the first slide marker.
type DeckMeta struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Subject  string   `json:"subject,omitempty" yaml:"subject,omitempty"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}
