// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package handout writes a speaker-notes handout for a deck: one entry per
// slide with its heading and cleaned notes, as DOCX or PDF.
package handout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdslides/internal/extract"
	"github.com/pdiddy/mdslides/pkg/types"
)

// ErrUnsupportedFormat is returned by ForFormat for an unknown format.
var ErrUnsupportedFormat = errors.New("unsupported handout format")

// NoNotes is the text shown for slides without speaker notes.
const NoNotes = "(no speaker notes)"

// defaultTitle heads the handout when the deck has no title.
const defaultTitle = "Speaker Notes"

// titleColor is the deck's deep blue.
const titleColor = "003366"

// Writer renders a handout document.
type Writer interface {
	// Write renders the handout for slides and writes it to path.
	Write(path string, slides []types.SlideRecord, meta types.DeckMeta) error
}

// ForFormat returns the Writer for format.
func ForFormat(format types.HandoutFormat) (Writer, error) {
	switch types.HandoutFormat(strings.ToLower(string(format))) {
	case types.HandoutDOCX:
		return DOCXWriter{}, nil
	case types.HandoutPDF:
		return PDFWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DefaultPath returns the handout path next to a presentation: the same name
// with the format's extension.
func DefaultPath(presentation string, format types.HandoutFormat) string {
	base := strings.TrimSuffix(presentation, filepath.Ext(presentation))
	return base + "." + strings.ToLower(string(format))
}

// Entry is one slide's section of the handout.
type Entry struct {
	Number  int
	Heading string
	Notes   string
	// HasNotes is false when Notes is the NoNotes placeholder.
	HasNotes bool
}

// Entries returns one entry per slide in deck order.
func Entries(slides []types.SlideRecord) []Entry {
	entries := make([]Entry, len(slides))
	for i, s := range slides {
		e := Entry{Number: i + 1, Heading: fmt.Sprintf("Slide %d", i+1)}
		if s.Title != "" {
			e.Heading += ": " + s.Title
		}
		if notes := extract.CleanMarkdown(s.SpeakerNotes); notes != "" {
			e.Notes, e.HasNotes = notes, true
		} else {
			e.Notes = NoNotes
		}
		entries[i] = e
	}
	return entries
}

func documentTitle(meta types.DeckMeta) string {
	if meta.Title != "" {
		return meta.Title
	}
	return defaultTitle
}

// writeFile renders into a temporary file next to path and renames it into
// place once render succeeds.
func writeFile(path string, render func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	if err := render(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}
