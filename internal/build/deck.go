// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build maps parsed slide records onto a presentation. It depends
// only on the Deck interface; NewPPTXDeck supplies the .pptx implementation.
package build

import (
	"errors"

	"github.com/pdiddy/mdslides/pkg/types"
)

// ErrUnknownLayout is returned when a configured layout name is not offered
// by the deck's template.
var ErrUnknownLayout = errors.New("unknown slide layout")

// TextStyle is the run and paragraph formatting applied to one paragraph.
// Zero fields leave the template's formatting in place.
type TextStyle struct {
	Size       float64 // points
	Bold       bool
	Color      string // RRGGBB
	SpaceAfter float64 // points
}

// Box is a rectangle on the slide in inches.
type Box struct {
	X, Y, W, H float64
}

// TextFrame is an editable block of paragraphs.
type TextFrame interface {
	Clear()
	SetWordWrap(wrap bool)
	AddParagraph(text string, style TextStyle)
	// SetText replaces the content with plain text, one paragraph per line.
	SetText(text string)
}

// Slide is one slide created from a layout.
type Slide interface {
	// TitleRegion returns the title placeholder, if the layout has one.
	TitleRegion() (TextFrame, bool)
	// BodyRegion returns placeholder index 1, if the layout has one.
	BodyRegion() (TextFrame, bool)
	AddTextbox(box Box) TextFrame
	NotesRegion() TextFrame
}

// Deck is a presentation under construction.
type Deck interface {
	SetCanvasSize(width, height float64)
	SetMetadata(meta types.DeckMeta)
	// Layouts lists the layout names the template offers.
	Layouts() []string
	AddSlide(layout string) (Slide, error)
	Save(path string) error
}
