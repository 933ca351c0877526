// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pptx builds PowerPoint (.pptx) presentations in memory and writes
// them as Office Open XML packages. It covers what a text-only deck needs:
// one slide master with a fixed set of layouts, formatted text in placeholders
// and text boxes, and speaker notes.
package pptx

import (
	"fmt"
	"strings"
	"time"
)

// CoreProperties are the document properties stored in docProps/core.xml.
type CoreProperties struct {
	Title    string
	Subject  string
	Creator  string
	Keywords []string
	Created  time.Time
}

// Presentation is an in-memory deck.
type Presentation struct {
	width   Length
	height  Length
	layouts []*Layout
	slides  []*Slide
	props   CoreProperties
}

// New returns an empty 10 x 7.5 inch presentation using the built-in
// template.
func New() *Presentation {
	return &Presentation{
		width:   Inches(10),
		height:  Inches(7.5),
		layouts: defaultLayouts(),
		props:   CoreProperties{Creator: "mdslides"},
	}
}

// SetSize sets the slide width and height.
func (p *Presentation) SetSize(width, height Length) {
	p.width, p.height = width, height
}

// Size returns the slide width and height.
func (p *Presentation) Size() (width, height Length) {
	return p.width, p.height
}

// Layouts returns the template's layouts in package order.
func (p *Presentation) Layouts() []*Layout {
	return p.layouts
}

// LayoutByName returns the layout with the given name.
func (p *Presentation) LayoutByName(name string) (*Layout, bool) {
	for _, l := range p.layouts {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// SetCoreProperties replaces the document properties. A zero Created time is
// filled in when the package is written.
func (p *Presentation) SetCoreProperties(cp CoreProperties) {
	p.props = cp
}

// CoreProperties returns the document properties.
func (p *Presentation) CoreProperties() CoreProperties {
	return p.props
}

// Slides returns the slides in presentation order.
func (p *Presentation) Slides() []*Slide {
	return p.slides
}

// AddSlide appends a slide using layout. Every placeholder of the layout is
// instantiated on the slide with an empty text frame.
func (p *Presentation) AddSlide(layout *Layout) *Slide {
	s := &Slide{layout: layout, nextID: 2}
	for i := range layout.Placeholders {
		ph := layout.Placeholders[i]
		s.addShape(&Shape{name: ph.Name, placeholder: &ph, text: &TextFrame{}})
	}
	p.slides = append(p.slides, s)
	return s
}

// Slide is one slide of a presentation.
type Slide struct {
	layout *Layout
	shapes []*Shape
	notes  *TextFrame
	nextID int
}

// Layout returns the layout the slide was created from.
func (s *Slide) Layout() *Layout {
	return s.layout
}

// Shapes returns the slide's shapes in drawing order.
func (s *Slide) Shapes() []*Shape {
	return s.shapes
}

// Title returns the slide's title placeholder, or nil when the layout has no
// title region.
func (s *Slide) Title() *Shape {
	for _, sh := range s.shapes {
		if sh.placeholder != nil && sh.placeholder.Type.IsTitle() {
			return sh
		}
	}
	return nil
}

// Placeholder returns the placeholder shape with the given index, or nil.
func (s *Slide) Placeholder(idx int) *Shape {
	for _, sh := range s.shapes {
		if sh.placeholder != nil && sh.placeholder.Idx == idx {
			return sh
		}
	}
	return nil
}

// AddTextbox places a free-floating text box on the slide.
func (s *Slide) AddTextbox(x, y, cx, cy Length) *Shape {
	sh := &Shape{
		x: x, y: y, cx: cx, cy: cy,
		text: &TextFrame{},
	}
	s.addShape(sh)
	sh.name = fmt.Sprintf("TextBox %d", sh.id-1)
	return sh
}

// Notes returns the slide's speaker-notes text frame, creating the notes
// page on first use.
func (s *Slide) Notes() *TextFrame {
	if s.notes == nil {
		s.notes = &TextFrame{}
	}
	return s.notes
}

// HasNotes reports whether a notes page exists for the slide.
func (s *Slide) HasNotes() bool {
	return s.notes != nil
}

func (s *Slide) addShape(sh *Shape) {
	sh.id = s.nextID
	s.nextID++
	s.shapes = append(s.shapes, sh)
}

// Shape is a placeholder or text box on a slide.
type Shape struct {
	id          int
	name        string
	placeholder *Placeholder

	// Position and size; used by text boxes only. Placeholders inherit
	// their geometry from the layout.
	x, y, cx, cy Length

	text *TextFrame
}

// ID returns the shape's identifier, unique within its slide.
func (sh *Shape) ID() int { return sh.id }

// Name returns the shape's display name.
func (sh *Shape) Name() string { return sh.name }

// Placeholder returns the layout region the shape is bound to.
func (sh *Shape) Placeholder() (Placeholder, bool) {
	if sh.placeholder == nil {
		return Placeholder{}, false
	}
	return *sh.placeholder, true
}

// Bounds returns a text box's position and size.
func (sh *Shape) Bounds() (x, y, cx, cy Length) {
	return sh.x, sh.y, sh.cx, sh.cy
}

// TextFrame returns the shape's text.
func (sh *Shape) TextFrame() *TextFrame { return sh.text }

// Font is run-level character formatting. Zero values inherit from the
// layout.
type Font struct {
	// Size in points.
	Size float64
	Bold bool
	// Color as six hex digits, e.g. "003366".
	Color string
}

// Paragraph is one paragraph of a text frame. Text may contain line breaks.
type Paragraph struct {
	Text string
	Font Font
	// SpaceAfter in points; zero inherits.
	SpaceAfter float64
	Level      int
}

// TextFrame holds the paragraphs of a shape or notes page.
type TextFrame struct {
	paragraphs []*Paragraph
	wrap       *bool
}

// Clear removes all paragraphs.
func (tf *TextFrame) Clear() {
	tf.paragraphs = nil
}

// SetWordWrap controls whether text wraps at the shape's width.
func (tf *TextFrame) SetWordWrap(wrap bool) {
	tf.wrap = &wrap
}

// WordWrap returns the wrap setting and whether it was set explicitly.
func (tf *TextFrame) WordWrap() (wrap, set bool) {
	if tf.wrap == nil {
		return false, false
	}
	return *tf.wrap, true
}

// AddParagraph appends an empty paragraph and returns it.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.paragraphs = append(tf.paragraphs, p)
	return p
}

// SetText replaces the frame's content with one paragraph per line of text.
func (tf *TextFrame) SetText(text string) {
	tf.Clear()
	for _, line := range strings.Split(text, "\n") {
		tf.AddParagraph().Text = strings.TrimSuffix(line, "\r")
	}
}

// Paragraphs returns the frame's paragraphs.
func (tf *TextFrame) Paragraphs() []*Paragraph {
	return tf.paragraphs
}

// Text returns the paragraphs joined by newlines.
func (tf *TextFrame) Text() string {
	lines := make([]string, len(tf.paragraphs))
	for i, p := range tf.paragraphs {
		lines[i] = p.Text
	}
	return strings.Join(lines, "\n")
}
