// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package build

import (
	"fmt"
	"time"

	"github.com/pdiddy/mdslides/internal/pptx"
	"github.com/pdiddy/mdslides/pkg/types"
)

// PPTXDeck adapts a pptx.Presentation to Deck.
type PPTXDeck struct {
	pres *pptx.Presentation
	now  func() time.Time
}

// NewPPTXDeck returns a Deck backed by a new presentation using the built-in
// template.
func NewPPTXDeck() *PPTXDeck {
	return &PPTXDeck{pres: pptx.New(), now: time.Now}
}

// Presentation returns the underlying presentation.
func (d *PPTXDeck) Presentation() *pptx.Presentation {
	return d.pres
}

func (d *PPTXDeck) SetCanvasSize(width, height float64) {
	d.pres.SetSize(pptx.Inches(width), pptx.Inches(height))
}

func (d *PPTXDeck) SetMetadata(meta types.DeckMeta) {
	cp := d.pres.CoreProperties()
	cp.Title = meta.Title
	cp.Subject = meta.Subject
	if cp.Subject == "" {
		cp.Subject = meta.Subtitle
	}
	if meta.Author != "" {
		cp.Creator = meta.Author
	}
	cp.Keywords = meta.Keywords
	cp.Created = d.now()
	d.pres.SetCoreProperties(cp)
}

func (d *PPTXDeck) Layouts() []string {
	layouts := d.pres.Layouts()
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = l.Name
	}
	return names
}

func (d *PPTXDeck) AddSlide(layout string) (Slide, error) {
	l, ok := d.pres.LayoutByName(layout)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
	return &pptxSlide{slide: d.pres.AddSlide(l)}, nil
}

func (d *PPTXDeck) Save(path string) error {
	return d.pres.Save(path)
}

type pptxSlide struct {
	slide *pptx.Slide
}

func (s *pptxSlide) TitleRegion() (TextFrame, bool) {
	sh := s.slide.Title()
	if sh == nil {
		return nil, false
	}
	return pptxFrame{sh.TextFrame()}, true
}

func (s *pptxSlide) BodyRegion() (TextFrame, bool) {
	sh := s.slide.Placeholder(1)
	if sh == nil {
		return nil, false
	}
	return pptxFrame{sh.TextFrame()}, true
}

func (s *pptxSlide) AddTextbox(box Box) TextFrame {
	sh := s.slide.AddTextbox(pptx.Inches(box.X), pptx.Inches(box.Y), pptx.Inches(box.W), pptx.Inches(box.H))
	return pptxFrame{sh.TextFrame()}
}

func (s *pptxSlide) NotesRegion() TextFrame {
	return pptxFrame{s.slide.Notes()}
}

type pptxFrame struct {
	tf *pptx.TextFrame
}

func (f pptxFrame) Clear()                { f.tf.Clear() }
func (f pptxFrame) SetWordWrap(wrap bool) { f.tf.SetWordWrap(wrap) }
func (f pptxFrame) SetText(text string)   { f.tf.SetText(text) }

func (f pptxFrame) AddParagraph(text string, style TextStyle) {
	p := f.tf.AddParagraph()
	p.Text = text
	p.Font = pptx.Font{Size: style.Size, Bold: style.Bold, Color: style.Color}
	p.SpaceAfter = style.SpaceAfter
}
