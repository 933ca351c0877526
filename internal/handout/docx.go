// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handout

import (
	"fmt"
	"io"

	"github.com/fumiama/go-docx"

	"github.com/pdiddy/mdslides/pkg/types"
)

// Run sizes in half-points.
const (
	docxTitleSize   = "40"
	docxHeadingSize = "28"
	docxNotesSize   = "22"
	docxMetaSize    = "20"
)

// DOCXWriter writes handouts as Word documents.
type DOCXWriter struct{}

func (w DOCXWriter) Write(path string, slides []types.SlideRecord, meta types.DeckMeta) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Render(out, slides, meta)
	})
}

// Render writes the handout document to out.
func (DOCXWriter) Render(out io.Writer, slides []types.SlideRecord, meta types.DeckMeta) error {
	doc := docx.New().WithDefaultTheme()

	title := doc.AddParagraph().Justification("center")
	title.AddText(documentTitle(meta)).Size(docxTitleSize).Bold().Color(titleColor)
	if meta.Subtitle != "" {
		doc.AddParagraph().Justification("center").AddText(meta.Subtitle).Size(docxHeadingSize).Italic()
	}
	if meta.Author != "" {
		doc.AddParagraph().Justification("center").AddText(meta.Author).Size(docxMetaSize)
	}

	for _, e := range Entries(slides) {
		doc.AddParagraph().AddText(e.Heading).Size(docxHeadingSize).Bold().Color(titleColor)
		run := doc.AddParagraph().AddText(e.Notes).Size(docxNotesSize)
		if !e.HasNotes {
			run.Italic()
		}
	}

	// Section properties close the body.
	doc.WithA4Page()
	if _, err := doc.WriteTo(out); err != nil {
		return fmt.Errorf("writing docx: %w", err)
	}
	return nil
}
