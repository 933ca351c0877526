// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package handout

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/pdiddy/mdslides/pkg/types"
)

// PDFWriter writes handouts as A4 PDF documents using the core Helvetica
// font. Text outside code page 1252 is replaced.
type PDFWriter struct{}

func (w PDFWriter) Write(path string, slides []types.SlideRecord, meta types.DeckMeta) error {
	return writeFile(path, func(out io.Writer) error {
		return w.Render(out, slides, meta)
	})
}

// Render writes the handout document to out.
func (PDFWriter) Render(out io.Writer, slides []types.SlideRecord, meta types.DeckMeta) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := documentTitle(meta)

	pdf.SetTitle(title, true)
	pdf.SetCreator("mdslides", true)
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r, g, b := hexRGB(titleColor)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(r, g, b)
	pdf.MultiCell(0, 10, tr(title), "", "C", false)
	if meta.Subtitle != "" {
		pdf.SetFont("Helvetica", "I", 14)
		pdf.MultiCell(0, 8, tr(meta.Subtitle), "", "C", false)
	}
	pdf.Ln(6)

	for _, e := range Entries(slides) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(r, g, b)
		pdf.MultiCell(0, 8, tr(e.Heading), "", "L", false)

		style := ""
		if !e.HasNotes {
			style = "I"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.SetTextColor(0, 0, 0)
		pdf.MultiCell(0, 6, tr(e.Notes), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// hexRGB parses an RRGGBB color. Malformed input yields black.
func hexRGB(hex string) (r, g, b int) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
