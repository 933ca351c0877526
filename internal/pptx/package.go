// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Content types and relationship types used by the package.
const (
	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctLayout       = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctMaster       = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctNotesMaster  = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ctNotesSlide   = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps    = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps    = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles  = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCore         = "application/vnd.openxmlformats-package.core-properties+xml"
	ctApp          = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	relBase        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relOfficeDoc   = relBase + "officeDocument"
	relSlide       = relBase + "slide"
	relLayout      = relBase + "slideLayout"
	relMaster      = relBase + "slideMaster"
	relNotesMaster = relBase + "notesMaster"
	relNotesSlide  = relBase + "notesSlide"
	relTheme       = relBase + "theme"
	relPresProps   = relBase + "presProps"
	relViewProps   = relBase + "viewProps"
	relTableStyles = relBase + "tableStyles"
	relApp         = relBase + "extended-properties"
	relCore        = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
)

// part is one file in the package.
type part struct {
	name        string
	contentType string
	data        []byte
}

// relationship is one entry of a .rels part.
type relationship struct {
	id     string
	typ    string
	target string
}

func relsXML(rels []relationship) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, r := range rels {
		fmt.Fprintf(&b, `<Relationship Id="%s" Type="%s" Target="%s"/>`, r.id, r.typ, escape(r.target))
	}
	b.WriteString(`</Relationships>`)
	return []byte(b.String())
}

// relsName returns the relationships part name for a part.
func relsName(name string) string {
	dir, file := path.Split(name)
	return dir + "_rels/" + file + ".rels"
}

// parts renders every part of the package in write order.
func (p *Presentation) parts(now time.Time) []part {
	var out []part
	add := func(name, ct string, data []byte) {
		out = append(out, part{name: name, contentType: ct, data: data})
	}
	addRels := func(owner string, rels []relationship) {
		out = append(out, part{name: relsName(owner), data: relsXML(rels)})
	}

	addRels("", []relationship{
		{"rId1", relOfficeDoc, "ppt/presentation.xml"},
		{"rId2", relCore, "docProps/core.xml"},
		{"rId3", relApp, "docProps/app.xml"},
	})

	add("ppt/presentation.xml", ctPresentation, p.presentationXML())
	presRels := []relationship{{"rId1", relMaster, "slideMasters/slideMaster1.xml"}}
	for i := range p.slides {
		presRels = append(presRels, relationship{
			id: fmt.Sprintf("rId%d", i+2), typ: relSlide, target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	n := len(p.slides) + 2
	presRels = append(presRels,
		relationship{fmt.Sprintf("rId%d", n), relNotesMaster, "notesMasters/notesMaster1.xml"},
		relationship{fmt.Sprintf("rId%d", n+1), relPresProps, "presProps.xml"},
		relationship{fmt.Sprintf("rId%d", n+2), relViewProps, "viewProps.xml"},
		relationship{fmt.Sprintf("rId%d", n+3), relTheme, "theme/theme1.xml"},
		relationship{fmt.Sprintf("rId%d", n+4), relTableStyles, "tableStyles.xml"},
	)
	addRels("ppt/presentation.xml", presRels)

	add("ppt/slideMasters/slideMaster1.xml", ctMaster, masterXML(p.width, p.height, len(p.layouts)))
	var masterRels []relationship
	for i := range p.layouts {
		masterRels = append(masterRels, relationship{
			id: fmt.Sprintf("rId%d", i+1), typ: relLayout, target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i+1),
		})
	}
	masterRels = append(masterRels, relationship{
		id: fmt.Sprintf("rId%d", len(p.layouts)+1), typ: relTheme, target: "../theme/theme1.xml",
	})
	addRels("ppt/slideMasters/slideMaster1.xml", masterRels)

	for i, l := range p.layouts {
		name := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", i+1)
		add(name, ctLayout, layoutXML(l, p.width, p.height))
		addRels(name, []relationship{{"rId1", relMaster, "../slideMasters/slideMaster1.xml"}})
	}

	// The notes page is portrait, with the slide's dimensions swapped.
	add("ppt/notesMasters/notesMaster1.xml", ctNotesMaster, notesMasterXML(p.height, p.width))
	addRels("ppt/notesMasters/notesMaster1.xml", []relationship{{"rId1", relTheme, "../theme/theme2.xml"}})

	for i, s := range p.slides {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		add(name, ctSlide, slideXML(s))
		rels := []relationship{{
			id: "rId1", typ: relLayout, target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", p.layoutNumber(s.layout)),
		}}
		if s.HasNotes() {
			notes := fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", i+1)
			rels = append(rels, relationship{"rId2", relNotesSlide, fmt.Sprintf("../notesSlides/notesSlide%d.xml", i+1)})
			add(notes, ctNotesSlide, notesSlideXML(s))
			addRels(notes, []relationship{
				{"rId1", relNotesMaster, "../notesMasters/notesMaster1.xml"},
				{"rId2", relSlide, fmt.Sprintf("../slides/slide%d.xml", i+1)},
			})
		}
		addRels(name, rels)
	}

	add("ppt/theme/theme1.xml", ctTheme, themeXML("Office Theme"))
	add("ppt/theme/theme2.xml", ctTheme, themeXML("Notes Theme"))
	add("ppt/presProps.xml", ctPresProps, []byte(xmlHeader+presPropsXML))
	add("ppt/viewProps.xml", ctViewProps, []byte(xmlHeader+viewPropsXML))
	add("ppt/tableStyles.xml", ctTableStyles, []byte(xmlHeader+tableStylesXML))
	add("docProps/core.xml", ctCore, p.coreXML(now))
	add("docProps/app.xml", ctApp, p.appXML())

	return append([]part{{name: "[Content_Types].xml", data: contentTypesXML(out)}}, out...)
}

// layoutNumber returns the 1-based position of l in the template. Layouts
// from another presentation fall back to the first layout.
func (p *Presentation) layoutNumber(l *Layout) int {
	for i, candidate := range p.layouts {
		if candidate == l {
			return i + 1
		}
	}
	for i, candidate := range p.layouts {
		if l != nil && candidate.Name == l.Name {
			return i + 1
		}
	}
	return 1
}

func contentTypesXML(parts []part) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	for _, pt := range parts {
		if pt.contentType == "" {
			continue
		}
		fmt.Fprintf(&b, `<Override PartName="/%s" ContentType="%s"/>`, pt.name, pt.contentType)
	}
	b.WriteString(`</Types>`)
	return []byte(b.String())
}

func (p *Presentation) presentationXML() []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pmlNamespaces + ` saveSubsetFonts="1">`)
	fmt.Fprintf(&b, `<p:sldMasterIdLst><p:sldMasterId id="%d" r:id="rId1"/></p:sldMasterIdLst>`, masterID)
	fmt.Fprintf(&b, `<p:notesMasterIdLst><p:notesMasterId r:id="rId%d"/></p:notesMasterIdLst>`, len(p.slides)+2)
	if len(p.slides) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range p.slides {
			fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, firstSlideID+i, i+2)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, p.width, p.height)
	fmt.Fprintf(&b, `<p:notesSz cx="%d" cy="%d"/>`, p.height, p.width)
	b.WriteString(`<p:defaultTextStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr></p:defaultTextStyle>`)
	b.WriteString(`</p:presentation>`)
	return []byte(b.String())
}

func (p *Presentation) coreXML(now time.Time) []byte {
	created := p.props.Created
	if created.IsZero() {
		created = now
	}
	stamp := created.UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escape(p.props.Title))
	if p.props.Subject != "" {
		fmt.Fprintf(&b, `<dc:subject>%s</dc:subject>`, escape(p.props.Subject))
	}
	fmt.Fprintf(&b, `<dc:creator>%s</dc:creator>`, escape(p.props.Creator))
	if len(p.props.Keywords) > 0 {
		fmt.Fprintf(&b, `<cp:keywords>%s</cp:keywords>`, escape(strings.Join(p.props.Keywords, ", ")))
	}
	fmt.Fprintf(&b, `<cp:lastModifiedBy>%s</cp:lastModifiedBy>`, escape(p.props.Creator))
	b.WriteString(`<cp:revision>1</cp:revision>`)
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, stamp)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, stamp)
	b.WriteString(`</cp:coreProperties>`)
	return []byte(b.String())
}

func (p *Presentation) appXML() []byte {
	notes := 0
	for _, s := range p.slides {
		if s.HasNotes() {
			notes++
		}
	}
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">`)
	b.WriteString(`<Application>mdslides</Application><PresentationFormat>On-screen Show (4:3)</PresentationFormat>`)
	fmt.Fprintf(&b, `<Slides>%d</Slides><Notes>%d</Notes><HiddenSlides>0</HiddenSlides>`, len(p.slides), notes)
	b.WriteString(`<AppVersion>16.0000</AppVersion></Properties>`)
	return []byte(b.String())
}

// WriteTo writes the presentation as a .pptx package to w.
func (p *Presentation) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, pt := range p.parts(time.Now()) {
		f, err := zw.Create(pt.name)
		if err != nil {
			return cw.n, fmt.Errorf("creating %s: %w", pt.name, err)
		}
		if _, err := f.Write(pt.data); err != nil {
			return cw.n, fmt.Errorf("writing %s: %w", pt.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("closing package: %w", err)
	}
	return cw.n, nil
}

// Bytes returns the encoded package.
func (p *Presentation) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the presentation to path. The package is written to a
// temporary file in the same directory and renamed into place, so an existing
// file at path is either fully replaced or left untouched.
func (p *Presentation) Save(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after rename

	if _, err := p.WriteTo(tmp); err != nil {
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

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
