// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pptx

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	// pmlNamespaces declares the prefixes used by every PresentationML part.
	pmlNamespaces = `xmlns:a="` + nsA + `" xmlns:r="` + nsR + `" xmlns:p="` + nsP + `"`

	groupShapeProps = `<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/>` +
		`<a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

	masterClrMap = `<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" ` +
		`accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>`

	clrMapOverride = `<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`
)

// escape returns s with XML special characters replaced. Characters that are
// not allowed in XML 1.0 become U+FFFD.
func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// writeXfrm writes an explicit position and size.
func writeXfrm(b *strings.Builder, x, y, cx, cy Length) {
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, x, y, cx, cy)
}

// writePlaceholderRef writes the <p:ph> element binding a shape to a layout
// region.
func writePlaceholderRef(b *strings.Builder, ph Placeholder) {
	switch {
	case ph.Type == PlaceholderBody && ph.Idx != 0:
		fmt.Fprintf(b, `<p:ph idx="%d"/>`, ph.Idx)
	case ph.Idx != 0:
		fmt.Fprintf(b, `<p:ph type="%s" idx="%d"/>`, ph.Type, ph.Idx)
	default:
		fmt.Fprintf(b, `<p:ph type="%s"/>`, ph.Type)
	}
}

// writeTextBody writes a <p:txBody>. bodyPr carries the body properties
// element; an empty frame still gets the one paragraph the schema requires.
func writeTextBody(b *strings.Builder, tf *TextFrame, bodyPr string) {
	b.WriteString(`<p:txBody>`)
	b.WriteString(bodyPr)
	b.WriteString(`<a:lstStyle/>`)
	if tf == nil || len(tf.paragraphs) == 0 {
		b.WriteString(`<a:p><a:endParaRPr lang="en-US" dirty="0"/></a:p>`)
	} else {
		for _, p := range tf.paragraphs {
			writeParagraph(b, p)
		}
	}
	b.WriteString(`</p:txBody>`)
}

// bodyProps returns the <a:bodyPr> for a frame, honoring its wrap setting.
func bodyProps(tf *TextFrame, extra string) string {
	attrs := ""
	if wrap, set := tf.WordWrap(); set {
		if wrap {
			attrs = ` wrap="square"`
		} else {
			attrs = ` wrap="none"`
		}
	}
	if extra == "" {
		return `<a:bodyPr` + attrs + `/>`
	}
	return `<a:bodyPr` + attrs + `>` + extra + `</a:bodyPr>`
}

func writeParagraph(b *strings.Builder, p *Paragraph) {
	b.WriteString(`<a:p>`)
	if p.Level > 0 || p.SpaceAfter > 0 {
		b.WriteString(`<a:pPr`)
		if p.Level > 0 {
			fmt.Fprintf(b, ` lvl="%d"`, p.Level)
		}
		b.WriteString(`>`)
		if p.SpaceAfter > 0 {
			fmt.Fprintf(b, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, centipoints(p.SpaceAfter))
		}
		b.WriteString(`</a:pPr>`)
	}

	rPr := runProps(p.Font)
	for i, line := range strings.Split(p.Text, "\n") {
		if i > 0 {
			fmt.Fprintf(b, `<a:br>%s</a:br>`, rPr)
		}
		if line == "" {
			continue
		}
		fmt.Fprintf(b, `<a:r>%s<a:t>%s</a:t></a:r>`, rPr, escape(line))
	}
	b.WriteString(`<a:endParaRPr lang="en-US" dirty="0"/>`)
	b.WriteString(`</a:p>`)
}

// runProps renders a run's <a:rPr>.
func runProps(f Font) string {
	var b strings.Builder
	b.WriteString(`<a:rPr lang="en-US"`)
	if f.Size > 0 {
		fmt.Fprintf(&b, ` sz="%d"`, centipoints(f.Size))
	}
	if f.Bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0"`)
	if f.Color == "" {
		b.WriteString(`/>`)
		return b.String()
	}
	fmt.Fprintf(&b, `><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`, escape(strings.ToUpper(f.Color)))
	return b.String()
}

// slideXML renders ppt/slides/slideN.xml.
func slideXML(s *Slide) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pmlNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(groupShapeProps)
	for _, sh := range s.shapes {
		writeShape(&b, sh)
	}
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(clrMapOverride)
	b.WriteString(`</p:sld>`)
	return []byte(b.String())
}

func writeShape(b *strings.Builder, sh *Shape) {
	b.WriteString(`<p:sp><p:nvSpPr>`)
	fmt.Fprintf(b, `<p:cNvPr id="%d" name="%s"/>`, sh.id, escape(sh.name))
	if sh.placeholder != nil {
		b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>`)
		writePlaceholderRef(b, *sh.placeholder)
		b.WriteString(`</p:nvPr></p:nvSpPr><p:spPr/>`)
		writeTextBody(b, sh.text, bodyProps(sh.text, ""))
	} else {
		b.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>`)
		writeXfrm(b, sh.x, sh.y, sh.cx, sh.cy)
		b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)
		writeTextBody(b, sh.text, bodyProps(sh.text, `<a:spAutoFit/>`))
	}
	b.WriteString(`</p:sp>`)
}

// notesSlideXML renders ppt/notesSlides/notesSlideN.xml.
func notesSlideXML(s *Slide) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:notes ` + pmlNamespaces + `><p:cSld><p:spTree>`)
	b.WriteString(groupShapeProps)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image Placeholder 1"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1" noRot="1" noChangeAspect="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="sldImg"/></p:nvPr></p:nvSpPr><p:spPr/></p:sp>`)
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes Placeholder 2"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>`)
	writeTextBody(&b, s.notes, `<a:bodyPr/>`)
	b.WriteString(`</p:sp></p:spTree></p:cSld>`)
	b.WriteString(clrMapOverride)
	b.WriteString(`</p:notes>`)
	return []byte(b.String())
}

// layoutXML renders ppt/slideLayouts/slideLayoutN.xml. Placeholder geometry
// is resolved against the presentation's slide size.
func layoutXML(l *Layout, width, height Length) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<p:sldLayout %s type="%s" preserve="1"><p:cSld name="%s"><p:spTree>`,
		pmlNamespaces, l.kind, escape(l.Name))
	b.WriteString(groupShapeProps)
	for i, ph := range l.Placeholders {
		fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/>`, i+2, escape(ph.Name))
		b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>`)
		writePlaceholderRef(&b, ph)
		b.WriteString(`</p:nvPr></p:nvSpPr><p:spPr>`)
		writeXfrm(&b, scale(width, ph.Box.X), scale(height, ph.Box.Y), scale(width, ph.Box.W), scale(height, ph.Box.H))
		b.WriteString(`</p:spPr><p:txBody><a:bodyPr/>`)
		b.WriteString(layoutListStyle(ph.Type))
		fmt.Fprintf(&b, `<a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`, promptText(ph.Type))
	}
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(clrMapOverride)
	b.WriteString(`</p:sldLayout>`)
	return []byte(b.String())
}

// layoutListStyle centers subtitles and turns off their bullets.
func layoutListStyle(t PlaceholderType) string {
	if t == PlaceholderSubtitle {
		return `<a:lstStyle><a:lvl1pPr marL="0" indent="0" algn="ctr"><a:buNone/></a:lvl1pPr></a:lstStyle>`
	}
	return `<a:lstStyle/>`
}

func promptText(t PlaceholderType) string {
	switch t {
	case PlaceholderTitle, PlaceholderCenteredTitle:
		return "Click to edit Master title style"
	case PlaceholderSubtitle:
		return "Click to edit Master subtitle style"
	default:
		return "Click to edit Master text styles"
	}
}

// masterXML renders ppt/slideMasters/slideMaster1.xml. layoutCount layouts
// are referenced as rId1..rIdN.
func masterXML(width, height Length, layoutCount int) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sldMaster ` + pmlNamespaces + `><p:cSld>`)
	b.WriteString(`<p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>`)
	b.WriteString(groupShapeProps)

	masterRegions := []Placeholder{
		{Type: PlaceholderTitle, Name: "Title Placeholder 1", Box: titleBox},
		{Type: PlaceholderBody, Idx: 1, Name: "Text Placeholder 2", Box: bodyBox},
	}
	for i, ph := range masterRegions {
		fmt.Fprintf(&b, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/>`, i+2, ph.Name)
		b.WriteString(`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr><p:nvPr>`)
		if ph.Type == PlaceholderBody {
			b.WriteString(`<p:ph type="body" idx="1"/>`)
		} else {
			b.WriteString(`<p:ph type="title"/>`)
		}
		b.WriteString(`</p:nvPr></p:nvSpPr><p:spPr>`)
		writeXfrm(&b, scale(width, ph.Box.X), scale(height, ph.Box.Y), scale(width, ph.Box.W), scale(height, ph.Box.H))
		b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`)
		fmt.Fprintf(&b, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>%s</a:t></a:r></a:p></p:txBody></p:sp>`,
			promptText(ph.Type))
	}
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(masterClrMap)

	b.WriteString(`<p:sldLayoutIdLst>`)
	for i := 0; i < layoutCount; i++ {
		fmt.Fprintf(&b, `<p:sldLayoutId id="%d" r:id="rId%d"/>`, firstLayoutID+i, i+1)
	}
	b.WriteString(`</p:sldLayoutIdLst>`)
	b.WriteString(masterTextStyles)
	b.WriteString(`</p:sldMaster>`)
	return []byte(b.String())
}

// Slide master and layout IDs share a range that starts at 2^31.
const (
	masterID      = 2147483648
	firstLayoutID = masterID + 1
	firstSlideID  = 256
)

const masterTextStyles = `<p:txStyles>` +
	`<p:titleStyle><a:lvl1pPr algn="ctr" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">` +
	`<a:spcBef><a:spcPct val="0"/></a:spcBef><a:buNone/>` +
	`<a:defRPr sz="4400" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mj-lt"/><a:ea typeface="+mj-ea"/><a:cs typeface="+mj-cs"/></a:defRPr></a:lvl1pPr></p:titleStyle>` +
	`<p:bodyStyle><a:lvl1pPr marL="342900" indent="-342900" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">` +
	`<a:spcBef><a:spcPct val="20000"/></a:spcBef><a:buFont typeface="Arial"/><a:buChar char="&#8226;"/>` +
	`<a:defRPr sz="3200" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr></p:bodyStyle>` +
	`<p:otherStyle><a:defPPr><a:defRPr lang="en-US"/></a:defPPr>` +
	`<a:lvl1pPr marL="0" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">` +
	`<a:defRPr sz="1800" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
	`<a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr></p:otherStyle>` +
	`</p:txStyles>`

// notesMasterXML renders ppt/notesMasters/notesMaster1.xml for a portrait
// notes page of the given size.
func notesMasterXML(width, height Length) []byte {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:notesMaster ` + pmlNamespaces + `><p:cSld>`)
	b.WriteString(`<p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>`)
	b.WriteString(groupShapeProps)

	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Slide Image Placeholder 1"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1" noRot="1" noChangeAspect="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="sldImg" idx="2"/></p:nvPr></p:nvSpPr><p:spPr>`)
	writeXfrm(&b, scale(width, 0.1667), scale(height, 0.0833), scale(width, 0.6667), scale(height, 0.375))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/>` +
		`<a:ln w="12700"><a:solidFill><a:prstClr val="black"/></a:solidFill></a:ln></p:spPr></p:sp>`)

	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="3" name="Notes Placeholder 2"/>` +
		`<p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="body" sz="quarter" idx="3"/></p:nvPr></p:nvSpPr><p:spPr>`)
	writeXfrm(&b, scale(width, 0.1), scale(height, 0.5), scale(width, 0.8), scale(height, 0.4))
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>` +
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>Click to edit Master text styles</a:t></a:r></a:p></p:txBody></p:sp>`)

	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(masterClrMap)
	b.WriteString(`<p:notesStyle><a:lvl1pPr marL="0" algn="l" defTabSz="914400" rtl="0" eaLnBrk="1" latinLnBrk="0" hangingPunct="1">` +
		`<a:defRPr sz="1200" kern="1200"><a:solidFill><a:schemeClr val="tx1"/></a:solidFill>` +
		`<a:latin typeface="+mn-lt"/><a:ea typeface="+mn-ea"/><a:cs typeface="+mn-cs"/></a:defRPr></a:lvl1pPr></p:notesStyle>`)
	b.WriteString(`</p:notesMaster>`)
	return []byte(b.String())
}
