// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a slide-deck markdown document into per-slide blocks
// at "## Slide N:" markers.
package segment

import (
	"regexp"
	"strings"
)

// markerPattern matches a slide boundary. The number is a delimiter only;
// slide order comes from document position.
var markerPattern = regexp.MustCompile(`## Slide \d+:`)

// Section is the raw text of one slide and the title taken from its marker.
type Section struct {
	Title string
	Block string
}

// Result holds the segmented document.
type Result struct {
	// Preamble is the text before the first marker. It never becomes a slide.
	Preamble string

	// Sections lists slides in document order. It is empty when the document
	// has no markers.
	Sections []Section
}

// Split segments markdown at every slide marker. A document without markers
// yields no sections and the whole text as preamble.
func Split(markdown string) Result {
	locs := markerPattern.FindAllStringIndex(markdown, -1)
	if len(locs) == 0 {
		return Result{Preamble: markdown}
	}

	titles := make([]string, len(locs))
	for i, loc := range locs {
		titles[i] = markerTitle(markdown[loc[0]:loc[1]])
	}

	blocks := make([]string, len(locs))
	for i, loc := range locs {
		end := len(markdown)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks[i] = markdown[loc[1]:end]
	}

	res := Result{
		Preamble: markdown[:locs[0][0]],
		Sections: make([]Section, len(blocks)),
	}
	for i, block := range blocks {
		res.Sections[i] = Section{Title: titleAt(titles, i), Block: block}
	}
	return res
}

// Titles returns the marker titles of markdown in document order.
func Titles(markdown string) []string {
	matches := markerPattern.FindAllString(markdown, -1)
	titles := make([]string, len(matches))
	for i, m := range matches {
		titles[i] = markerTitle(m)
	}
	return titles
}

// markerTitle strips the literal "## Slide " prefix and colons from a marker.
func markerTitle(marker string) string {
	t := strings.Replace(marker, "## Slide ", "", 1)
	t = strings.ReplaceAll(t, ":", "")
	return strings.TrimSpace(t)
}

// titleAt tolerates more blocks than titles by returning an empty title.
func titleAt(titles []string, i int) string {
	if i < len(titles) {
		return titles[i]
	}
	return ""
}
