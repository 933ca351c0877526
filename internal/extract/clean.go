// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// cleanRule rewrites one kind of inline markdown syntax.
type cleanRule struct {
	pattern *regexp.Regexp
	repl    string
}

// cleanRules run in order: emphasis from widest to narrowest, then links,
// then code fences.
var cleanRules = []cleanRule{
	{regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), "$1"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "$1"},
	{regexp.MustCompile(`\*(.+?)\*`), "$1"},
	{regexp.MustCompile(`__(.+?)__`), "$1"},
	{regexp.MustCompile(`_(.+?)_`), "$1"},
	{regexp.MustCompile(`\[(.+?)\]\(.+?\)`), "$1"},
	{regexp.MustCompile("```\\w*\\n"), ""},
	{regexp.MustCompile("```"), ""},
}

// CleanMarkdown strips emphasis, links and code-fence delimiters from text,
// keeping the enclosed text, and trims the result. Other markdown (headings,
// emoji, list markers) passes through unchanged.
//
// The rules are applied until the text stops changing, so removing a fence
// line that joins two halves of an emphasis span still yields plain text and
// CleanMarkdown(CleanMarkdown(x)) == CleanMarkdown(x).
func CleanMarkdown(text string) string {
	for {
		next := cleanOnce(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanOnce(text string) string {
	for _, r := range cleanRules {
		text = r.pattern.ReplaceAllString(text, r.repl)
	}
	return strings.TrimSpace(text)
}

// bulletPrefixes are list markers stripped from the start of a bullet line.
var bulletPrefixes = []string{"- ", "* ", "• "}

// ExtractBulletPoints returns one cleaned entry per displayable line of text,
// in source order. List markers ("- ", "* ", "• ") are stripped; other
// non-empty lines are kept whole; blank lines and lines starting with "#" are
// dropped, as are entries that clean to nothing.
func ExtractBulletPoints(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if item, ok := stripBulletPrefix(line); ok {
			line = item
		} else if strings.HasPrefix(line, "#") {
			continue
		}
		if b := CleanMarkdown(line); b != "" {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

func stripBulletPrefix(line string) (string, bool) {
	for _, p := range bulletPrefixes {
		if strings.HasPrefix(line, p) {
			return line[len(p):], true
		}
	}
	return line, false
}

// Truncate returns the first n characters of s.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
