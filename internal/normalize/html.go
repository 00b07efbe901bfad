package normalize

import (
	"strings"

	"golang.org/x/net/html"
)

// TextMode selects how HTMLToText treats whitespace and line breaks.
type TextMode int

const (
	// ModeCollapse drops all tags and collapses whitespace runs to single
	// spaces (meet-summary path).
	ModeCollapse TextMode = iota
	// ModeKeepBreaks converts <br>-family tags to newlines and preserves
	// them (row-dialect summary path).
	ModeKeepBreaks
)

// HTMLToText converts a small HTML snippet into plain text. Entities are
// unescaped and tags dropped; ModeKeepBreaks turns <br> into newlines.
func HTMLToText(raw string, mode TextMode) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(raw))

	var b strings.Builder

loop:
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			// EOF or malformed input: keep whatever text was collected.
			break loop
		case html.TextToken:
			b.Write(tokenizer.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if mode == ModeKeepBreaks {
				name, _ := tokenizer.TagName()
				if string(name) == "br" {
					b.WriteByte('\n')
				}
			}
		}
	}

	text := b.String()

	if mode == ModeCollapse {
		return strings.Join(strings.Fields(text), " ")
	}

	return strings.TrimSpace(text)
}
