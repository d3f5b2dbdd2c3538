package wikitext

import (
	"regexp"
	"strings"
)

// Markup stripping turns a raw field value into plain text. The rules mirror
// what the wiki renders: link labels survive, decoration does not.

var (
	codeTagPattern       = regexp.MustCompile(`(?s)<code[^>]*>(.*?)</code>`)
	wikilinkLabelPattern = regexp.MustCompile(`\[\[[^|\]]+\|([^\]]+)\]\]`)
	wikilinkBarePattern  = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

	// Templates whose single argument is the rendered content.
	metadataTypePattern = regexp.MustCompile(`(?i)\{\{\s*Metadata\s+type\|([^}]+)\}\}`)
	metadataIDPattern   = regexp.MustCompile(`(?i)\{\{\s*Metadata\s+id\|([^}]*)\}\}`)
	typePattern         = regexp.MustCompile(`(?i)\{\{\s*Type\|([^}]+)\}\}`)
	templatePattern     = regexp.MustCompile(`\{\{[^}]*\}\}`)

	boldItalicPattern = regexp.MustCompile(`'{2,}`)
	cellAttrPattern   = regexp.MustCompile(`^(?:rowspan|colspan)="?\d+"?\|\s*`)
	cellStylePattern  = regexp.MustCompile(`(?i)^style="[^"]*"\|\s*`)
	htmlTagPattern    = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripMarkup removes wiki decoration from text and returns plain prose.
//
// Applied in order: code tags unwrapped, wikilinks reduced to their display
// text, content-bearing templates unwrapped, remaining templates removed,
// bold/italic quotes removed, leading cell attributes removed, HTML tags
// removed, whitespace collapsed and trimmed.
func StripMarkup(text string) string {
	if text == "" {
		return ""
	}

	text = codeTagPattern.ReplaceAllString(text, "$1")
	text = wikilinkLabelPattern.ReplaceAllString(text, "$1")
	text = wikilinkBarePattern.ReplaceAllString(text, "$1")

	text = metadataTypePattern.ReplaceAllString(text, "$1")
	text = metadataIDPattern.ReplaceAllString(text, "$1")
	text = typePattern.ReplaceAllString(text, "$1")
	text = templatePattern.ReplaceAllString(text, "")

	text = boldItalicPattern.ReplaceAllString(text, "")
	text = cellAttrPattern.ReplaceAllString(text, "")
	text = cellStylePattern.ReplaceAllString(text, "")
	text = htmlTagPattern.ReplaceAllString(text, "")

	return normalizeWhitespace(text)
}

// normalizeWhitespace collapses runs of whitespace to single spaces and trims.
func normalizeWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
