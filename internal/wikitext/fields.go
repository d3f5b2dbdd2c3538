package wikitext

import (
	"regexp"
	"strings"
)

// Field extraction turns one RawBlock into a FieldSet.
//
// A field marker is a line of the form |key=value. The value continues across
// following lines until the next marker, a blank line, a table control line,
// or block end. The blank-line terminator is deliberately stricter than
// key-or-block-end: blocks often carry free prose paragraphs after their
// field list, and a value must not swallow them. All values pass through
// StripMarkup. Unknown keys are kept verbatim so new wiki fields survive a
// round trip without a code change; missing required fields are simply absent
// from the set, never an error.

var fieldMarkerPattern = regexp.MustCompile(`^\|\s*([A-Za-z][A-Za-z0-9_ -]*?)\s*=\s*(.*)$`)

// RequiredFields are the field names a complete record must carry.
var RequiredFields = []string{"meaning", "type"}

// ExtractFields parses the block's field markers into a FieldSet.
func ExtractFields(block RawBlock) *FieldSet {
	fs := NewFieldSet()

	var key string
	var value []string

	commit := func() {
		if key == "" {
			return
		}
		fs.Set(key, StripMarkup(strings.Join(value, " ")))
		key = ""
		value = nil
	}

	for _, line := range strings.Split(block.Text, "\n") {
		stripped := strings.TrimSpace(line)

		if m := fieldMarkerPattern.FindStringSubmatch(stripped); m != nil {
			commit()
			key = m[1]
			value = []string{m[2]}
			continue
		}

		// Table furniture and blank lines end the current value;
		// anything else is a continuation.
		if key != "" {
			if stripped == "" || isTableControl(stripped) {
				commit()
				continue
			}
			value = append(value, stripped)
		}
	}
	commit()

	return fs
}

// IsComplete reports whether fs carries every required field.
func IsComplete(fs *FieldSet) bool {
	for _, req := range RequiredFields {
		if !fs.Has(req) {
			return false
		}
	}
	return true
}

// isTableControl matches wikitable structure lines that never carry a value.
func isTableControl(line string) bool {
	return strings.HasPrefix(line, "|-") ||
		strings.HasPrefix(line, "|}") ||
		strings.HasPrefix(line, "{|") ||
		strings.HasPrefix(line, "!")
}

// normalizeKey lowercases and canonicalizes a field name for map lookup.
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}
