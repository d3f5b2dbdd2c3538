package wikitext

import (
	"regexp"
	"strings"
)

// Splitter partitions a raw markup document into ordered entity blocks.
//
// A new block begins at a section heading (=== Name ===) seen at balanced
// nesting depth. Headings inside an open template ({{ }}), wikilink ([[ ]])
// or table ({| |}) are part of the surrounding block, not boundaries.
// Trailing content after the last heading belongs to the last block.
type Splitter struct {
	depth int
}

// NewSplitter creates a splitter. A splitter instance is single-use state for
// one document; Split resets it.
func NewSplitter() *Splitter {
	return &Splitter{}
}

var headingPattern = regexp.MustCompile(`^===\s*(.+?)\s*===\s*$`)

// Split partitions text into RawBlocks in source order.
//
// Content before the first heading becomes a block only if it carries at
// least one field marker; bare prose preambles are skipped. If nesting depth
// never returns to zero by document end, the final block is emitted with
// Malformed set rather than returning an error.
func (s *Splitter) Split(text string) []RawBlock {
	s.depth = 0

	var blocks []RawBlock
	var current []string
	heading := ""
	started := false

	flush := func(malformed bool) {
		body := strings.Join(current, "\n")
		if !started && !hasFieldMarker(current) {
			// Prose preamble with no extractable fields.
			current = nil
			return
		}
		blocks = append(blocks, RawBlock{
			Ordinal:   len(blocks),
			Heading:   heading,
			Text:      body,
			Malformed: malformed,
		})
		current = nil
	}

	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)

		if s.depth == 0 {
			if m := headingPattern.FindStringSubmatch(stripped); m != nil {
				// An open heading flushes even with no lines under it, so
				// a contentless entity still gets a block.
				if len(current) > 0 || started {
					flush(false)
				}
				heading = normalizeWhitespace(m[1])
				started = true
				continue
			}
		}

		s.depth += lineDepthDelta(line)
		if s.depth < 0 {
			// Stray closer; clamp so one bad line cannot swallow the
			// rest of the document.
			s.depth = 0
		}
		current = append(current, line)
	}

	if len(current) > 0 || started {
		flush(s.depth != 0)
	}

	return blocks
}

// lineDepthDelta returns the net nesting depth change contributed by line.
// Recognized delimiter pairs: {{ }}, [[ ]], {| |}.
func lineDepthDelta(line string) int {
	delta := 0
	for i := 0; i+1 < len(line); {
		pair := line[i : i+2]
		switch pair {
		case "{{", "[[", "{|":
			delta++
			i += 2
		case "}}", "]]", "|}":
			delta--
			i += 2
		default:
			i++
		}
	}
	return delta
}

// hasFieldMarker reports whether any line looks like a |key=value marker.
func hasFieldMarker(lines []string) bool {
	for _, line := range lines {
		if fieldMarkerPattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
