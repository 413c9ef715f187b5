package pm

import (
	"regexp"
	"strings"
)

// sgr matches one ANSI SGR styling sequence. pnpm colorizes its WARN
// badge, so the header pattern interleaves these between the literal
// tokens instead of stripping styling up front.
const sgr = `\x1b\[[0-9;]*m`

// gap matches the space between two logical tokens: styling sequences
// and whitespace interleave freely there (the styled badge emits
// "WARN <reset> <color>Issues...").
const gap = `(?:` + sgr + `|\s)`

// peerDepHeader recognizes the first line of pnpm's peer-dependency
// warning block, with or without styling.
var peerDepHeader = regexp.MustCompile(
	`^` + gap + `*WARN` + gap + `+Issues with peer dependencies`,
)

var sgrSeq = regexp.MustCompile(sgr)

// LineFilter drops pnpm's multi-line peer-dependency warning block from a
// stdout stream and passes every other line through untouched. The block
// starts at the warning header and ends at the first blank line, which is
// also dropped. One LineFilter serves exactly one stream; it holds no
// state beyond the suppressing flag and is not safe for concurrent use.
type LineFilter struct {
	suppressing bool
}

// Keep reports whether line should be forwarded. Lines must arrive one at
// a time, already split on line boundaries.
func (f *LineFilter) Keep(line string) bool {
	if f.suppressing {
		// Only a blank line ends the block; another header mid-block is
		// just more block content.
		if blankLine(line) {
			f.suppressing = false
		}
		return false
	}
	if peerDepHeader.MatchString(line) {
		f.suppressing = true
		return false
	}
	return true
}

// blankLine reports whether line has no visible content once styling is
// removed.
func blankLine(line string) bool {
	return strings.TrimSpace(sgrSeq.ReplaceAllString(line, "")) == ""
}
