package pm

import (
	"testing"
)

// feed runs lines through a fresh LineFilter and returns the survivors.
func feed(lines ...string) []string {
	f := &LineFilter{}
	var out []string
	for _, l := range lines {
		if f.Keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("filtered output = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("filtered[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// TestFilterPassesOrdinaryLines verifies that lines outside a warning
// block pass through unchanged and in order.
func TestFilterPassesOrdinaryLines(t *testing.T) {
	in := []string{"Lockfile is up to date", "Progress: resolved 120", "Done in 1.2s"}
	assertLines(t, feed(in...), in)
}

// TestFilterSuppressesPeerDepBlock verifies that the header, the block
// body, and the terminating blank line are all dropped while the line
// after the block survives.
func TestFilterSuppressesPeerDepBlock(t *testing.T) {
	got := feed(
		"WARN  Issues with peer dependencies found",
		".",
		"├─┬ webpack 5.0.0",
		"│ └── ✕ missing peer webpack-cli@*",
		"",
		"next",
	)
	assertLines(t, got, []string{"next"})
}

// TestFilterHeaderWithStyling verifies detection when pnpm wraps the WARN
// badge in color escape sequences.
func TestFilterHeaderWithStyling(t *testing.T) {
	got := feed(
		"\x1b[43m\x1b[30m WARN \x1b[39m\x1b[49m \x1b[33mIssues with peer dependencies found\x1b[39m",
		"body line",
		"",
		"after",
	)
	assertLines(t, got, []string{"after"})
}

// TestFilterHeaderStylingVariants verifies detection across the ways the
// badge renderer interleaves styling and whitespace between the tokens.
func TestFilterHeaderStylingVariants(t *testing.T) {
	headers := []string{
		"WARN  Issues with peer dependencies found",
		" WARN \x1b[39m\x1b[49m \x1b[33mIssues with peer dependencies found\x1b[39m",
		"\x1b[43m\x1b[30m WARN \x1b[39m\x1b[49m Issues with peer dependencies found",
		"\x1b[33mWARN\x1b[39m \x1b[1mIssues with peer dependencies found\x1b[22m",
	}
	for _, h := range headers {
		got := feed(h, "body", "", "after")
		if len(got) != 1 || got[0] != "after" {
			t.Errorf("header %q not suppressed: filtered = %q", h, got)
		}
	}
}

// TestFilterStyledBlankEndsBlock verifies that a line containing only
// styling sequences counts as blank and terminates the block.
func TestFilterStyledBlankEndsBlock(t *testing.T) {
	got := feed(
		"WARN  Issues with peer dependencies found",
		"body",
		"\x1b[0m  \x1b[39m",
		"after",
	)
	assertLines(t, got, []string{"after"})
}

// TestFilterStreamEndsMidBlock verifies that a stream ending while still
// suppressing produces nothing further and needs no flush.
func TestFilterStreamEndsMidBlock(t *testing.T) {
	got := feed(
		"before",
		"WARN  Issues with peer dependencies found",
		"body that never terminates",
	)
	assertLines(t, got, []string{"before"})
}

// TestFilterRetriggerIsIdempotent verifies that a second header inside an
// open block does not double-toggle: the first blank line still ends the
// whole thing.
func TestFilterRetriggerIsIdempotent(t *testing.T) {
	got := feed(
		"WARN  Issues with peer dependencies found",
		"WARN  Issues with peer dependencies found",
		"body",
		"",
		"after",
	)
	assertLines(t, got, []string{"after"})
}

// TestFilterBlankOutsideBlockPasses verifies that blank lines are only
// consumed as block terminators, not suppressed in general.
func TestFilterBlankOutsideBlockPasses(t *testing.T) {
	got := feed("a", "", "b")
	assertLines(t, got, []string{"a", "", "b"})
}

// TestFilterTwoSeparateBlocks verifies the filter re-arms after a block
// closes.
func TestFilterTwoSeparateBlocks(t *testing.T) {
	got := feed(
		"WARN  Issues with peer dependencies found",
		"first block",
		"",
		"between",
		"WARN  Issues with peer dependencies found",
		"second block",
		"",
		"end",
	)
	assertLines(t, got, []string{"between", "end"})
}

// TestFilterOtherWarningsPass verifies unrelated WARN lines are kept.
func TestFilterOtherWarningsPass(t *testing.T) {
	in := []string{"WARN  deprecated request@2.88.2", "Done"}
	assertLines(t, feed(in...), in)
}
