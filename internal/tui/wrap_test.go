package tui

import (
	"strings"
	"testing"
)

func plainRunes(s string) []styledRune {
	out := make([]styledRune, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			out = append(out, styledRune{isNewline: true})
			continue
		}
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestBuildCodeRunesCursor(t *testing.T) {
	runes := buildCodeRunes([]rune("a\tb\n"))
	if len(runes) != 5 {
		t.Fatalf("expected 5 runes, got %d", len(runes))
	}
	if runes[0].s != codeStyle.Render("a") {
		t.Fatalf("expected code style for first rune")
	}
	if !runes[1].isSpace || runes[1].s != codeStyle.Render(" ") {
		t.Fatalf("expected tab to render as a space")
	}
	if !runes[3].isNewline {
		t.Fatalf("expected newline item")
	}
	if runes[4].s != cursorStyle.Render(" ") {
		t.Fatalf("expected cursor as last item")
	}
}

func TestBuildCodeRunesEmpty(t *testing.T) {
	runes := buildCodeRunes(nil)
	if len(runes) != 1 || runes[0].s != cursorStyle.Render(" ") {
		t.Fatalf("expected only the cursor, got %+v", runes)
	}
}

func TestWrapBreaksAtNewline(t *testing.T) {
	out := wrapStyledRunes(plainRunes("ab\ncd"), 10)
	if out != "ab\ncd" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapBreaksAtLastSpace(t *testing.T) {
	out := wrapStyledRunes(plainRunes("ab cd ef"), 6)
	if out != "ab cd\nef" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapSplitsLongWord(t *testing.T) {
	out := wrapStyledRunes(plainRunes("abcdef"), 4)
	if out != "abcd\nef" {
		t.Fatalf("unexpected wrap: %q", out)
	}
}

func TestWrapWithoutWidth(t *testing.T) {
	out := wrapStyledRunes(plainRunes("a b\nc"), 0)
	if out != "a b\nc" {
		t.Fatalf("unexpected output: %q", out)
	}
	if strings.Count(wrapStyledRunes(plainRunes("x\n\ny"), 3), "\n") != 2 {
		t.Fatalf("expected blank line to survive")
	}
}
