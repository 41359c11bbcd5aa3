package main

import "testing"

func TestFormatColumnsAligns(t *testing.T) {
	headers := []string{"Key", "ID", "Lines"}
	rows := [][]string{
		{"1", "simple", "3"},
		{"2", "data-oriented", "12"},
	}

	lines := formatColumns(headers, rows, map[int]bool{2: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Key  ID             Lines" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "1    simple             3" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "2    data-oriented     12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatColumnsWideRunes(t *testing.T) {
	lines := formatColumns([]string{"Label", "X"}, [][]string{{"日本", "y"}}, nil)
	if lines[1] != "日本   y" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatColumnsEmpty(t *testing.T) {
	if lines := formatColumns(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
