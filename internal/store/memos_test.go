package store

import "testing"

func TestMemoBoardPostUpserts(t *testing.T) {
	board := NewMemoBoard(nil)

	board.Post("shift notes", "morning delivery delayed")
	board.Post("safety", "wet floor near dock 2")
	board.Post("shift notes", "delivery arrived 14:00")

	if board.Len() != 2 {
		t.Fatalf("Expected 2 memos after overwrite, got %d", board.Len())
	}

	content, ok := board.Get("shift notes")
	if !ok {
		t.Fatal("Memo 'shift notes' not found")
	}
	if content != "delivery arrived 14:00" {
		t.Errorf("Expected last posted content, got %q", content)
	}

	// A repost keeps the title's original board position.
	var titles []string
	for memo := range board.All() {
		titles = append(titles, memo.Title)
	}
	if len(titles) != 2 || titles[0] != "shift notes" || titles[1] != "safety" {
		t.Errorf("Unexpected board order: %v", titles)
	}
}

func TestMemoBoardGetAbsent(t *testing.T) {
	board := NewMemoBoard(nil)
	if _, ok := board.Get("missing"); ok {
		t.Error("Expected absent title to report not found")
	}
}
