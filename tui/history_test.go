package tui

import "testing"

func TestHistory_PushAndPrev(t *testing.T) {
	h := NewHistory(5)
	h.Push("n")
	h.Push("attack spin")
	h.Push("use potion")

	for _, want := range []string{"use potion", "attack spin", "n", "n"} {
		prev, ok := h.Prev()
		if !ok || prev != want {
			t.Errorf("Prev() = %q (ok=%v), want %q", prev, ok, want)
		}
	}
}

func TestHistory_Next(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("e")

	h.Prev() // "e"
	h.Prev() // "look"

	next, ok := h.Next()
	if !ok || next != "e" {
		t.Errorf("expected 'e', got %q (ok=%v)", next, ok)
	}

	if _, ok = h.Next(); ok {
		t.Error("expected false when past newest entry")
	}
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory(5)
	if _, ok := h.Prev(); ok {
		t.Error("expected false on empty history")
	}
	if _, ok := h.Next(); ok {
		t.Error("expected false on empty history")
	}
	if got := h.Recent(3); len(got) != 0 {
		t.Errorf("Recent on empty history = %v", got)
	}
}

func TestHistory_MaxSize(t *testing.T) {
	h := NewHistory(2)
	h.Push("a")
	h.Push("b")
	h.Push("c") // "a" evicted

	for _, want := range []string{"c", "b", "b"} {
		if prev, _ := h.Prev(); prev != want {
			t.Errorf("Prev() = %q, want %q", prev, want)
		}
	}
}

func TestHistory_NoDuplicates(t *testing.T) {
	h := NewHistory(5)
	h.Push("wait")
	h.Push("wait")
	h.Push("wait")

	if len(h.entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(h.entries))
	}
}

func TestHistory_PushEndsNavigation(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("n")

	h.Prev() // "n"
	h.Prev() // "look"
	h.Push("s")

	if prev, _ := h.Prev(); prev != "s" {
		t.Errorf("expected 's' after push, got %q", prev)
	}
}

func TestHistory_ResetCursor(t *testing.T) {
	h := NewHistory(5)
	h.Push("look")
	h.Push("n")

	h.Prev() // "n"
	h.Prev() // "look"
	h.ResetCursor()

	if prev, ok := h.Prev(); !ok || prev != "n" {
		t.Errorf("expected 'n' after reset, got %q", prev)
	}
}

func TestHistory_Recent(t *testing.T) {
	h := NewHistory(10)
	for _, c := range []string{"n", "e", "a", "u"} {
		h.Push(c)
	}
	got := h.Recent(2)
	if len(got) != 2 || got[0] != "a" || got[1] != "u" {
		t.Errorf("Recent(2) = %v, want [a u]", got)
	}
	if got := h.Recent(10); len(got) != 4 {
		t.Errorf("Recent(10) returned %d entries, want 4", len(got))
	}
}
