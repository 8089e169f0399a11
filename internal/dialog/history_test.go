package dialog

import (
	"fmt"
	"testing"
)

func TestHistory_AppendAndTurns(t *testing.T) {
	h := newHistory(3)

	if h.Len() != 0 {
		t.Fatalf("new history Len() = %d, want 0", h.Len())
	}

	h.Append(Turn{UserInput: "a"})
	h.Append(Turn{UserInput: "b"})
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	turns := h.Turns()
	if turns[0].UserInput != "a" || turns[1].UserInput != "b" {
		t.Errorf("Turns() = %v, want [a b]", turns)
	}
}

func TestHistory_EvictsOldestFirst(t *testing.T) {
	h := newHistory(3)

	for i := 1; i <= 5; i++ {
		h.Append(Turn{UserInput: fmt.Sprintf("msg %d", i)})
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	turns := h.Turns()
	want := []string{"msg 3", "msg 4", "msg 5"}
	for i, w := range want {
		if turns[i].UserInput != w {
			t.Errorf("Turns()[%d] = %q, want %q", i, turns[i].UserInput, w)
		}
	}
}

func TestHistory_Reset(t *testing.T) {
	h := newHistory(2)
	h.Append(Turn{UserInput: "a"})
	h.Append(Turn{UserInput: "b"})
	h.Append(Turn{UserInput: "c"})

	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", h.Len())
	}

	h.Append(Turn{UserInput: "d"})
	turns := h.Turns()
	if len(turns) != 1 || turns[0].UserInput != "d" {
		t.Errorf("Turns() after Reset+Append = %v, want [d]", turns)
	}
}

func TestHistory_TurnsReturnsCopy(t *testing.T) {
	h := newHistory(2)
	h.Append(Turn{UserInput: "a"})

	turns := h.Turns()
	turns[0].UserInput = "mutated"

	if h.Turns()[0].UserInput != "a" {
		t.Error("mutating the returned slice changed the ring contents")
	}
}
