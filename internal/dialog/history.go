package dialog

// history is a fixed-capacity FIFO ring of turns. Insertion is always at
// the tail; when full, the oldest turn is overwritten. The capacity bound
// is structural: the backing array never grows.
type history struct {
	turns []Turn
	head  int
	size  int
}

func newHistory(capacity int) *history {
	return &history{turns: make([]Turn, capacity)}
}

// Append records a turn, evicting the oldest one when the ring is full.
func (h *history) Append(t Turn) {
	if h.size < len(h.turns) {
		h.turns[(h.head+h.size)%len(h.turns)] = t
		h.size++
		return
	}
	h.turns[h.head] = t
	h.head = (h.head + 1) % len(h.turns)
}

func (h *history) Len() int {
	return h.size
}

// Turns returns the recorded turns oldest-first as a fresh slice.
func (h *history) Turns() []Turn {
	out := make([]Turn, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.turns[(h.head+i)%len(h.turns)]
	}
	return out
}

// Reset discards all recorded turns.
func (h *history) Reset() {
	h.head = 0
	h.size = 0
}
