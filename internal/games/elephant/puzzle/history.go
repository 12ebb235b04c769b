package puzzle

// History is the undo stack of worlds for one level. It is never empty:
// the bottom entry is the level's initial world and is never popped.
type History struct {
	initial *World
	stack   []*World
}

// NewHistory starts a history at the given initial world.
func NewHistory(initial *World) *History {
	return &History{
		initial: initial,
		stack:   []*World{initial},
	}
}

// Top returns the current world.
func (h *History) Top() *World {
	return h.stack[len(h.stack)-1]
}

// Initial returns the world the level was loaded with.
func (h *History) Initial() *World {
	return h.initial
}

// Len returns the number of worlds on the stack, at least 1.
func (h *History) Len() int {
	return len(h.stack)
}

// Moves returns the number of accepted transitions above the initial world.
func (h *History) Moves() int {
	return len(h.stack) - 1
}

// Push records a new current world.
func (h *History) Push(w *World) {
	h.stack = append(h.stack, w)
}

// Pop discards the current world. It returns false when only the initial
// world is left.
func (h *History) Pop() bool {
	if len(h.stack) <= 1 {
		return false
	}
	h.stack[len(h.stack)-1] = nil
	h.stack = h.stack[:len(h.stack)-1]
	return true
}

// Reset pushes the initial world on top, so the reset itself can be undone.
func (h *History) Reset() {
	h.Push(h.initial)
}
