// Package history keeps bounded undo/redo stacks of whole-document snapshots.
package history

// DefaultLimit is the number of past snapshots retained when no limit is given.
const DefaultLimit = 50

// History tracks past, present and future snapshots of a value of type T.
// Every value it stores or hands out is a copy made with the clone function,
// so callers never share state with the stacks.
type History[T any] struct {
	past    []T
	present T
	future  []T
	limit   int
	clone   func(T) T
}

// New creates a history whose present is a copy of initial. A non-positive
// limit selects DefaultLimit.
func New[T any](initial T, limit int, clone func(T) T) *History[T] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History[T]{
		present: clone(initial),
		limit:   limit,
		clone:   clone,
	}
}

// Reset drops all past and future snapshots and makes present a copy of v.
func (h *History[T]) Reset(v T) {
	h.past = nil
	h.future = nil
	h.present = h.clone(v)
}

// Commit records live as the new present. The previous present moves onto
// the past stack, the oldest entry is evicted once the limit is exceeded,
// and the future is discarded.
func (h *History[T]) Commit(live T) {
	h.past = append(h.past, h.present)
	if len(h.past) > h.limit {
		h.past = h.past[len(h.past)-h.limit:]
	}
	h.present = h.clone(live)
	h.future = nil
}

// Undo steps back one snapshot and returns a copy of the restored present.
// It reports false when there is nothing to undo.
func (h *History[T]) Undo() (T, bool) {
	if len(h.past) == 0 {
		var zero T
		return zero, false
	}
	h.future = append([]T{h.present}, h.future...)
	last := len(h.past) - 1
	h.present = h.past[last]
	h.past = h.past[:last]
	return h.clone(h.present), true
}

// Redo steps forward one snapshot and returns a copy of the restored present.
// It reports false when there is nothing to redo.
func (h *History[T]) Redo() (T, bool) {
	if len(h.future) == 0 {
		var zero T
		return zero, false
	}
	h.past = append(h.past, h.present)
	h.present = h.future[0]
	h.future = h.future[1:]
	return h.clone(h.present), true
}

func (h *History[T]) CanUndo() bool  { return len(h.past) > 0 }
func (h *History[T]) CanRedo() bool  { return len(h.future) > 0 }
func (h *History[T]) PastLen() int   { return len(h.past) }
func (h *History[T]) FutureLen() int { return len(h.future) }
func (h *History[T]) Limit() int     { return h.limit }

// Present returns a copy of the current snapshot.
func (h *History[T]) Present() T {
	return h.clone(h.present)
}
