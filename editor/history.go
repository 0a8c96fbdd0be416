package editor

import (
	"log/slog"
)

// History manages the undo/redo stacks. Actions in past are ordered by
// commit time, most recent last; future holds undone actions, most
// recently undone last. All operations are synchronous and must run on
// the thread driving the editor.
type History struct {
	past     []*Action
	future   []*Action
	maxDepth int
	logger   *slog.Logger
}

// NewHistory creates a history bounded to maxDepth undoable actions. When
// the bound is exceeded the oldest entries are dropped silently, with no
// invert call. A nil logger uses slog.Default().
func NewHistory(maxDepth int, logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.Default()
	}
	return &History{
		past:     make([]*Action, 0, maxDepth),
		future:   make([]*Action, 0, maxDepth),
		maxDepth: maxDepth,
		logger:   logger,
	}
}

// Push records an already-applied action as the next one to be undone.
// Push never invokes the action: by the time an action is pushed, the
// forward mutation has happened (either directly by the caller, or by
// the caller running Apply for create/delete/reparent gestures).
// Committing a new action discards the redo branch.
func (h *History) Push(a *Action) {
	h.past = append(h.past, a)
	if h.maxDepth > 0 && len(h.past) > h.maxDepth {
		// Copy down and clear the vacated slot so the dropped action
		// (and the nodes it captured) can be collected.
		copy(h.past, h.past[1:])
		h.past[len(h.past)-1] = nil
		h.past = h.past[:len(h.past)-1]
	}
	h.clearFuture()
	h.logger.Debug("action committed",
		slog.Uint64("id", a.ID),
		slog.String("kind", a.Kind.String()),
		slog.String("description", a.Description))
}

// Undo reverts the most recent action. Returns false (a no-op) when
// there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	a := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	a.Invert()
	h.future = append(h.future, a)
	h.logger.Debug("action undone",
		slog.Uint64("id", a.ID),
		slog.String("kind", a.Kind.String()),
		slog.String("description", a.Description))
	return true
}

// Redo reapplies the most recently undone action. Returns false (a
// no-op) when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	a := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	a.Apply()
	h.past = append(h.past, a)
	h.logger.Debug("action redone",
		slog.Uint64("id", a.ID),
		slog.String("kind", a.Kind.String()),
		slog.String("description", a.Description))
	return true
}

// CanUndo returns whether there are actions to undo.
func (h *History) CanUndo() bool { return len(h.past) > 0 }

// CanRedo returns whether there are actions to redo.
func (h *History) CanRedo() bool { return len(h.future) > 0 }

// Clear wipes both stacks without inverting or applying anything. Used
// when the scene itself is being replaced.
func (h *History) Clear() {
	for i := range h.past {
		h.past[i] = nil
	}
	h.past = h.past[:0]
	h.clearFuture()
}

func (h *History) clearFuture() {
	for i := range h.future {
		h.future[i] = nil
	}
	h.future = h.future[:0]
}
