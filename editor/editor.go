package editor

import (
	"log/slog"

	"scene-editor/math"
	"scene-editor/scene"
)

// DefaultHistoryDepth bounds the undo stack unless overridden.
const DefaultHistoryDepth = 100

// Editor is the gesture surface the UI layer drives. Every mutation goes
// through here: the editor performs the edit against the scene graph,
// builds an action recording it, and pushes the action onto the history.
// Undo and redo thereafter flow only through the history manager.
type Editor struct {
	Scene     *scene.Scene
	History   *History
	Selection *Selection

	logger *slog.Logger
}

// New creates an editor over s. A nil logger uses slog.Default().
func New(s *scene.Scene, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		Scene:     s,
		History:   NewHistory(DefaultHistoryDepth, logger),
		Selection: NewSelection(),
		logger:    logger,
	}
}

// AddNode attaches node at the scene root and records the creation.
func (e *Editor) AddNode(node *scene.Node) {
	e.Scene.Attach(node, nil)
	e.History.Push(NewCreateAction(node, e.Scene))
	e.logger.Info("node added",
		slog.String("node", node.Name),
		slog.String("id", node.ID.String()))
}

// DeleteNode removes node from the scene, releasing its resources, and
// records the removal so undo can restore it at its former child index.
func (e *Editor) DeleteNode(node *scene.Node) {
	a := NewDeleteAction(node, e.Scene)
	a.Apply()
	e.History.Push(a)
	if e.Selection.IsSelected(node) {
		e.Selection.ToggleObject(node)
	}
	e.logger.Info("node deleted",
		slog.String("node", node.Name),
		slog.String("id", node.ID.String()))
}

// DeleteSelected deletes every selected node and clears the selection.
func (e *Editor) DeleteSelected() {
	nodes := append([]*scene.Node(nil), e.Selection.Objects...)
	for _, node := range nodes {
		e.DeleteNode(node)
	}
	e.Selection.Clear()
}

// SetTransform assigns a new local transform to node, recording the old
// one by value.
func (e *Editor) SetTransform(node *scene.Node, newPos math.Vec3, newRot math.Quaternion, newScale math.Vec3) {
	t := node.Transform
	a := NewTransformAction(node, t.Position, t.Rotation, t.Scale, newPos, newRot, newScale)
	a.Apply()
	e.History.Push(a)
	e.logger.Info("node transformed", slog.String("node", node.Name))
}

// MoveNode is a shortcut for position-only changes.
func (e *Editor) MoveNode(node *scene.Node, newPos math.Vec3) {
	t := node.Transform
	e.SetTransform(node, newPos, t.Rotation, t.Scale)
}

// RotateNode is a shortcut for rotation-only changes.
func (e *Editor) RotateNode(node *scene.Node, newRot math.Quaternion) {
	t := node.Transform
	e.SetTransform(node, t.Position, newRot, t.Scale)
}

// ScaleNode is a shortcut for scale-only changes.
func (e *Editor) ScaleNode(node *scene.Node, newScale math.Vec3) {
	t := node.Transform
	e.SetTransform(node, t.Position, t.Rotation, newScale)
}

// ReparentNode moves node under newParent (scene root when nil) while
// preserving its world pose, and records the move. The node's local
// transform is rewritten against the new parent's coordinate frame.
func (e *Editor) ReparentNode(node *scene.Node, newParent *scene.Node) {
	pos, rot, scl := node.WorldPose()
	a := NewReparentAction(e.Scene, node, node.Parent, newParent, pos, rot, scl)
	a.Apply()
	e.History.Push(a)

	parentName := "Root"
	if newParent != nil {
		parentName = newParent.Name
	}
	e.logger.Info("node reparented",
		slog.String("node", node.Name),
		slog.String("parent", parentName))
}

// SetProperty assigns one of the registered history-aware properties and
// records the change. Returns an error for unknown property names.
func (e *Editor) SetProperty(node *scene.Node, name string, value interface{}) error {
	prop, err := lookupProperty(name)
	if err != nil {
		return err
	}
	a, err := NewPropertyAction(node, name, prop.get(node), value)
	if err != nil {
		return err
	}
	a.Apply()
	e.History.Push(a)
	e.logger.Info("property changed",
		slog.String("node", node.Name),
		slog.String("property", name))
	return nil
}

// DuplicateNode adds a copy of original next to it, offset slightly so
// it is visible. The duplicate has its own identity and no GPU handle;
// CPU-side mesh data is shared.
func (e *Editor) DuplicateNode(original *scene.Node) *scene.Node {
	dup := scene.NewNode(original.Name + ".copy")
	dup.Transform = original.Transform
	dup.Visible = original.Visible
	if original.Mesh != nil {
		dup.Mesh = original.Mesh.ShallowCopy()
	}
	dup.Transform.Position = dup.Transform.Position.Add(math.Vec3{X: 0.5, Y: 0, Z: 0})
	e.AddNode(dup)
	return dup
}

// DuplicateSelected duplicates every selected node.
func (e *Editor) DuplicateSelected() {
	for _, node := range e.Selection.Objects {
		e.DuplicateNode(node)
	}
}

// Undo reverts the last committed action. No-op when the history is empty.
func (e *Editor) Undo() bool { return e.History.Undo() }

// Redo reapplies the last undone action. No-op when nothing was undone.
func (e *Editor) Redo() bool { return e.History.Redo() }

func (e *Editor) CanUndo() bool { return e.History.CanUndo() }

func (e *Editor) CanRedo() bool { return e.History.CanRedo() }
