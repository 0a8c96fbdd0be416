package editor

import (
	"fmt"
	"time"

	"scene-editor/math"
	"scene-editor/scene"
)

// ActionKind tags the variant of an Action.
type ActionKind int

const (
	ActionCreate ActionKind = iota
	ActionDelete
	ActionTransform
	ActionReparent
	ActionProperty
)

func (k ActionKind) String() string {
	switch k {
	case ActionCreate:
		return "create"
	case ActionDelete:
		return "delete"
	case ActionTransform:
		return "transform"
	case ActionReparent:
		return "reparent"
	case ActionProperty:
		return "property"
	}
	return "unknown"
}

var actionIDCounter uint64

// Action is an immutable record of one committed edit. The payload carries
// everything needed to invert and replay the edit without re-reading
// ambient state; Apply and Invert dispatch on Kind rather than holding
// per-instance callbacks, so an Action stays inspectable for logging.
type Action struct {
	ID          uint64
	Kind        ActionKind
	Description string
	Time        time.Time

	// Payload is one of *CreatePayload, *DeletePayload, *TransformPayload,
	// *ReparentPayload, *PropertyPayload, matching Kind. Never mutated
	// after construction.
	Payload interface{}
}

func newAction(kind ActionKind, description string, payload interface{}) *Action {
	actionIDCounter++
	return &Action{
		ID:          actionIDCounter,
		Kind:        kind,
		Description: description,
		Time:        time.Now(),
		Payload:     payload,
	}
}

// CreatePayload records a node created in the editor. Invert removes the
// node and frees its resources; Apply re-attaches the same node instance
// at the scene root.
type CreatePayload struct {
	Node  *scene.Node
	Scene *scene.Scene
}

// DeletePayload records a node removal, including where the node sat so
// undo can restore sibling order exactly. While the delete is applied, the
// detached node is owned by this payload alone.
type DeletePayload struct {
	Node   *scene.Node
	Scene  *scene.Scene
	Parent *scene.Node // nil when the node sat directly under the scene root
	Index  int         // child index under Parent at capture time
}

// TransformPayload is a by-value snapshot of a local transform change.
// Invert/Apply only touch local transform fields, never parent linkage.
type TransformPayload struct {
	Node        *scene.Node
	OldPosition math.Vec3
	OldRotation math.Quaternion
	OldScale    math.Vec3
	NewPosition math.Vec3
	NewRotation math.Quaternion
	NewScale    math.Vec3
}

// ReparentPayload records a parent change. Only the pre-action world pose
// is fixed at capture time; Apply re-captures the node's current world
// pose when it runs, because intervening undone actions may have moved
// the node since the reparent was first committed.
type ReparentPayload struct {
	Node      *scene.Node
	Scene     *scene.Scene
	OldParent *scene.Node // nil re-attaches at the scene root
	NewParent *scene.Node // nil re-attaches at the scene root
	OldWorldPosition math.Vec3
	OldWorldRotation math.Quaternion
	OldWorldScale    math.Vec3
}

// PropertyPayload records a single named property change. The accessor is
// resolved from the property registry when the action is built.
type PropertyPayload struct {
	Node     *scene.Node
	Property string
	OldValue interface{}
	NewValue interface{}

	prop property
}

// NewCreateAction records that node was just attached to s by the caller.
// The factory itself does not touch the graph.
func NewCreateAction(node *scene.Node, s *scene.Scene) *Action {
	return newAction(ActionCreate, "Add "+node.Name, &CreatePayload{
		Node:  node,
		Scene: s,
	})
}

// NewDeleteAction captures node's parent and child index before the caller
// removes it (by invoking Apply). The node must still be attached.
func NewDeleteAction(node *scene.Node, s *scene.Scene) *Action {
	p := &DeletePayload{
		Node:  node,
		Scene: s,
		Index: -1,
	}
	if node.Parent != nil && node.Parent != s.Root {
		p.Parent = node.Parent
	}
	if node.Parent != nil {
		p.Index = node.Parent.ChildIndex(node)
	}
	return newAction(ActionDelete, "Delete "+node.Name, p)
}

// NewTransformAction snapshots a local transform change by value. The
// caller has already assigned the new transform (or will via Apply).
func NewTransformAction(node *scene.Node, oldPos math.Vec3, oldRot math.Quaternion, oldScale math.Vec3, newPos math.Vec3, newRot math.Quaternion, newScale math.Vec3) *Action {
	return newAction(ActionTransform, "Transform "+node.Name, &TransformPayload{
		Node:        node,
		OldPosition: oldPos,
		OldRotation: oldRot,
		OldScale:    oldScale,
		NewPosition: newPos,
		NewRotation: newRot,
		NewScale:    newScale,
	})
}

// NewReparentAction captures node's current parent and world pose ahead of
// a move under newParent. A nil oldParent or newParent means the scene
// root.
func NewReparentAction(s *scene.Scene, node *scene.Node, oldParent, newParent *scene.Node, oldWorldPos math.Vec3, oldWorldRot math.Quaternion, oldWorldScale math.Vec3) *Action {
	return newAction(ActionReparent, "Reparent "+node.Name, &ReparentPayload{
		Node:             node,
		Scene:            s,
		OldParent:        oldParent,
		NewParent:        newParent,
		OldWorldPosition: oldWorldPos,
		OldWorldRotation: oldWorldRot,
		OldWorldScale:    oldWorldScale,
	})
}

// NewPropertyAction builds a property-change action for one of the
// registered history-aware properties. Unknown names are a caller error
// and are rejected loudly rather than recorded.
func NewPropertyAction(node *scene.Node, name string, oldValue, newValue interface{}) (*Action, error) {
	prop, err := lookupProperty(name)
	if err != nil {
		return nil, err
	}
	return newAction(ActionProperty, fmt.Sprintf("Set %s on %s", name, node.Name), &PropertyPayload{
		Node:     node,
		Property: name,
		OldValue: oldValue,
		NewValue: newValue,
		prop:     prop,
	}), nil
}

// Apply produces the action's post-state. Used by the editor for the
// initial forward mutation of create/delete/reparent gestures, and by the
// history manager for redo.
func (a *Action) Apply() {
	switch p := a.Payload.(type) {
	case *CreatePayload:
		p.Scene.Attach(p.Node, nil)
	case *DeletePayload:
		p.Scene.Detach(p.Node)
		p.Scene.ReleaseResources(p.Node)
	case *TransformPayload:
		p.Node.SetLocalTransform(p.NewPosition, p.NewRotation, p.NewScale)
	case *ReparentPayload:
		// The world pose to preserve is wherever the node is right now,
		// not where it was when the action was built.
		pos, rot, scl := p.Node.WorldPose()
		moveKeepingWorldPose(p.Scene, p.Node, p.NewParent, pos, rot, scl)
	case *PropertyPayload:
		p.prop.set(p.Node, p.NewValue)
		if p.prop.geometric {
			p.Node.MarkWorldMatrixDirty()
		}
	}
}

// Invert restores the state from before the action was applied.
func (a *Action) Invert() {
	switch p := a.Payload.(type) {
	case *CreatePayload:
		p.Scene.Detach(p.Node)
		p.Scene.ReleaseResources(p.Node)
	case *DeletePayload:
		// Re-insert at the exact former index so sibling order survives.
		p.Scene.AttachAt(p.Node, p.Parent, p.Index)
	case *TransformPayload:
		p.Node.SetLocalTransform(p.OldPosition, p.OldRotation, p.OldScale)
	case *ReparentPayload:
		moveKeepingWorldPose(p.Scene, p.Node, p.OldParent, p.OldWorldPosition, p.OldWorldRotation, p.OldWorldScale)
	case *PropertyPayload:
		p.prop.set(p.Node, p.OldValue)
		if p.prop.geometric {
			p.Node.MarkWorldMatrixDirty()
		}
	}
}

// moveKeepingWorldPose re-attaches node under parent (scene root when
// nil) and rewrites its local transform so its world pose equals the
// given position/rotation/scale.
func moveKeepingWorldPose(s *scene.Scene, node, parent *scene.Node, pos math.Vec3, rot math.Quaternion, scale math.Vec3) {
	s.Detach(node)
	s.Attach(node, parent)
	node.SetLocalFromWorld(pos, rot, scale)
}
