package scene

import (
	"github.com/google/uuid"

	"scene-editor/core"
	"scene-editor/math"
)

// Node represents an object in the scene graph. A node is in exactly one
// parent's child list at a time (or detached); its world transform is the
// composition of local transforms from the root down.
type Node struct {
	ID        uuid.UUID
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Visible   bool

	// Cached world transform
	worldMatrixDirty bool
	worldMatrix      math.Mat4
}

func NewNode(name string) *Node {
	return &Node{
		ID:               uuid.New(),
		Name:             name,
		Transform:        core.NewTransform(),
		Children:         make([]*Node, 0),
		Visible:          true,
		worldMatrixDirty: true,
	}
}

// AddChild appends child to n's child list, detaching it from any
// previous parent first.
func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.MarkWorldMatrixDirty()
}

// InsertChildAt inserts child at the given position in n's child list,
// preserving sibling order for everything after it. An index < 0 or past
// the end appends.
func (n *Node) InsertChildAt(child *Node, index int) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	if index < 0 || index >= len(n.Children) {
		n.Children = append(n.Children, child)
	} else {
		n.Children = append(n.Children, nil)
		copy(n.Children[index+1:], n.Children[index:])
		n.Children[index] = child
	}
	child.MarkWorldMatrixDirty()
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

// ChildIndex returns child's position in n's child list, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// WorldMatrix returns the node's world transform, recomputing the cached
// matrix if it has been marked dirty.
func (n *Node) WorldMatrix() math.Mat4 {
	if n.worldMatrixDirty {
		localMatrix := n.Transform.Matrix()
		if n.Parent != nil {
			n.worldMatrix = localMatrix.Mul(n.Parent.WorldMatrix())
		} else {
			n.worldMatrix = localMatrix
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

// MarkWorldMatrixDirty invalidates the cached world matrix of n and its
// whole subtree.
func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

// WorldPose decomposes the node's world matrix into position, rotation,
// and scale.
func (n *Node) WorldPose() (math.Vec3, math.Quaternion, math.Vec3) {
	return n.WorldMatrix().Decompose()
}

// SetLocalFromWorld rewrites the node's local transform so its world pose
// equals the given position/rotation/scale under the current parent:
// local = desiredWorld * inverse(parentWorld). With no parent the desired
// world pose is the local transform.
func (n *Node) SetLocalFromWorld(position math.Vec3, rotation math.Quaternion, scale math.Vec3) {
	desired := math.Mat4Compose(position, rotation, scale)
	local := desired
	if n.Parent != nil {
		local = desired.Mul(n.Parent.WorldMatrix().Inverse())
	}
	pos, rot, scl := local.Decompose()
	n.Transform.Position = pos
	n.Transform.Rotation = rot
	n.Transform.Scale = scl
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetRotation(rot math.Quaternion) {
	n.Transform.Rotation = rot
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetScale(scale math.Vec3) {
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// SetLocalTransform assigns all three local transform fields at once.
// Parent linkage is untouched.
func (n *Node) SetLocalTransform(pos math.Vec3, rot math.Quaternion, scale math.Vec3) {
	n.Transform.Position = pos
	n.Transform.Rotation = rot
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// Traverse visits n and all nodes below it.
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}

// Find returns the first node named name in n's subtree, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}
