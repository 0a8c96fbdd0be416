package scene

// ResourceBackend frees GPU-side resources. Implementations must tolerate
// resources that were never uploaded.
type ResourceBackend interface {
	ReleaseMesh(*Mesh)
	ReleaseTexture(*Texture)
}

// Scene manages a tree of nodes under a single root. The Backend, if set,
// is used to free GPU resources when nodes are deleted.
type Scene struct {
	Root    *Node
	Backend ResourceBackend
}

func NewScene() *Scene {
	return &Scene{
		Root: NewNode("Root"),
	}
}

// Attach adds node under parent, or under the root when parent is nil.
func (s *Scene) Attach(node, parent *Node) {
	if parent == nil {
		parent = s.Root
	}
	parent.AddChild(node)
}

// AttachAt adds node under parent at the given child index. A nil parent
// means the root; index semantics follow [Node.InsertChildAt].
func (s *Scene) AttachAt(node, parent *Node, index int) {
	if parent == nil {
		parent = s.Root
	}
	parent.InsertChildAt(node, index)
}

// Detach removes node from its parent's child list. Detached nodes keep
// their children and resources; re-attach with Attach/AttachAt.
func (s *Scene) Detach(node *Node) {
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}

// Contains reports whether node is reachable from the scene root.
func (s *Scene) Contains(node *Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == s.Root {
			return true
		}
	}
	return false
}

// ReleaseResources frees the GPU resources owned by node and its subtree.
// Releasing is idempotent: a resource's backend handle is cleared on the
// first release, and later calls find nothing to free. Meshes and textures
// can be shared between nodes (imports reuse them, duplicates share the
// original's material); a handle still referenced by a node outside the
// released subtree is left alone.
func (s *Scene) ReleaseResources(node *Node) {
	releasing := make(map[*Node]bool)
	node.Traverse(func(n *Node) {
		releasing[n] = true
	})

	liveMeshes := make(map[*Mesh]bool)
	liveTextures := make(map[*Texture]bool)
	s.Root.Traverse(func(n *Node) {
		if releasing[n] || n.Mesh == nil {
			return
		}
		liveMeshes[n.Mesh] = true
		if n.Mesh.Material != nil && n.Mesh.Material.AlbedoTexture != nil {
			liveTextures[n.Mesh.Material.AlbedoTexture] = true
		}
	})

	node.Traverse(func(n *Node) {
		mesh := n.Mesh
		if mesh == nil || liveMeshes[mesh] {
			return
		}
		if s.Backend != nil && mesh.GPUData != nil {
			s.Backend.ReleaseMesh(mesh)
		}
		mesh.GPUData = nil
		if mesh.Material == nil || mesh.Material.AlbedoTexture == nil {
			return
		}
		tex := mesh.Material.AlbedoTexture
		if liveTextures[tex] {
			return
		}
		if s.Backend != nil && tex.GLID != 0 {
			s.Backend.ReleaseTexture(tex)
		}
		tex.GLID = 0
	})
}

func (s *Scene) Find(name string) *Node {
	return s.Root.Find(name)
}

func (s *Scene) Traverse(callback func(*Node)) {
	s.Root.Traverse(callback)
}

// VisibleNodes returns all visible nodes carrying a mesh.
func (s *Scene) VisibleNodes() []*Node {
	var visible []*Node
	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})
	return visible
}
