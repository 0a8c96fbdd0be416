package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingBackend struct {
	meshReleases    int
	textureReleases int
}

func (b *countingBackend) ReleaseMesh(*Mesh)       { b.meshReleases++ }
func (b *countingBackend) ReleaseTexture(*Texture) { b.textureReleases++ }

func TestAttachDefaultsToRoot(t *testing.T) {
	s := NewScene()
	n := NewNode("n")

	s.Attach(n, nil)

	assert.Equal(t, s.Root, n.Parent)
	assert.True(t, s.Contains(n))
}

func TestAttachAtRestoresSiblingOrder(t *testing.T) {
	s := NewScene()
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	s.Attach(a, nil)
	s.Attach(b, nil)
	s.Attach(c, nil)

	s.Detach(b)
	require.False(t, s.Contains(b))

	s.AttachAt(b, nil, 1)

	require.True(t, s.Contains(b))
	assert.Equal(t, []*Node{a, b, c}, s.Root.Children)
}

func TestDetachRemovesSubtree(t *testing.T) {
	s := NewScene()
	parent := NewNode("parent")
	child := NewNode("child")
	s.Attach(parent, nil)
	s.Attach(child, parent)

	s.Detach(parent)

	assert.False(t, s.Contains(parent))
	assert.False(t, s.Contains(child))
	assert.Nil(t, parent.Parent)
	// The subtree stays intact while detached
	assert.Equal(t, parent, child.Parent)
}

func TestReleaseResourcesIsIdempotent(t *testing.T) {
	backend := &countingBackend{}
	s := NewScene()
	s.Backend = backend

	n := NewNode("cube")
	n.Mesh = CreateCube(1)
	n.Mesh.GPUData = struct{}{}
	n.Mesh.Material = DefaultMaterial()
	n.Mesh.Material.AlbedoTexture = NewSolidTexture("white", 255, 255, 255, 255)
	n.Mesh.Material.AlbedoTexture.GLID = 7
	s.Attach(n, nil)

	s.ReleaseResources(n)
	assert.Equal(t, 1, backend.meshReleases)
	assert.Equal(t, 1, backend.textureReleases)
	assert.Nil(t, n.Mesh.GPUData)
	assert.Zero(t, n.Mesh.Material.AlbedoTexture.GLID)

	// Releasing again finds cleared handles and does not call the backend
	s.ReleaseResources(n)
	assert.Equal(t, 1, backend.meshReleases)
	assert.Equal(t, 1, backend.textureReleases)
}

func TestReleaseResourcesCoversSubtree(t *testing.T) {
	backend := &countingBackend{}
	s := NewScene()
	s.Backend = backend

	parent := NewNode("parent")
	child := NewNode("child")
	parent.Mesh = CreateTriangle()
	parent.Mesh.GPUData = struct{}{}
	child.Mesh = CreateQuad()
	child.Mesh.GPUData = struct{}{}
	s.Attach(parent, nil)
	s.Attach(child, parent)

	s.ReleaseResources(parent)

	assert.Equal(t, 2, backend.meshReleases)
	assert.Nil(t, parent.Mesh.GPUData)
	assert.Nil(t, child.Mesh.GPUData)
}

func TestReleaseResourcesWithoutBackend(t *testing.T) {
	s := NewScene()
	n := NewNode("cube")
	n.Mesh = CreateCube(1)
	n.Mesh.GPUData = struct{}{}
	s.Attach(n, nil)

	// No backend configured; handles are still cleared
	s.ReleaseResources(n)
	assert.Nil(t, n.Mesh.GPUData)
}

func TestReleaseResourcesSkipsSharedTexture(t *testing.T) {
	backend := &countingBackend{}
	s := NewScene()
	s.Backend = backend

	tex := NewSolidTexture("shared", 255, 0, 0, 255)
	tex.GLID = 7

	a := NewNode("a")
	a.Mesh = CreateCube(1)
	a.Mesh.GPUData = struct{}{}
	a.Mesh.Material = DefaultMaterial()
	a.Mesh.Material.AlbedoTexture = tex

	b := NewNode("b")
	b.Mesh = CreateQuad()
	b.Mesh.GPUData = struct{}{}
	b.Mesh.Material = DefaultMaterial()
	b.Mesh.Material.AlbedoTexture = tex

	s.Attach(a, nil)
	s.Attach(b, nil)

	// b still references the texture, so releasing a must leave it alone
	s.Detach(a)
	s.ReleaseResources(a)
	assert.Equal(t, 1, backend.meshReleases)
	assert.Equal(t, 0, backend.textureReleases)
	assert.Equal(t, uint32(7), tex.GLID)

	// The last reference goes away with b
	s.Detach(b)
	s.ReleaseResources(b)
	assert.Equal(t, 1, backend.textureReleases)
	assert.Zero(t, tex.GLID)
}

func TestReleaseResourcesSkipsSharedMesh(t *testing.T) {
	backend := &countingBackend{}
	s := NewScene()
	s.Backend = backend

	mesh := CreateCube(1)
	mesh.GPUData = struct{}{}

	a := NewNode("a")
	a.Mesh = mesh
	b := NewNode("b")
	b.Mesh = mesh
	s.Attach(a, nil)
	s.Attach(b, nil)

	s.Detach(a)
	s.ReleaseResources(a)
	assert.Equal(t, 0, backend.meshReleases)
	assert.NotNil(t, mesh.GPUData)

	s.Detach(b)
	s.ReleaseResources(b)
	assert.Equal(t, 1, backend.meshReleases)
	assert.Nil(t, mesh.GPUData)
}

func TestVisibleNodes(t *testing.T) {
	s := NewScene()
	shown := NewNode("shown")
	shown.Mesh = CreateCube(1)
	hidden := NewNode("hidden")
	hidden.Mesh = CreateCube(1)
	hidden.Visible = false
	empty := NewNode("empty")
	s.Attach(shown, nil)
	s.Attach(hidden, nil)
	s.Attach(empty, nil)

	visible := s.VisibleNodes()

	require.Len(t, visible, 1)
	assert.Equal(t, shown, visible[0])
}

func TestMeshShallowCopy(t *testing.T) {
	m := CreateCube(2)
	m.GPUData = struct{}{}

	dup := m.ShallowCopy()

	assert.Equal(t, m.Name, dup.Name)
	assert.Len(t, dup.Vertices, len(m.Vertices))
	assert.Nil(t, dup.GPUData)
}
