package scene

import "github.com/go-gl/mathgl/mgl64"

// Mesh pairs a geometry with a material.
type Mesh struct {
	Geometry      Geometry
	Material      Material
	CastShadow    bool
	ReceiveShadow bool
}

// Node is a transform in the scene graph. The zero value is not usable; call
// NewNode or NewMeshNode.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation Euler
	Scale    mgl64.Vec3
	Visible  bool
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl64.Vec3{1, 1, 1}, Visible: true}
}

func NewMeshNode(name string, g Geometry, m Material) *Node {
	n := NewNode(name)
	n.Mesh = &Mesh{Geometry: g, Material: m}
	return n
}

// Add attaches child, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) Remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) SetPosition(x, y, z float64) { n.Position = mgl64.Vec3{x, y, z} }

// RotateX rotates the node about its own X axis.
func (n *Node) RotateX(angle float64) { n.rotateOnAxis(AxisX, angle) }
func (n *Node) RotateY(angle float64) { n.rotateOnAxis(AxisY, angle) }
func (n *Node) RotateZ(angle float64) { n.rotateOnAxis(AxisZ, angle) }

func (n *Node) rotateOnAxis(axis mgl64.Vec3, angle float64) {
	q := n.Rotation.Quat().Mul(mgl64.QuatRotate(angle, axis))
	n.Rotation = EulerFromQuat(q)
}

// LocalMatrix is T * R * S.
func (n *Node) LocalMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(n.Rotation.Mat4()).Mul4(s)
}

func (n *Node) WorldMatrix() mgl64.Mat4 {
	m := n.LocalMatrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.LocalMatrix().Mul4(m)
	}
	return m
}

// Clone deep-copies the subtree. Geometry and material values are copied, so
// clones compare equal to the original mesh by value. The clone is detached.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:     n.Name,
		Position: n.Position,
		Rotation: n.Rotation,
		Scale:    n.Scale,
		Visible:  n.Visible,
	}
	if n.Mesh != nil {
		m := *n.Mesh
		c.Mesh = &m
	}
	for _, child := range n.children {
		c.Add(child.Clone())
	}
	return c
}

// Traverse visits n and its descendants depth first.
func (n *Node) Traverse(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// SetShadows sets cast and receive flags on every mesh in the subtree.
func (n *Node) SetShadows(cast, receive bool) {
	n.Traverse(func(c *Node) {
		if c.Mesh != nil {
			c.Mesh.CastShadow = cast
			c.Mesh.ReceiveShadow = receive
		}
	})
}
