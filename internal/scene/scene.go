package scene

import "github.com/go-gl/mathgl/mgl64"

// Scene is the root of the graph. It owns every node and light added to it.
type Scene struct {
	Background Color
	Root       *Node
	Lights     []Light
}

func New() *Scene {
	return &Scene{Root: NewNode("scene")}
}

func (s *Scene) Add(n *Node)       { s.Root.Add(n) }
func (s *Scene) AddLight(l Light)  { s.Lights = append(s.Lights, l) }
func (s *Scene) Children() []*Node { return s.Root.Children() }

// Instance is a visible mesh with its resolved world matrix.
type Instance struct {
	Node  *Node
	Mesh  *Mesh
	World mgl64.Mat4
}

// Instances flattens the visible part of the graph. Invisible nodes hide
// their whole subtree.
func (s *Scene) Instances() []Instance {
	out := make([]Instance, 0, 16)
	var walk func(n *Node, parent mgl64.Mat4)
	walk = func(n *Node, parent mgl64.Mat4) {
		if !n.Visible {
			return
		}
		world := parent.Mul4(n.LocalMatrix())
		if n.Mesh != nil {
			out = append(out, Instance{Node: n, Mesh: n.Mesh, World: world})
		}
		for _, c := range n.children {
			walk(c, world)
		}
	}
	walk(s.Root, mgl64.Ident4())
	return out
}

// PointLights returns the point lights in insertion order.
func (s *Scene) PointLights() []PointLight {
	var out []PointLight
	for _, l := range s.Lights {
		if pl, ok := l.(PointLight); ok {
			out = append(out, pl)
		}
	}
	return out
}
