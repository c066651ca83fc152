package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// NodeInfo is a serialisable view of a node subtree.
type NodeInfo struct {
	Name       string      `yaml:"name"`
	Position   mgl64.Vec3  `yaml:"position,flow"`
	Rotation   Euler       `yaml:"rotation,flow"`
	Geometry   string      `yaml:"geometry,omitempty"`
	Shape      Geometry    `yaml:"shape,omitempty"`
	Material   *Material   `yaml:"material,omitempty"`
	CastShadow bool        `yaml:"cast_shadow,omitempty"`
	Children   []*NodeInfo `yaml:"children,omitempty"`
}

// Info is the serialisable view of a scene.
type Info struct {
	Background Color       `yaml:"background"`
	Lights     []LightInfo `yaml:"lights"`
	Nodes      []*NodeInfo `yaml:"nodes"`
}

type LightInfo struct {
	Type  string `yaml:"type"`
	Light Light  `yaml:"light"`
}

func Describe(s *Scene) *Info {
	info := &Info{Background: s.Background}
	for _, l := range s.Lights {
		li := LightInfo{Light: l}
		switch l.(type) {
		case AmbientLight:
			li.Type = "ambient"
		case PointLight:
			li.Type = "point"
		}
		info.Lights = append(info.Lights, li)
	}
	for _, c := range s.Children() {
		info.Nodes = append(info.Nodes, describeNode(c))
	}
	return info
}

func describeNode(n *Node) *NodeInfo {
	ni := &NodeInfo{Name: n.Name, Position: n.Position, Rotation: n.Rotation}
	if n.Mesh != nil {
		ni.Geometry = n.Mesh.Geometry.Kind()
		ni.Shape = n.Mesh.Geometry
		m := n.Mesh.Material
		ni.Material = &m
		ni.CastShadow = n.Mesh.CastShadow
	}
	for _, c := range n.children {
		ni.Children = append(ni.Children, describeNode(c))
	}
	return ni
}

// MarshalYAML renders the scene graph as YAML.
func MarshalYAML(s *Scene) ([]byte, error) {
	return yaml.Marshal(Describe(s))
}
