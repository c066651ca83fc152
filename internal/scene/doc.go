// Package scene provides the retained scene graph shared by every molview
// output surface.
//
// A [Scene] owns a tree of [Node] values. A node carries a local transform
// (position, XYZ Euler rotation, scale) and optionally a [Mesh], which pairs an
// immutable [Geometry] with an immutable [Material]. World transforms compose
// parent to child:
//
//	world = parent.world * T * R * S
//
// Renderers never walk the tree themselves; they call [Scene.Instances] and
// receive a flat list of meshes with their world matrices.
//
// # Cameras
//
// [PerspectiveCamera] keeps field of view, aspect ratio and clip planes. After
// changing any of them call [PerspectiveCamera.UpdateProjectionMatrix].
package scene
