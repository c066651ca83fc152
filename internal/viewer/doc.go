// Package viewer drives the molecule scene.
//
// A [Viewer] is the single context object of the program: it owns the scene,
// the camera, the orbit controls and the molecule, and renders into a
// [Surface]. The host environment calls three entry points:
//
//   - [New] once, to build the scene graph
//   - [Viewer.Tick] once per display frame
//   - [Viewer.Resize] whenever the viewport changes size
//
// Every call happens on one goroutine. The viewer does not lock.
//
// # Frame order
//
// Within a tick the controls update first, then the molecule spins, then the
// frame is rendered. A resize between two ticks is picked up by the next one.
package viewer
