// Package viz renders the molecule viewer in a terminal.
//
// The package draws on a braille [Canvas] (two by four dots per cell) and runs
// the viewer from a Bubble Tea program:
//
//   - [WireSurface]: viewer surface with shaded spheres, bond lines and a
//     ground grid
//   - [Model]: event loop, one viewer tick per frame
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Arrows/hjkl - Orbit the camera
//	+/-         - Dolly in and out
//	Space       - Pause/Resume spin
//	R           - Reset the view
//	T           - Cycle color themes
//	G           - Toggle GIF recording
//	?           - Show help overlay
//
// # Recording
//
// G starts capturing the canvas every frame; pressing it again writes the
// frames as an animated GIF (molview.gif by default).
package viz
