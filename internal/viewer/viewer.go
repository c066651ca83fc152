package viewer

import (
	"fmt"
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/orbit"
	"github.com/san-kum/molview/internal/scene"
)

// Background is the clear colour of the scene.
const Background scene.Color = 0x000000

// Viewer is the molecule viewer context.
type Viewer struct {
	Scene    *scene.Scene
	Camera   *scene.PerspectiveCamera
	Surface  Surface
	Controls *orbit.Controls
	Molecule *scene.Node
	Ground   *scene.Node

	Spin   float64
	Paused bool

	home     mgl64.Vec3
	ticks    uint64
	samplers []Sampler
	log      *log.Logger
}

// New builds the scene graph and sizes surface to width x height.
func New(cfg *config.Config, surface Surface, width, height int) (*Viewer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	v := &Viewer{
		Scene:   scene.New(),
		Surface: surface,
		Spin:    cfg.Spin,
		log:     log.New(io.Discard, "", 0),
	}
	v.Scene.Background = Background

	v.Camera = scene.NewPerspectiveCamera(cfg.Camera.FOV, float64(width)/float64(height), cfg.Camera.Near, cfg.Camera.Far)
	v.Camera.Position = mgl64.Vec3{0, 0, cfg.Camera.Distance}
	v.home = v.Camera.Position

	surface.SetSize(width, height)
	if ss, ok := surface.(ShadowSurface); ok {
		ss.SetShadows(cfg.Shadows)
	}

	v.Controls = orbit.New(v.Camera)
	v.Controls.EnableDamping = cfg.Camera.Damping
	v.Controls.DampingFactor = cfg.Camera.DampingFactor

	for _, l := range molecule.Lights() {
		v.Scene.AddLight(l)
	}

	v.Molecule = molecule.Build()
	v.Scene.Add(v.Molecule)

	v.Ground = molecule.Ground()
	v.Scene.Add(v.Ground)

	return v, nil
}

// SetLogger routes viewer diagnostics to l.
func (v *Viewer) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	v.log = l
	v.log.Printf("viewer ready: %d instances, camera at %v", len(v.Scene.Instances()), v.Camera.Position)
}

// AddSampler registers s to observe every tick after rendering.
func (v *Viewer) AddSampler(s Sampler) { v.samplers = append(v.samplers, s) }

// Ticks returns the number of completed ticks.
func (v *Viewer) Ticks() uint64 { return v.ticks }

// Tick advances one frame: controls, spin, render.
func (v *Viewer) Tick() {
	if v.Controls.Update() {
		v.log.Printf("tick %d: camera moved to %v", v.ticks, v.Camera.Position)
	}

	if !v.Paused {
		r := &v.Molecule.Rotation
		r.X += v.Spin
		r.Y += v.Spin
		r.Z += v.Spin
	}

	v.Surface.Render(v.Scene, v.Camera)
	v.ticks++

	for _, s := range v.samplers {
		s.OnTick(v.ticks, v)
	}
}

// Resize updates the camera projection and the surface for a new viewport.
// Invalid sizes are rejected and leave the viewer unchanged.
func (v *Viewer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		v.log.Printf("ignoring resize to %dx%d", width, height)
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
	}
	v.Camera.Aspect = float64(width) / float64(height)
	v.Camera.UpdateProjectionMatrix()
	v.Surface.SetSize(width, height)
	v.log.Printf("resized to %dx%d (aspect %.4f)", width, height, v.Camera.Aspect)
	return nil
}

// TogglePause stops or resumes the spin. Rendering continues.
func (v *Viewer) TogglePause() { v.Paused = !v.Paused }

// ResetView returns the camera to its initial position and drops pending
// orbit input. The molecule keeps its rotation.
func (v *Viewer) ResetView() {
	v.Controls.Reset()
	v.Controls.Target = mgl64.Vec3{}
	v.Camera.Position = v.home
	v.Camera.LookAt(v.Controls.Target)
}
