package viewer_test

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/molecule"
	"github.com/san-kum/molview/internal/scene"
	"github.com/san-kum/molview/internal/viewer"
)

// orderSurface records whether the camera and molecule were current when a
// frame was drawn.
type orderSurface struct {
	viewer.Headless
	v         *viewer.Viewer
	rotations []float64
	cameras   []mgl64.Vec3
}

func (o *orderSurface) Render(s *scene.Scene, cam *scene.PerspectiveCamera) {
	o.Headless.Render(s, cam)
	if o.v != nil {
		o.rotations = append(o.rotations, o.v.Molecule.Rotation.X)
	}
	o.cameras = append(o.cameras, cam.Position)
}

var _ = Describe("Viewer", func() {
	var (
		surface *viewer.Headless
		v       *viewer.Viewer
	)

	BeforeEach(func() {
		surface = &viewer.Headless{}
		var err error
		v, err = viewer.New(config.DefaultConfig(), surface, 1280, 720)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("initialization", func() {
		It("builds a molecule with one central atom and four units", func() {
			children := v.Molecule.Children()
			Expect(children).To(HaveLen(5))
			Expect(children[0].Mesh).NotTo(BeNil())
			Expect(molecule.Units(v.Molecule)).To(HaveLen(4))
		})

		It("shares geometry and material across units", func() {
			units := molecule.Units(v.Molecule)
			for _, u := range units[1:] {
				for i, c := range u.Children() {
					ref := units[0].Children()[i].Mesh
					Expect(c.Mesh.Geometry).To(Equal(ref.Geometry))
					Expect(c.Mesh.Material).To(Equal(ref.Material))
				}
				Expect(u.LocalMatrix()).NotTo(Equal(units[0].LocalMatrix()))
			}
		})

		It("places the camera on the Z axis at distance 250", func() {
			Expect(v.Camera.Position).To(Equal(mgl64.Vec3{0, 0, 250}))
		})

		It("uses the fixed projection parameters", func() {
			Expect(v.Camera.FOV).To(Equal(75.0))
			Expect(v.Camera.Near).To(Equal(0.1))
			Expect(v.Camera.Far).To(Equal(1000.0))
			Expect(v.Camera.Aspect).To(Equal(1280.0 / 720.0))
		})

		It("sizes the surface and enables shadows", func() {
			w, h := surface.Size()
			Expect(w).To(Equal(1280))
			Expect(h).To(Equal(720))
			Expect(surface.Shadows()).To(BeTrue())
		})

		It("adds ambient and point lights, molecule and ground", func() {
			Expect(v.Scene.Lights).To(HaveLen(2))
			Expect(v.Scene.PointLights()).To(HaveLen(1))
			Expect(v.Scene.PointLights()[0].CastShadow).To(BeTrue())
			Expect(v.Scene.Children()).To(ConsistOf(v.Molecule, v.Ground))
		})

		It("rejects an empty viewport", func() {
			_, err := viewer.New(nil, &viewer.Headless{}, 0, 720)
			Expect(errors.Is(err, viewer.ErrInvalidViewport)).To(BeTrue())
		})
	})

	Describe("ticking", func() {
		It("spins the molecule by 0.005 per axis per tick", func() {
			const n = 240
			v.Step(n)
			want := math.Mod(n*0.005, 2*math.Pi)
			r := v.Molecule.Rotation
			for _, got := range []float64{r.X, r.Y, r.Z} {
				Expect(math.Mod(got, 2*math.Pi)).To(BeNumerically("~", want, 1e-9))
			}
		})

		It("renders one frame per tick", func() {
			v.Step(10)
			Expect(surface.Frames).To(BeEquivalentTo(10))
			Expect(v.Ticks()).To(BeEquivalentTo(10))
		})

		It("leaves the camera alone without input", func() {
			v.Step(100)
			Expect(v.Camera.Position).To(Equal(mgl64.Vec3{0, 0, 250}))
		})

		It("applies spin and camera input before drawing", func() {
			spy := &orderSurface{}
			ov, err := viewer.New(nil, spy, 800, 600)
			Expect(err).NotTo(HaveOccurred())
			spy.v = ov

			ov.Controls.RotateLeft(-math.Pi / 2)
			ov.Tick()

			Expect(spy.rotations).To(Equal([]float64{0.005}))
			Expect(spy.cameras[0][0]).To(BeNumerically("~", 250, 1e-9))
		})

		It("holds the spin while paused", func() {
			v.TogglePause()
			v.Step(5)
			Expect(v.Molecule.Rotation).To(Equal(scene.Euler{}))
			Expect(surface.Frames).To(BeEquivalentTo(5))
		})
	})

	Describe("resizing", func() {
		It("sets the aspect to width over height", func() {
			Expect(v.Resize(1000, 333)).To(Succeed())
			Expect(v.Camera.Aspect).To(Equal(1000.0 / 333.0))
			w, h := surface.Size()
			Expect([]int{w, h}).To(Equal([]int{1000, 333}))
		})

		It("is idempotent", func() {
			Expect(v.Resize(640, 480)).To(Succeed())
			aspect, proj := v.Camera.Aspect, v.Camera.ProjectionMatrix()
			Expect(v.Resize(640, 480)).To(Succeed())
			Expect(v.Camera.Aspect).To(Equal(aspect))
			Expect(v.Camera.ProjectionMatrix()).To(Equal(proj))
			w, h := surface.Size()
			Expect([]int{w, h}).To(Equal([]int{640, 480}))
		})

		It("rejects degenerate sizes without changing state", func() {
			aspect := v.Camera.Aspect
			err := v.Resize(640, 0)
			Expect(errors.Is(err, viewer.ErrInvalidViewport)).To(BeTrue())
			Expect(v.Camera.Aspect).To(Equal(aspect))
			w, _ := surface.Size()
			Expect(w).To(Equal(1280))
		})

		It("is picked up by the next frame", func() {
			spy := &orderSurface{}
			ov, err := viewer.New(nil, spy, 800, 600)
			Expect(err).NotTo(HaveOccurred())
			Expect(ov.Resize(300, 100)).To(Succeed())
			ov.Tick()
			w, h := spy.Size()
			Expect(w).To(Equal(300))
			Expect(h).To(Equal(100))
			Expect(ov.Camera.Aspect).To(Equal(3.0))
		})
	})

	Describe("view reset", func() {
		It("returns the camera home and keeps the spin", func() {
			v.Controls.RotateLeft(1)
			v.Controls.Dolly(3)
			v.Step(3)
			Expect(v.Camera.Position).NotTo(Equal(mgl64.Vec3{0, 0, 250}))

			v.ResetView()
			Expect(v.Camera.Position).To(Equal(mgl64.Vec3{0, 0, 250}))
			Expect(v.Camera.Target).To(Equal(mgl64.Vec3{}))
			Expect(v.Molecule.Rotation.X).To(BeNumerically("~", 0.015, 1e-12))

			v.Tick()
			Expect(v.Camera.Position).To(Equal(mgl64.Vec3{0, 0, 250}))
		})
	})

	Describe("recording", func() {
		It("samples rotation and atom positions", func() {
			rec := viewer.NewRecorder(2)
			v.AddSampler(rec)
			v.Step(10)
			Expect(rec.Samples).To(HaveLen(5))
			last := rec.Samples[4]
			Expect(last.Tick).To(BeEquivalentTo(10))
			Expect(last.Rotation.X).To(BeNumerically("~", 0.05, 1e-12))
			Expect(last.Atoms).To(HaveLen(4))
		})
	})
})
