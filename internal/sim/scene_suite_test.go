package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
	"github.com/san-kum/lorenzbox/internal/viz"
)

type recorder struct{ frames []sim.Frame }

func (r *recorder) OnFrame(f sim.Frame, _ []swarm.Particle) { r.frames = append(r.frames, f) }

func snapshot(s *sim.Scene) []swarm.Particle {
	return append([]swarm.Particle(nil), s.Particles()...)
}

var _ = Describe("Scene", func() {
	var (
		scene *sim.Scene
		rec   *recorder
	)

	BeforeEach(func() {
		p := config.DefaultConfig()
		p.Seed = 99
		p.ParticleCount = 30
		var err error
		scene, err = sim.New(p)
		Expect(err).NotTo(HaveOccurred())
		rec = &recorder{}
		scene.AddObserver(rec)
	})

	Describe("pausing", func() {
		It("leaves particles and clock alone while paused", func() {
			scene.Tick()
			Expect(scene.TogglePause()).To(BeTrue())
			before, clock := snapshot(scene), scene.Clock()

			for i := 0; i < 10; i++ {
				_, ok := scene.Tick()
				Expect(ok).To(BeFalse())
			}
			Expect(scene.Particles()).To(Equal(before))
			Expect(scene.Clock()).To(Equal(clock))
			Expect(rec.frames).To(HaveLen(1))
		})

		It("resumes where it stopped", func() {
			scene.TogglePause()
			scene.Tick()
			Expect(scene.TogglePause()).To(BeFalse())
			f, ok := scene.Tick()
			Expect(ok).To(BeTrue())
			Expect(f.Clock).To(Equal(viz.ClockStart))
			Expect(f.Index).To(Equal(0))
		})

		It("is cleared by respawn", func() {
			scene.TogglePause()
			scene.Respawn()
			Expect(scene.Paused()).To(BeFalse())
			Expect(scene.Len()).To(Equal(30))
			f, _ := scene.Tick()
			Expect(f.Clear).To(BeTrue())
		})
	})

	Describe("views", func() {
		It("unchecks trace on view change", func() {
			scene.Params.Trace = true
			scene.SetView(config.ViewTop)
			Expect(scene.Params.Trace).To(BeFalse())
			Expect(scene.Params.View).To(Equal(config.ViewTop))
		})

		It("places the camera from the frame clock", func() {
			for i := 0; i < 3; i++ {
				f, _ := scene.Tick()
				Expect(f.Camera).To(Equal(viz.CameraFor(config.ViewRotate, viz.ClockStart+i)))
			}
			Expect(scene.Camera()).To(Equal(viz.CameraFor(config.ViewRotate, viz.ClockStart+3)))
		})

		It("draws the reference cube only in the untraced orbit", func() {
			f, _ := scene.Tick()
			Expect(f.Cube).To(BeTrue())
			scene.SetView(config.ViewSide)
			f, _ = scene.Tick()
			Expect(f.Cube).To(BeFalse())
		})
	})

	Describe("trace", func() {
		It("keeps the buffer while tracing", func() {
			scene.SetView(config.ViewTop)
			scene.Tick()
			scene.Params.Trace = true
			f, _ := scene.Tick()
			Expect(f.Clear).To(BeFalse())
		})

		It("clears once when tracing starts in the orbit view", func() {
			f, _ := scene.Tick()
			Expect(f.Clear).To(BeTrue())
			scene.Params.Trace = true
			f, _ = scene.Tick()
			Expect(f.Clear).To(BeTrue())
			Expect(f.Cube).To(BeFalse())
			f, _ = scene.Tick()
			Expect(f.Clear).To(BeFalse())
		})
	})

	Describe("particle count", func() {
		It("keeps the live count equal to the record", func() {
			for _, n := range []int{1, 1000, 250, 30} {
				scene.SetParticleCount(n)
				Expect(scene.Len()).To(Equal(n))
				Expect(scene.Params.ParticleCount).To(Equal(n))
			}
		})

		It("drops the oldest particles when shrinking", func() {
			before := snapshot(scene)
			scene.SetParticleCount(10)
			Expect(scene.Particles()).To(Equal(before[20:]))
		})
	})
})
