package control_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/control"
	"github.com/san-kum/lorenzbox/internal/sim"
)

var _ = Describe("Surface", func() {
	var (
		scene *sim.Scene
		surf  *control.Surface
	)

	BeforeEach(func() {
		p := config.DefaultConfig()
		p.Seed = 11
		var err error
		scene, err = sim.New(p)
		Expect(err).NotTo(HaveOccurred())
		surf = control.NewSurface(scene)
	})

	It("labels the pause button with the action it will take", func() {
		pause := surf.MustField(control.KeyPause)
		Expect(pause.Label()).To(Equal("pause"))
		pause.Press()
		Expect(scene.Paused()).To(BeTrue())
		Expect(pause.Label()).To(Equal("resume"))
	})

	It("labels the hide button and notifies listeners", func() {
		var got []bool
		surf.OnHide(func(h bool) { got = append(got, h) })
		hide := surf.MustField(control.KeyHide)
		Expect(hide.Label()).To(Equal("hide controls"))
		hide.Press()
		Expect(hide.Label()).To(Equal("show controls"))
		hide.Press()
		Expect(got).To(Equal([]bool{true, false}))
	})

	It("unpauses on respawn", func() {
		surf.TogglePause()
		surf.MustField(control.KeyRespawn).Press()
		Expect(scene.Paused()).To(BeFalse())
		Expect(scene.Len()).To(Equal(config.DefaultParticleCount))
	})

	It("unchecks trace when the view changes", func() {
		surf.MustField(control.KeyTrace).SetChecked(true)
		Expect(scene.Params.Trace).To(BeTrue())
		Expect(surf.MustField(control.KeyView).Select("side")).To(Succeed())
		Expect(scene.Params.Trace).To(BeFalse())
		Expect(scene.Params.View).To(Equal(config.ViewSide))
	})

	It("marks only pause and hide as fixed", func() {
		var fixed []string
		for _, f := range surf.Fields() {
			if f.Fixed {
				fixed = append(fixed, f.Key)
			}
		}
		Expect(fixed).To(ConsistOf(control.KeyPause, control.KeyHide))
	})

	It("groups keys by kind", func() {
		Expect(surf.Keys(control.KindNumber)).To(Equal([]string{control.KeySpread, control.KeyX, control.KeyY, control.KeyZ}))
		Expect(surf.Keys(control.KindCheckbox)).To(ConsistOf(control.KeyOutlines, control.KeyTrace))
		Expect(surf.Field("nope")).To(BeNil())
		Expect(func() { surf.MustField("nope") }).To(Panic())
	})
})

var _ = Describe("Panel", func() {
	var panel *control.Panel

	BeforeEach(func() {
		scene, err := sim.New(config.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		panel = control.DefaultLayout(control.NewSurface(scene))
		panel.Position(10, 10)
	})

	pos := func(key string) []float64 {
		w := panel.Widget(key)
		Expect(w).NotTo(BeNil())
		return []float64{w.X, w.Y}
	}

	It("places siblings side by side", func() {
		Expect(pos(control.KeyPause)).To(Equal([]float64{10, 10}))
		Expect(pos(control.KeyHide)).To(Equal([]float64{100, 10}))
		Expect(pos(control.KeyX)).To(Equal([]float64{10, 858}))
		Expect(pos(control.KeyY)).To(Equal([]float64{90, 858}))
		Expect(pos(control.KeyZ)).To(Equal([]float64{170, 858}))
	})

	It("starts each row below the tallest widget of the previous one", func() {
		Expect(pos(control.KeyTimestep)).To(Equal([]float64{10, 40}))
		Expect(pos(control.KeyView)).To(Equal([]float64{10, 560}))
		Expect(pos(control.KeyTrace)).To(Equal([]float64{140, 560}))
		Expect(pos(control.KeyIntegrator)).To(Equal([]float64{10, 720}))
	})

	It("applies offsets when drawing", func() {
		x, y, _, _ := panel.Widget(control.KeyTrace).Bounds()
		Expect(x).To(Equal(140.0))
		Expect(y).To(Equal(587.0))
	})

	It("reports its extent", func() {
		w, h := panel.Size()
		Expect(w).To(Equal(250.0))
		Expect(h).To(Equal(898.0))
	})

	It("keeps fixed widgets visible when hidden", func() {
		panel.ToggleVisible()
		Expect(panel.Visible()).To(BeFalse())
		for _, w := range panel.Widgets() {
			Expect(w.Visible).To(Equal(w.Fixed()), w.Field.Key)
		}
		panel.ToggleVisible()
		for _, w := range panel.Widgets() {
			Expect(w.Visible).To(BeTrue())
		}
	})

	It("lays out every row", func() {
		Expect(panel.Rows()).To(HaveLen(13))
		Expect(panel.Widgets()).To(HaveLen(17))
	})
})
