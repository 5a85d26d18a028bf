package sketch_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vidyut/internal/sketch"
)

var _ = Describe("Slider", func() {
	var (
		panel   *sketch.Panel
		slider  *sketch.Slider
		changes []float64
	)

	BeforeEach(func() {
		changes = nil
		panel = sketch.NewPanel(sketch.PanelOptions{Title: "PENDULUM PHYSICS"})
		slider = sketch.NewSlider(panel, "LENGTH", 50, 300, 150, 10, sketch.Fixed(0), func(v float64) {
			changes = append(changes, v)
		})
	})

	It("labels the initial value", func() {
		Expect(slider.Value()).To(Equal(150.0))
		Expect(slider.Label()).To(Equal("LENGTH: 150"))
		Expect(slider.Caption.ID()).To(Equal("label-length"))
	})

	It("updates value and label on SetValue without firing the callback", func() {
		slider.SetValue(200)
		Expect(slider.Value()).To(Equal(200.0))
		Expect(slider.Label()).To(Equal("LENGTH: 200"))
		Expect(changes).To(BeEmpty())
	})

	It("fires the callback on user input", func() {
		slider.Input(90)
		Expect(slider.Label()).To(Equal("LENGTH: 90"))
		Expect(changes).To(Equal([]float64{90}))
	})

	It("clamps to its bounds and snaps to its step", func() {
		slider.SetValue(1000)
		Expect(slider.Value()).To(Equal(300.0))
		slider.SetValue(-5)
		Expect(slider.Value()).To(Equal(50.0))
		slider.SetValue(123)
		Expect(slider.Value()).To(Equal(120.0))
		Expect(slider.Label()).To(Equal("LENGTH: 120"))
	})

	It("nudges by whole steps", func() {
		slider.Nudge(2)
		Expect(slider.Value()).To(Equal(170.0))
		Expect(changes).To(Equal([]float64{170}))
	})

	It("formats with one decimal by default", func() {
		s := sketch.NewSlider(nil, "GRAVITY", 0.1, 1.5, 0.5, 0, nil, nil)
		Expect(s.Label()).To(Equal("GRAVITY: 0.5"))
		s.SetValue(0.75)
		Expect(s.Value()).To(BeNumerically("~", 0.75, 1e-9))
		Expect(s.Label()).To(Equal("GRAVITY: 0.8"))
	})

	It("slugs multi-word labels", func() {
		s := sketch.NewSlider(nil, "Wave  Speed", 0, 1, 0, 0.1, nil, nil)
		Expect(s.Caption.ID()).To(Equal("label-wave-speed"))
	})
})

var _ = Describe("Toggle", func() {
	var (
		panel   *sketch.Panel
		a, b    *sketch.Slider
		toggle  *sketch.Toggle
		targets []sketch.Element
	)

	BeforeEach(func() {
		panel = sketch.NewPanel(sketch.PanelOptions{})
		a = sketch.NewSlider(panel, "GRAVITY", 0.1, 1.5, 0.65, 0.05, sketch.Fixed(2), nil)
		b = sketch.NewSlider(panel, "LENGTH", 50, 300, 150, 10, sketch.Fixed(0), nil)
		targets = []sketch.Element{a.Track, a.Caption, b.Track, b.Caption}
		toggle = sketch.NewToggle(panel, "", "", true, targets...)
	})

	It("starts in the requested state", func() {
		Expect(toggle.State()).To(BeTrue())
		Expect(toggle.Text()).To(Equal(sketch.DefaultToggleOn))
	})

	It("keeps every target's visibility equal to its state", func() {
		for i := 0; i < 5; i++ {
			before := toggle.State()
			toggle.Press()
			Expect(toggle.State()).To(Equal(!before))
			for _, t := range targets {
				Expect(t.Visible()).To(Equal(toggle.State()))
			}
		}
		Expect(toggle.Text()).To(Equal(sketch.DefaultToggleOff))
	})

	It("honours an initially hidden state", func() {
		off := sketch.NewToggle(nil, "ON", "OFF", false, a.Track)
		Expect(off.Text()).To(Equal("OFF"))
		off.Press()
		Expect(off.Text()).To(Equal("ON"))
		Expect(a.Track.Visible()).To(BeTrue())
	})
})

var _ = Describe("Panel", func() {
	It("applies defaults", func() {
		p := sketch.NewPanel(sketch.PanelOptions{})
		Expect(p.Position()).To(Equal(sketch.BottomLeft))
		Expect(p.Theme()).To(Equal(sketch.ThemeRetro))
		Expect(p.Visible()).To(BeTrue())
		Expect(p.Bottom()).To(BeTrue())
		Expect(p.Right()).To(BeFalse())
	})

	It("starts hidden when asked", func() {
		p := sketch.NewPanel(sketch.PanelOptions{Hidden: true})
		Expect(p.Visible()).To(BeFalse())
		Expect(p.Render()).To(BeEmpty())
		Expect(p.Lines()).To(BeNil())
	})

	It("lists only visible elements", func() {
		p := sketch.NewPanel(sketch.PanelOptions{Title: "CTRL"})
		s := sketch.NewSlider(p, "SPEED", 1, 10, 5, 1, sketch.Fixed(0), nil)
		t := sketch.NewToggle(p, "", "", true, s.Track, s.Caption)

		Expect(p.Lines()).To(HaveLen(4))
		t.Press()
		Expect(p.Lines()).To(Equal([]string{"CTRL", "[ " + sketch.DefaultToggleOff + " ]"}))
	})

	It("routes keyboard nudges to the focused slider", func() {
		p := sketch.NewPanel(sketch.PanelOptions{})
		first := sketch.NewSlider(p, "A", 0, 10, 5, 1, nil, nil)
		second := sketch.NewSlider(p, "B", 0, 10, 5, 1, nil, nil)

		p.Nudge(1)
		Expect(first.Value()).To(Equal(6.0))
		p.FocusNext()
		Expect(p.Focused()).To(BeIdenticalTo(second))
		p.Nudge(-2)
		Expect(second.Value()).To(Equal(3.0))
	})

	It("cycles themes and renders each", func() {
		p := sketch.NewPanel(sketch.PanelOptions{Title: "CTRL"})
		sketch.NewSlider(p, "SPEED", 1, 10, 5, 1, nil, nil)
		for range sketch.Themes {
			Expect(strings.Contains(p.Render(), "SPEED: 5.0")).To(BeTrue())
			p.CycleTheme()
		}
		Expect(p.Theme()).To(Equal(sketch.ThemeRetro))
	})
})
