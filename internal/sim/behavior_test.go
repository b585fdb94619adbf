package sim_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rollka/tiltring/internal/output"
	"github.com/rollka/tiltring/internal/render"
	"github.com/rollka/tiltring/internal/sensor"
	"github.com/rollka/tiltring/internal/sim"
	"github.com/rollka/tiltring/internal/track"
)

var _ = Describe("Runner", func() {
	var (
		physics  *track.Physics
		renderer *render.Renderer
	)

	newRunner := func(src sensor.Source) *sim.Runner {
		return sim.New(physics, renderer, src, output.Null{}, nil)
	}

	BeforeEach(func() {
		var err error
		physics, err = track.New(track.Geometry{Diameter: 0.035, Friction: 0.05, GravityScale: 1})
		Expect(err).NotTo(HaveOccurred())

		layout, err := render.NewLayout([]float64{30, 60, 90, 120, 150, 210, 240, 270, 300, 330})
		Expect(err).NotTo(HaveOccurred())
		renderer = render.NewRenderer(layout)
	})

	Context("with the board tilted straight down", func() {
		It("settles the marble at the low point", func() {
			runner := newRunner(sensor.Static{X: 0, Y: -9.8})

			result, err := runner.Run(context.Background(), track.Marble{Position: 30},
				sim.Config{TickRate: 60, Duration: 30})

			Expect(err).NotTo(HaveOccurred())
			Expect(render.Distance(result.Final.Position, 270)).To(BeNumerically("<", 5))
			Expect(result.Final.Speed).To(BeNumerically("~", 0, 0.05))
		})
	})

	Context("with the board level", func() {
		It("lets friction bleed off the starting speed", func() {
			runner := newRunner(sensor.Static{})

			result, err := runner.Run(context.Background(), track.Marble{Position: 90, Speed: 1},
				sim.Config{TickRate: 60, Duration: 2})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Final.Speed).To(BeNumerically("<", 0.01))
			Expect(result.Final.Speed).To(BeNumerically(">", 0))
		})

		It("keeps a resting marble at rest", func() {
			runner := newRunner(sensor.Static{})

			result, err := runner.Run(context.Background(), track.Marble{Position: 123},
				sim.Config{TickRate: 60, Duration: 1})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Final.Position).To(Equal(123.0))
			Expect(result.Final.Speed).To(BeZero())
		})
	})

	Context("with the low point across the wrap seam", func() {
		It("crosses 360 and settles near zero", func() {
			runner := newRunner(sensor.Static{X: 9.8, Y: 0})

			result, err := runner.Run(context.Background(), track.Marble{Position: 185},
				sim.Config{TickRate: 60, Duration: 30})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Final.Position).To(BeNumerically(">=", 0))
			Expect(result.Final.Position).To(BeNumerically("<", 360))
			Expect(render.Distance(result.Final.Position, 0)).To(BeNumerically("<", 5))
		})
	})

	Context("with a duration configured", func() {
		It("takes exactly duration times rate ticks", func() {
			runner := newRunner(sensor.Static{X: 1, Y: 1})

			result, err := runner.Run(context.Background(), track.Marble{},
				sim.Config{TickRate: 60, Duration: 1.5})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Ticks).To(Equal(90))
		})
	})
})
