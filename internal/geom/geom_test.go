package geom_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/typhoonviz/internal/geom"
)

var _ = Describe("Linspace", func() {
	It("includes the endpoint when asked", func() {
		xs := geom.Linspace(0, 1, 5, true)
		Expect(xs).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	})

	It("excludes the endpoint otherwise", func() {
		xs := geom.Linspace(0, 1, 4, false)
		Expect(xs).To(Equal([]float64{0, 0.25, 0.5, 0.75}))
	})

	It("handles degenerate sizes", func() {
		Expect(geom.Linspace(0, 1, 0, true)).To(BeEmpty())
		Expect(geom.Linspace(3, 9, 1, true)).To(Equal([]float64{3}))
	})
})

var _ = Describe("Flow curves", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	It("returns the requested number of curves and points", func() {
		curves := geom.GenerateFlowCurves(rng, geom.Point{X: 0, Y: 0}, geom.FlowParams{NumCurves: 15, CurvePoints: 100})
		Expect(curves).To(HaveLen(15))
		for i, c := range curves {
			Expect(c.Points).To(HaveLen(100))
			Expect(c.Instance).To(Equal(i))
		}
	})

	It("keeps opacity and width inside their ranges", func() {
		for _, c := range geom.GenerateFlowCurves(rng, geom.Point{}, geom.DefaultFlowParams()) {
			Expect(c.Opacity).To(BeNumerically(">=", 0.3))
			Expect(c.Opacity).To(BeNumerically("<", 0.7))
			Expect(c.Width).To(BeNumerically(">=", 1))
			Expect(c.Width).To(BeNumerically("<", 3))
			Expect(c.Points.IsValid()).To(BeTrue())
		}
	})

	It("rises from the anchor by roughly pi over the curve", func() {
		base := geom.Point{X: -8, Y: 2.5}
		curves := geom.GenerateFlowCurves(rng, base, geom.FlowParams{NumCurves: 200, CurvePoints: 50})

		var startY, endY float64
		for _, c := range curves {
			startY += c.Points[0].Y
			endY += c.Points[len(c.Points)-1].Y
		}
		startY /= float64(len(curves))
		endY /= float64(len(curves))

		Expect(startY).To(BeNumerically("~", base.Y, 0.15))
		Expect(endY).To(BeNumerically("~", base.Y+math.Pi, 0.15))
	})

	It("is reproducible for a fixed seed", func() {
		a := geom.GenerateFlowCurves(rand.New(rand.NewSource(9)), geom.Point{}, geom.DefaultFlowParams())
		b := geom.GenerateFlowCurves(rand.New(rand.NewSource(9)), geom.Point{}, geom.DefaultFlowParams())
		Expect(a).To(Equal(b))
	})

	It("sways without changing the sample count", func() {
		c := geom.GenerateFlowCurves(rng, geom.Point{}, geom.FlowParams{NumCurves: 1, CurvePoints: 30})[0]
		swayed := geom.Sway(c.Points, 0.3, 1.2, 0, 0)
		Expect(swayed).To(HaveLen(30))
		for i := range swayed {
			Expect(swayed[i].X).To(Equal(c.Points[i].X))
			Expect(math.Abs(swayed[i].Y - c.Points[i].Y)).To(BeNumerically("<=", 0.3))
		}

		both := geom.Sway(c.Points, 0.4, 1.2, 0.1, 0.7)
		for i := range both {
			Expect(math.Abs(both[i].X - c.Points[i].X)).To(BeNumerically("<=", 0.1))
		}
	})
})

var _ = Describe("Heart", func() {
	It("is zero at the top cusp", func() {
		Expect(geom.HeartRadius(math.Pi/2, 1.0)).To(BeNumerically("~", 0, 1e-8))
	})

	It("is finite and non-negative over a dense sample", func() {
		for _, scale := range []float64{0.7, 0.85, 1.0, 1.15, 1.3} {
			for i := 0; i <= 10000; i++ {
				t := 2 * math.Pi * float64(i) / 10000
				r := geom.HeartRadius(t, scale)
				Expect(math.IsNaN(r) || math.IsInf(r, 0)).To(BeFalse())
				Expect(r).To(BeNumerically(">=", -1e-12))
			}
		}
	})

	It("scales linearly", func() {
		Expect(geom.HeartRadius(1.0, 1.3)).To(BeNumerically("~", 1.3*geom.HeartRadius(1.0, 1.0), 1e-12))
	})

	It("samples an outline without the endpoint", func() {
		pts := geom.HeartOutline(1.0, 200)
		Expect(pts).To(HaveLen(200))
		Expect(pts.IsValid()).To(BeTrue())
		// theta = 0 lies on the positive y axis at r(0) = 2
		Expect(pts[0].X).To(BeNumerically("~", 0, 1e-12))
		Expect(pts[0].Y).To(BeNumerically("~", 2, 1e-12))
	})

	It("rotates outlines about the origin", func() {
		pts := geom.Points{{X: 1, Y: 0}}
		r := pts.Rotate(math.Pi / 2)
		Expect(r[0].X).To(BeNumerically("~", 0, 1e-12))
		Expect(r[0].Y).To(BeNumerically("~", 1, 1e-12))
	})

	It("places heart stars inside the curve", func() {
		stars := geom.HeartStars(rand.New(rand.NewSource(3)), 60)
		Expect(stars).To(HaveLen(60))
		for _, s := range stars {
			r := math.Hypot(s.X, s.Y)
			t := math.Atan2(s.X, s.Y)
			Expect(r).To(BeNumerically("<=", geom.HeartRadius(t, 1.0)+1e-9))
			Expect(s.Size).To(BeNumerically(">=", 3))
			Expect(s.Size).To(BeNumerically("<", 10))
		}
	})
})

var _ = Describe("Stars", func() {
	It("returns N + N/2 points for a cluster", func() {
		rng := rand.New(rand.NewSource(1))
		for _, n := range []int{0, 1, 7, 50, 90} {
			stars := geom.Cluster(rng, geom.Point{X: 1, Y: -1}, n, 0.6)
			Expect(stars).To(HaveLen(n + n/2))
		}
	})

	It("puts dust on the annulus", func() {
		rng := rand.New(rand.NewSource(2))
		center := geom.Point{X: 2, Y: 3}
		stars := geom.Cluster(rng, center, 40, 0.8)
		for _, s := range stars[40:] {
			d := math.Hypot(s.X-center.X, s.Y-center.Y)
			Expect(d).To(BeNumerically(">=", 0.4-1e-9))
			Expect(d).To(BeNumerically("<", 1.2+1e-9))
			Expect(s.Color.A).To(BeNumerically("<", 0.6))
		}
	})

	It("fills the requested area", func() {
		rng := rand.New(rand.NewSource(5))
		stars := geom.StarField(rng, geom.FieldParams{Area: geom.Square(6), Count: 200, SizeMin: 1, SizeMax: 3})
		Expect(stars).To(HaveLen(200))
		min, max := stars.Points().Bounds()
		Expect(min.X).To(BeNumerically(">=", -6))
		Expect(max.Y).To(BeNumerically("<", 6))
		Expect(stars.Colors()[0]).To(Equal("rgba(255,255,255,1)"))
		Expect(stars.Sizes()).To(HaveLen(200))
	})
})

var _ = Describe("Validation", func() {
	It("rejects NaN and Inf", func() {
		Expect(geom.Points{{X: 1, Y: 2}}.Validate()).To(Succeed())
		Expect(geom.Points{{X: math.NaN(), Y: 0}}.Validate()).To(MatchError(geom.ErrInvalidGeometry))
		Expect(geom.Points{{X: 0, Y: math.Inf(-1)}}.IsValid()).To(BeFalse())
	})
})
