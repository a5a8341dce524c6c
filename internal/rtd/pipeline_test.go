package rtd_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rtdlab/internal/rtd"
)

var _ = Describe("Analyze", func() {
	params := rtd.Params{Diameter: 0.02, Length: 0.1, Porosity: 0.4}
	opts := rtd.Options{ClipNegative: true}

	Context("with a triangular tracer pulse", func() {
		// (t, C) = (0,0), (1,1), (2,0) at 60 mL/min.
		trace := rtd.Trace{
			RunID:            "1",
			Times:            []float64{0, 1, 2},
			Concentrations:   []float64{0, 1, 0},
			FlowRateMlPerMin: 60,
		}

		It("computes the moments and derived quantities", func() {
			res, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.MeanResidenceTime).To(BeNumerically("~", 1.0, 1e-12))
			Expect(res.Variance).To(BeNumerically("~", 0.0, 1e-12))
			Expect(res.Curve.E).To(Equal([]float64{0, 1, 0}))

			// A = π·0.01², Q = 1e-6 m³/s, v ≈ 3.183e-3 m/s.
			Expect(res.AxialDispersion).To(BeNumerically("~", 0.0, 1e-15))
			Expect(math.IsNaN(res.Peclet)).To(BeTrue(), "Pe divides by a zero D_ax")
			Expect(res.SpaceTime).To(BeNumerically("~", 12.566, 0.001))
			Expect(math.IsNaN(res.Reynolds)).To(BeTrue(), "no fluid properties supplied")
		})

		It("normalizes E(t) to unit area", func() {
			res, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())
			area := rtd.Trapezoid(res.Curve.E, res.Curve.Times)
			Expect(area).To(BeNumerically("~", 1.0, 1e-9))
		})
	})

	Context("with an asymmetric trace", func() {
		trace := rtd.Trace{
			RunID:            "skewed",
			Times:            []float64{0, 1, 2, 4, 7, 11},
			Concentrations:   []float64{0, 0.3, 0.9, 0.7, 0.2, 0},
			FlowRateMlPerMin: 30,
		}

		It("still integrates E(t) to one", func() {
			res, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(rtd.Trapezoid(res.Curve.E, res.Curve.Times)).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("shifts τ by exactly c under a time shift, with σ² invariant", func() {
			const c = 5.0
			shifted := trace
			shifted.Times = make([]float64, len(trace.Times))
			for i, v := range trace.Times {
				shifted.Times[i] = v + c
			}

			base, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())
			moved, err := rtd.Analyze(shifted, params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(moved.MeanResidenceTime).To(BeNumerically("~", base.MeanResidenceTime+c, 1e-9))
			Expect(moved.Variance).To(BeNumerically("~", base.Variance, 1e-9))
		})
	})

	Context("with an all-zero trace", func() {
		trace := rtd.Trace{
			RunID:            "flat",
			Times:            []float64{0, 1, 2, 3},
			Concentrations:   []float64{0, 0, 0, 0},
			FlowRateMlPerMin: 30,
		}

		It("produces a degenerate all-zero distribution, not an error", func() {
			res, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(res.Curve.E).To(Equal([]float64{0, 0, 0, 0}))
			Expect(res.MeanResidenceTime).To(BeZero())
			Expect(res.Variance).To(BeZero())
			Expect(math.IsNaN(res.Peclet)).To(BeTrue())
		})
	})

	Context("with negative detector noise", func() {
		trace := rtd.Trace{
			RunID:            "noisy",
			Times:            []float64{0, 1, 2},
			Concentrations:   []float64{-0.1, 1, -0.05},
			FlowRateMlPerMin: 30,
		}

		It("clips below zero when configured", func() {
			res, err := rtd.Analyze(trace, params, rtd.Options{ClipNegative: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Curve.E[0]).To(BeZero())
			Expect(res.Curve.E[2]).To(BeZero())
		})

		It("passes values through unmodified otherwise", func() {
			res, err := rtd.Analyze(trace, params, rtd.Options{ClipNegative: false})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Curve.E[0]).To(BeNumerically("<", 0))
		})

		It("does not mutate the input trace", func() {
			_, err := rtd.Analyze(trace, params, rtd.Options{ClipNegative: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(trace.Concentrations[0]).To(Equal(-0.1))
		})
	})

	Context("with zero flow rate", func() {
		trace := rtd.Trace{
			RunID:            "stalled",
			Times:            []float64{0, 1, 2},
			Concentrations:   []float64{0, 1, 0},
			FlowRateMlPerMin: 0,
		}

		It("reports undefined flow-derived quantities instead of failing", func() {
			res, err := rtd.Analyze(trace, params, opts)
			Expect(err).NotTo(HaveOccurred())

			Expect(math.IsNaN(res.AxialDispersion)).To(BeTrue())
			Expect(math.IsNaN(res.Peclet)).To(BeTrue())
			Expect(math.IsNaN(res.SpaceTime)).To(BeTrue())
			Expect(res.MeanResidenceTime).To(BeNumerically("~", 1.0, 1e-12))
		})
	})

	Context("with a structurally invalid trace", func() {
		It("rejects a single-sample run", func() {
			_, err := rtd.Analyze(rtd.Trace{
				RunID: "short", Times: []float64{0}, Concentrations: []float64{1},
			}, params, opts)
			Expect(err).To(MatchError(rtd.ErrInsufficientSamples))
		})

		It("rejects unsorted timestamps", func() {
			_, err := rtd.Analyze(rtd.Trace{
				RunID: "shuffled", Times: []float64{0, 2, 1}, Concentrations: []float64{0, 1, 0},
			}, params, opts)
			Expect(err).To(MatchError(rtd.ErrNonMonotonicTime))
		})
	})
})

var _ = Describe("AnalyzeAll", func() {
	params := rtd.Params{Diameter: 0.02, Length: 0.1, Porosity: 0.4}
	opts := rtd.Options{ClipNegative: true}

	It("analyzes runs independently and keeps input order", func() {
		traces := []rtd.Trace{
			{RunID: "2", Times: []float64{0, 1, 2}, Concentrations: []float64{0, 1, 0}, FlowRateMlPerMin: 60},
			{RunID: "1", Times: []float64{0, 2, 4}, Concentrations: []float64{0, 1, 0}, FlowRateMlPerMin: 30},
		}

		results, errs := rtd.AnalyzeAll(context.Background(), traces, params, opts)
		Expect(results).To(HaveLen(2))
		Expect(errs[0]).To(BeNil())
		Expect(errs[1]).To(BeNil())
		Expect(results[0].RunID).To(Equal("2"))
		Expect(results[1].RunID).To(Equal("1"))
		Expect(results[1].MeanResidenceTime).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("isolates a failed run from the rest", func() {
		traces := []rtd.Trace{
			{RunID: "bad", Times: []float64{0}, Concentrations: []float64{1}, FlowRateMlPerMin: 30},
			{RunID: "good", Times: []float64{0, 1, 2}, Concentrations: []float64{0, 1, 0}, FlowRateMlPerMin: 30},
		}

		results, errs := rtd.AnalyzeAll(context.Background(), traces, params, opts)
		Expect(errs[0]).To(MatchError(rtd.ErrInsufficientSamples))
		var runErr *rtd.RunError
		Expect(errors.As(errs[0], &runErr)).To(BeTrue())
		Expect(runErr.RunID).To(Equal("bad"))
		Expect(errs[1]).To(BeNil())
		Expect(results[1].MeanResidenceTime).To(BeNumerically("~", 1.0, 1e-12))
	})
})
