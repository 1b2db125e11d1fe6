// SPDX-License-Identifier: MIT

// Package: interaction
//
// Purpose:
//   - Evaluate misfit + hydrogen-bond energies for every pair of the neutral
//     block and write them into the caller's lower-triangular matrix.
//   - Optionally shift the main and partial matrices to the pure-segment
//     reference state.
//
// Complexity quicksheet:
//   - Build: O(m²/2) pair evaluations over m neutral types + O(n²/2) per
//     renormalized matrix over all n types.

package interaction

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cosmors/logging"
	"github.com/katalvlaran/cosmors/matrix"
	"github.com/katalvlaran/cosmors/metrics"
	"github.com/katalvlaran/cosmors/parallel"
	"github.com/katalvlaran/cosmors/segment"
)

// Builder computes interaction matrices for one parameter set. A Builder is
// immutable after construction and safe for concurrent Build calls on
// distinct output matrices.
type Builder struct {
	params  Parameters
	runner  parallel.Runner
	log     logging.Logger
	metrics metrics.Recorder

	partialMisfit int // index of the E_mf partial, -1 when not configured
	partialHB     int // index of the G_hb partial, -1 when not configured
}

// Option configures a Builder.
type Option func(*Builder)

// WithRunner sets the parallel-for used by every pass (default: serial).
func WithRunner(r parallel.Runner) Option {
	return func(b *Builder) {
		if r != nil {
			b.runner = r
		}
	}
}

// WithLogger sets the logger (default: logging.Default()).
func WithLogger(l logging.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics sets the metrics recorder (default: no-op).
func WithMetrics(r metrics.Recorder) Option {
	return func(b *Builder) {
		if r != nil {
			b.metrics = r
		}
	}
}

// NewBuilder validates p and returns a Builder.
// Errors: anything Parameters.Validate reports.
func NewBuilder(p Parameters, opts ...Option) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.PartialInteractionMatrices = append([]string(nil), p.PartialInteractionMatrices...)

	b := &Builder{
		params:        p,
		runner:        parallel.Serial{},
		log:           logging.Default(),
		metrics:       metrics.NewNop(),
		partialMisfit: -1,
		partialHB:     -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.Named("interaction")
	for h, name := range p.PartialInteractionMatrices {
		switch name {
		case PartialMisfit:
			b.partialMisfit = h
		case PartialHydrogenBond:
			b.partialHB = h
		}
	}

	return b, nil
}

// Parameters returns a copy of the builder's parameters.
func (b *Builder) Parameters() Parameters {
	p := b.params
	p.PartialInteractionMatrices = append([]string(nil), p.PartialInteractionMatrices...)

	return p
}

// contactStatistics reports whether partial matrices take part in a build.
func (b *Builder) contactStatistics() bool {
	return b.params.ContactStatistics > ContactStatisticsOff
}

// Contribution is the decomposed energy of one segment pair [J/mol].
type Contribution struct {
	Misfit       float64
	HydrogenBond float64
}

// Total returns Misfit + HydrogenBond.
func (c Contribution) Total() float64 { return c.Misfit + c.HydrogenBond }

// prefactors bundles the temperature-dependent constants of one build.
type prefactors struct {
	misfit float64 // ½·Aeff·α·5.95e6
	hb     float64 // Aeff·CHB(T)
}

func (b *Builder) prefactors(temperature float64) prefactors {
	return prefactors{
		misfit: b.params.misfitPrefactor(),
		hb:     b.params.Aeff * b.params.HBCoefficient(temperature),
	}
}

// Pair evaluates the misfit and hydrogen-bond energies of types i and j at
// temperature without writing anything.
// Errors: ErrNilCollection, matrix.ErrOutOfRange (i or j outside [0, Len())),
// ErrInvalidTemperature, ErrHBOrientation.
func (b *Builder) Pair(c *segment.Collection, i, j int, temperature float64) (Contribution, error) {
	if c == nil {
		return Contribution{}, ErrNilCollection
	}
	if i < 0 || j < 0 || i >= c.Len() || j >= c.Len() {
		return Contribution{}, fmt.Errorf("Pair(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	if err := checkTemperature(temperature); err != nil {
		return Contribution{}, err
	}

	return b.pair(c, i, j, b.prefactors(temperature))
}

// pair is the hot-path evaluation of one pair.
// Implementation:
//   - Stage 1: misfit ½Aeffα·5.95e6·σij², or with correlation
//     ½Aeffα·5.95e6·σij·(σij + fCorr·(σtrans_i + σtrans_j)).
//   - Stage 2: hydrogen bond when one σ is below −σHB and the other above σHB;
//     the negative segment must be a donor and the positive one an acceptor.
//     The reversed class assignment is reported as ErrHBOrientation.
func (b *Builder) pair(c *segment.Collection, i, j int, pf prefactors) (Contribution, error) {
	si, sj := c.Sigma(i), c.Sigma(j)
	sij := si + sj

	var out Contribution
	if b.correlated(c.Group(i), c.Group(j)) {
		ti := c.SigmaCorr(i) - SigmaTransSlope*si
		tj := c.SigmaCorr(j) - SigmaTransSlope*sj
		out.Misfit = pf.misfit * sij * (sij + b.params.FCorr*(ti+tj))
	} else {
		out.Misfit = pf.misfit * sij * sij
	}

	shb := b.params.SigmaHB
	hi, hj := c.HB(i), c.HB(j)
	switch {
	case si < -shb && sj > shb:
		if hi == segment.HBDonor && hj == segment.HBAcceptor {
			out.HydrogenBond = pf.hb * (sj - shb) * (si + shb)
		} else if hi == segment.HBAcceptor && hj == segment.HBDonor {
			return Contribution{}, orientationError(c, i, j)
		}
	case sj < -shb && si > shb:
		if hi == segment.HBAcceptor && hj == segment.HBDonor {
			out.HydrogenBond = pf.hb * (si - shb) * (sj + shb)
		} else if hi == segment.HBDonor && hj == segment.HBAcceptor {
			return Contribution{}, orientationError(c, i, j)
		}
	}

	return out, nil
}

// correlated reports whether the σ-correlation correction applies to a pair
// of groups under the configured misfit mode.
func (b *Builder) correlated(gi, gj segment.Group) bool {
	switch b.params.Misfit {
	case MisfitCorrelated:
		return true
	case MisfitCorrelatedNeutralOnly:
		return !gi.IsIonic() && !gj.IsIonic()
	default:
		return false
	}
}

func orientationError(c *segment.Collection, i, j int) error {
	return fmt.Errorf("pair (%d,%d) sigma=(%g,%g) hb=(%d,%d): %w",
		i, j, c.Sigma(i), c.Sigma(j), c.HB(i), c.HB(j), ErrHBOrientation)
}

func checkTemperature(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTemperature, t)
	}

	return nil
}

// Build fills a (and the named partial matrices) for the sorted collection c
// at temperature, then applies the reference-state shift when enabled.
// Implementation:
//   - Stage 1: validate inputs (sorted collection, temperature, sizes).
//   - Stage 2: for every i in the neutral span and every j ≥ i in it, write
//     the pair energy into a(j,i) and its parts into the E_mf / G_hb partials.
//     Rows i are independent parallel work.
//   - Stage 3: if UseSegmentReferenceState, renormalize a over all n types;
//     with contact statistics on, renormalize every partial as well, the
//     partial index h being the parallel axis.
//
// Behavior highlights:
//   - Cells that involve an ionic type are never written by Stage 2; they
//     keep whatever the caller stored there.
//   - The collection is only read.
//   - On error the contents of a and partials are undefined and must be
//     discarded.
//
// Errors:
//   - ErrNilCollection, ErrNotSorted, ErrInvalidTemperature,
//     matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrHBOrientation,
//     parallel.ErrWorkerPanic.
//
// Complexity:
//   - Time O(m²/2 + n²/2·(1+P)), Space O(n) per renormalized matrix.
func (b *Builder) Build(c *segment.Collection, temperature float64, a *matrix.Lower[float32], partials []*matrix.Lower[float64]) error {
	if err := b.validate(c, temperature, a, partials); err != nil {
		return err
	}
	n := c.Len()
	span := c.NeutralSpan()
	b.metrics.SetSegmentTypes(n)

	var mfPartial, hbPartial *matrix.Lower[float64]
	if b.contactStatistics() {
		if b.partialMisfit >= 0 {
			mfPartial = partials[b.partialMisfit]
		}
		if b.partialHB >= 0 {
			hbPartial = partials[b.partialHB]
		}
	}

	begin := time.Now()
	start := begin
	pf := b.prefactors(temperature)
	err := b.runner.For(span.Len(), func(k int) error {
		i := span.Lower + k
		for j := i; j < span.Upper; j++ {
			e, err := b.pair(c, i, j, pf)
			if err != nil {
				return err
			}
			a.Row(j)[i] = float32(e.Total())
			if mfPartial != nil {
				mfPartial.Row(j)[i] = e.Misfit
			}
			if hbPartial != nil {
				hbPartial.Row(j)[i] = e.HydrogenBond
			}
		}
		return nil
	})
	if err != nil {
		return b.fail(metrics.StageEvaluate, err)
	}
	b.metrics.ObserveStage(metrics.StageEvaluate, time.Since(start).Seconds())

	if b.params.UseSegmentReferenceState {
		start = time.Now()
		if err = a.RenormalizeReferenceState(b.runner); err != nil {
			return b.fail(metrics.StageRenormalize, err)
		}
		b.metrics.ObserveStage(metrics.StageRenormalize, time.Since(start).Seconds())

		if b.contactStatistics() {
			start = time.Now()
			err = b.runner.For(b.params.PartialCount(), func(h int) error {
				return partials[h].RenormalizeReferenceState(parallel.Serial{})
			})
			if err != nil {
				return b.fail(metrics.StagePartials, err)
			}
			b.metrics.ObserveStage(metrics.StagePartials, time.Since(start).Seconds())
		}
	}

	b.log.Debug("interaction matrix built",
		logging.Int("segment_types", n),
		logging.Int("neutral_lower", span.Lower),
		logging.Int("neutral_upper", span.Upper),
		logging.Float64("temperature", temperature),
		logging.Bool("reference_state", b.params.UseSegmentReferenceState),
		logging.Duration("elapsed", time.Since(begin)),
	)

	return nil
}

// fail records a failed stage and returns err wrapped with the stage name.
func (b *Builder) fail(stage string, err error) error {
	b.metrics.IncBuildError(stage)
	b.log.Error("interaction matrix build failed", logging.String("stage", stage), logging.Err(err))

	return fmt.Errorf("interaction: %s: %w", stage, err)
}

// validate checks every precondition of Build.
func (b *Builder) validate(c *segment.Collection, temperature float64, a *matrix.Lower[float32], partials []*matrix.Lower[float64]) error {
	if c == nil {
		return ErrNilCollection
	}
	if !c.Sorted() {
		return ErrNotSorted
	}
	if err := checkTemperature(temperature); err != nil {
		return err
	}
	if a == nil {
		return matrix.ErrNilMatrix
	}
	n := c.Len()
	if a.Size() != n {
		return fmt.Errorf("interaction matrix is %d×%d, collection has %d types: %w",
			a.Size(), a.Size(), n, matrix.ErrDimensionMismatch)
	}
	if !b.contactStatistics() {
		return nil
	}
	want := b.params.PartialCount()
	if len(partials) < want {
		return fmt.Errorf("%d partial matrices supplied, %d configured: %w",
			len(partials), want, matrix.ErrDimensionMismatch)
	}
	for h := 0; h < want; h++ {
		if partials[h] == nil {
			return fmt.Errorf("partial matrix %d: %w", h, matrix.ErrNilMatrix)
		}
		if partials[h].Size() != n {
			return fmt.Errorf("partial matrix %d is %d×%d, collection has %d types: %w",
				h, partials[h].Size(), partials[h].Size(), n, matrix.ErrDimensionMismatch)
		}
	}

	return nil
}
