// SPDX-License-Identifier: MIT

package interaction

import (
	"fmt"
	"math"
)

// MisfitMode selects the σ-correlation correction of the misfit term.
type MisfitMode int

const (
	MisfitPlain                 MisfitMode = 0 // no correlation correction
	MisfitCorrelated            MisfitMode = 1 // correction for every pair
	MisfitCorrelatedNeutralOnly MisfitMode = 2 // correction unless a segment is ionic
)

// ContactStatisticsMode selects the contact-statistics outputs; any mode
// above ContactStatisticsOff activates the partial interaction matrices.
type ContactStatisticsMode int

const (
	ContactStatisticsOff          ContactStatisticsMode = 0
	ContactStatisticsOn           ContactStatisticsMode = 1 // contact statistics, average surface energies
	ContactStatisticsPartialMolar ContactStatisticsMode = 2 // additionally partial molar properties
)

// Parameters are the model switches and constants of one build.
type Parameters struct {
	Misfit                   MisfitMode
	UseSegmentReferenceState bool
	ContactStatistics        ContactStatisticsMode

	// PartialInteractionMatrices names partial matrices in order; known names
	// (PartialMisfit, PartialHydrogenBond) are filled by the builder.
	PartialInteractionMatrices []string
	// NumberOfPartialInteractionMatrices may exceed the named ones; unnamed
	// matrices are filled by the caller and only renormalized here.
	// 0 means len(PartialInteractionMatrices).
	NumberOfPartialInteractionMatrices int

	Aeff    float64 // effective contact area [Å²]
	Alpha   float64 // misfit prefactor α'
	CHB     float64 // hydrogen-bond prefactor
	CHBT    float64 // hydrogen-bond temperature parameter
	SigmaHB float64 // hydrogen-bond σ threshold [e/Å²]
	FCorr   float64 // correlation correction factor
}

// DefaultParameters returns the published example parameter set.
func DefaultParameters() Parameters {
	return Parameters{
		Misfit:  MisfitCorrelatedNeutralOnly,
		Aeff:    6.25,
		Alpha:   1,
		CHB:     1,
		CHBT:    1.5,
		SigmaHB: 0.0085,
		FCorr:   2.4,
	}
}

// PartialCount returns the number of partial matrices a build expects.
func (p Parameters) PartialCount() int {
	if p.NumberOfPartialInteractionMatrices > 0 {
		return p.NumberOfPartialInteractionMatrices
	}

	return len(p.PartialInteractionMatrices)
}

// Validate checks switch ranges, constant finiteness and partial names.
// Every error wraps ErrInvalidParameters (and ErrUnknownPartial for names).
func (p Parameters) Validate() error {
	if p.Misfit < MisfitPlain || p.Misfit > MisfitCorrelatedNeutralOnly {
		return fmt.Errorf("%w: sw_misfit=%d", ErrInvalidParameters, p.Misfit)
	}
	if p.ContactStatistics < ContactStatisticsOff || p.ContactStatistics > ContactStatisticsPartialMolar {
		return fmt.Errorf("%w: sw_calculateContactStatisticsAndAdditionalProperties=%d", ErrInvalidParameters, p.ContactStatistics)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"Aeff", p.Aeff}, {"alpha", p.Alpha}, {"CHB", p.CHB},
		{"CHBT", p.CHBT}, {"SigmaHB", p.SigmaHB}, {"fCorr", p.FCorr},
	} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParameters, c.name, c.v)
		}
	}
	if p.NumberOfPartialInteractionMatrices < 0 {
		return fmt.Errorf("%w: numberOfPartialInteractionMatrices=%d", ErrInvalidParameters, p.NumberOfPartialInteractionMatrices)
	}
	if p.NumberOfPartialInteractionMatrices > 0 && p.NumberOfPartialInteractionMatrices < len(p.PartialInteractionMatrices) {
		return fmt.Errorf("%w: %d partial matrices configured but %d named",
			ErrInvalidParameters, p.NumberOfPartialInteractionMatrices, len(p.PartialInteractionMatrices))
	}
	for _, name := range p.PartialInteractionMatrices {
		if name != PartialMisfit && name != PartialHydrogenBond {
			return fmt.Errorf("%w: %w %q", ErrInvalidParameters, ErrUnknownPartial, name)
		}
	}

	return nil
}

// HBCoefficient returns CHB(T) = CHB·3.67e7·max(0, 1 − CHBT + CHBT·298.15/T).
func (p Parameters) HBCoefficient(temperature float64) float64 {
	f := 1.0 - p.CHBT + p.CHBT*(ReferenceTemperature/temperature)
	if f <= 0 {
		return 0
	}

	return p.CHB * HBScale * f
}

// misfitPrefactor returns ½·Aeff·α·5.95e6.
func (p Parameters) misfitPrefactor() float64 {
	return p.Aeff * p.Alpha * MisfitScale * 0.5
}
