// Package config loads the model switches, runtime knobs and segment input of
// a cosmors run from YAML and COSMORS_* environment variables.
package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cosmors/interaction"
	"github.com/katalvlaran/cosmors/logging"
	"github.com/katalvlaran/cosmors/segment"
)

// ModelConfig mirrors the model switches and constants. Pointer fields
// distinguish "unset" from an explicit zero.
type ModelConfig struct {
	Misfit                   *int     `mapstructure:"sw_misfit"`
	UseSegmentReferenceState bool     `mapstructure:"sw_useSegmentReferenceStateForInteractionMatrix"`
	ContactStatistics        int      `mapstructure:"sw_calculateContactStatisticsAndAdditionalProperties"`
	PartialMatrices          []string `mapstructure:"partial_interaction_matrices"`
	NumberOfPartialMatrices  int      `mapstructure:"number_of_partial_interaction_matrices"`

	Aeff    *float64 `mapstructure:"Aeff"`
	Alpha   *float64 `mapstructure:"alpha"`
	LnAlpha *float64 `mapstructure:"ln_alpha"` // α = exp(ln_alpha)
	CHB     *float64 `mapstructure:"CHB"`
	LnCHB   *float64 `mapstructure:"ln_CHB"` // CHB = exp(ln_CHB)
	CHBT    *float64 `mapstructure:"CHBT"`
	SigmaHB *float64 `mapstructure:"SigmaHB"`
	FCorr   *float64 `mapstructure:"fCorr"`
}

// RuntimeConfig holds execution knobs.
type RuntimeConfig struct {
	Workers   int `mapstructure:"workers"`    // 0 = GOMAXPROCS
	CacheSize int `mapstructure:"cache_size"` // temperatures kept in the result cache
}

// SegmentConfig is one registry entry: area of a segment type on a molecule.
type SegmentConfig struct {
	Molecule     int     `mapstructure:"molecule"`
	Group        int     `mapstructure:"group"`
	Sigma        float64 `mapstructure:"sigma"`
	SigmaCorr    float64 `mapstructure:"sigma_corr"`
	HB           int     `mapstructure:"hb"`
	AtomicNumber int     `mapstructure:"atomic_number"`
	Area         float64 `mapstructure:"area"`
}

// Config is the root configuration object.
type Config struct {
	Model        ModelConfig     `mapstructure:"model"`
	Runtime      RuntimeConfig   `mapstructure:"runtime"`
	Log          logging.Config  `mapstructure:"log"`
	Molecules    int             `mapstructure:"molecules"`
	Temperatures []float64       `mapstructure:"temperatures"`
	Segments     []SegmentConfig `mapstructure:"segments"`
}

// Validate checks cross-field consistency. Call after ApplyDefaults.
func (c *Config) Validate() error {
	if c.Model.Alpha != nil && c.Model.LnAlpha != nil {
		return fmt.Errorf("%w: model.alpha and model.ln_alpha are mutually exclusive", ErrConfigValidation)
	}
	if c.Model.CHB != nil && c.Model.LnCHB != nil {
		return fmt.Errorf("%w: model.CHB and model.ln_CHB are mutually exclusive", ErrConfigValidation)
	}
	if err := c.Parameters().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	if c.Runtime.Workers < 0 {
		return fmt.Errorf("%w: runtime.workers=%d", ErrConfigValidation, c.Runtime.Workers)
	}
	if c.Runtime.CacheSize < 0 {
		return fmt.Errorf("%w: runtime.cache_size=%d", ErrConfigValidation, c.Runtime.CacheSize)
	}
	if c.Molecules < 1 {
		return fmt.Errorf("%w: molecules=%d", ErrConfigValidation, c.Molecules)
	}
	for _, t := range c.Temperatures {
		if math.IsNaN(t) || math.IsInf(t, 0) || t <= 0 {
			return fmt.Errorf("%w: temperature %v", ErrConfigValidation, t)
		}
	}
	for k, s := range c.Segments {
		switch {
		case s.Molecule < 0 || s.Molecule >= c.Molecules:
			return fmt.Errorf("%w: segments[%d].molecule=%d", ErrConfigValidation, k, s.Molecule)
		case s.Group < 0 || s.Group >= segment.NumGroups:
			return fmt.Errorf("%w: segments[%d].group=%d", ErrConfigValidation, k, s.Group)
		case s.HB < 0 || s.HB > int(segment.HBAcceptor):
			return fmt.Errorf("%w: segments[%d].hb=%d", ErrConfigValidation, k, s.HB)
		case s.AtomicNumber < 0 || s.AtomicNumber > math.MaxUint16:
			return fmt.Errorf("%w: segments[%d].atomic_number=%d", ErrConfigValidation, k, s.AtomicNumber)
		case math.IsNaN(s.Sigma) || math.IsInf(s.Sigma, 0):
			return fmt.Errorf("%w: segments[%d].sigma=%v", ErrConfigValidation, k, s.Sigma)
		case math.IsNaN(s.SigmaCorr) || math.IsInf(s.SigmaCorr, 0):
			return fmt.Errorf("%w: segments[%d].sigma_corr=%v", ErrConfigValidation, k, s.SigmaCorr)
		case math.IsNaN(s.Area) || math.IsInf(s.Area, 0):
			return fmt.Errorf("%w: segments[%d].area=%v", ErrConfigValidation, k, s.Area)
		}
	}

	return nil
}

// Parameters converts the model section into builder parameters. Unset
// fields fall back to interaction.DefaultParameters.
func (c *Config) Parameters() interaction.Parameters {
	p := interaction.DefaultParameters()
	m := c.Model
	if m.Misfit != nil {
		p.Misfit = interaction.MisfitMode(*m.Misfit)
	}
	p.UseSegmentReferenceState = m.UseSegmentReferenceState
	p.ContactStatistics = interaction.ContactStatisticsMode(m.ContactStatistics)
	p.PartialInteractionMatrices = append([]string(nil), m.PartialMatrices...)
	p.NumberOfPartialInteractionMatrices = m.NumberOfPartialMatrices

	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Aeff, m.Aeff)
	set(&p.Alpha, m.Alpha)
	set(&p.CHB, m.CHB)
	set(&p.CHBT, m.CHBT)
	set(&p.SigmaHB, m.SigmaHB)
	set(&p.FCorr, m.FCorr)
	if m.LnAlpha != nil {
		p.Alpha = math.Exp(*m.LnAlpha)
	}
	if m.LnCHB != nil {
		p.CHB = math.Exp(*m.LnCHB)
	}

	return p
}

// BuildCollection registers every configured segment and sorts the result.
func (c *Config) BuildCollection() (*segment.Collection, error) {
	col, err := segment.NewCollection(c.Molecules)
	if err != nil {
		return nil, err
	}
	col.Reserve(len(c.Segments))
	for k, s := range c.Segments {
		err = col.Add(s.Molecule, segment.Group(s.Group), s.Sigma, s.SigmaCorr,
			segment.HBType(s.HB), uint16(s.AtomicNumber), s.Area)
		if err != nil {
			return nil, fmt.Errorf("config: segments[%d]: %w", k, err)
		}
	}
	col.Sort()

	return col, nil
}
