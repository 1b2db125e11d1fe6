package config

import "github.com/katalvlaran/cosmors/interaction"

const (
	DefaultMisfit    = int(interaction.MisfitCorrelatedNeutralOnly)
	DefaultAeff      = 6.25
	DefaultCHBT      = 1.5
	DefaultSigmaHB   = 0.0085
	DefaultFCorr     = 2.4
	DefaultMolecules = 1

	DefaultTemperature = interaction.ReferenceTemperature
	DefaultCacheSize   = interaction.DefaultCacheSize

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ApplyDefaults fills every unset field with its default. Explicit values,
// explicit zeros included for pointer fields, are left unchanged. α and CHB
// stay nil when their logarithmic form is configured.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	ptr := func(v float64) *float64 { return &v }
	m := &cfg.Model
	if m.Misfit == nil {
		v := DefaultMisfit
		m.Misfit = &v
	}
	if m.Aeff == nil {
		m.Aeff = ptr(DefaultAeff)
	}
	if m.Alpha == nil && m.LnAlpha == nil {
		m.Alpha = ptr(1)
	}
	if m.CHB == nil && m.LnCHB == nil {
		m.CHB = ptr(1)
	}
	if m.CHBT == nil {
		m.CHBT = ptr(DefaultCHBT)
	}
	if m.SigmaHB == nil {
		m.SigmaHB = ptr(DefaultSigmaHB)
	}
	if m.FCorr == nil {
		m.FCorr = ptr(DefaultFCorr)
	}

	if cfg.Runtime.CacheSize == 0 {
		cfg.Runtime.CacheSize = DefaultCacheSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Molecules == 0 {
		cfg.Molecules = DefaultMolecules
	}
	if len(cfg.Temperatures) == 0 {
		cfg.Temperatures = []float64{DefaultTemperature}
	}
}
