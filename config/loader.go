package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix of every setting.
const envPrefix = "COSMORS"

// envKeys are bound explicitly so that LoadFromEnv sees them without a file.
// The segment list has no environment form.
var envKeys = []string{
	"model.sw_misfit",
	"model.sw_useSegmentReferenceStateForInteractionMatrix",
	"model.sw_calculateContactStatisticsAndAdditionalProperties",
	"model.partial_interaction_matrices",
	"model.number_of_partial_interaction_matrices",
	"model.Aeff",
	"model.alpha",
	"model.ln_alpha",
	"model.CHB",
	"model.ln_CHB",
	"model.CHBT",
	"model.SigmaHB",
	"model.fCorr",
	"runtime.workers",
	"runtime.cache_size",
	"log.level",
	"log.format",
	"log.output_paths",
	"molecules",
	"temperatures",
}

// newViper builds a Viper instance with YAML input, the COSMORS_ prefix and a
// "." → "_" key replacer, so "model.fCorr" resolves to COSMORS_MODEL_FCORR.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range envKeys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("config: bind %q: %w", k, err)
		}
	}

	return v, nil
}

// Load reads the YAML file at path, merges COSMORS_* overrides, applies
// defaults and validates.
func Load(path string) (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrConfigFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrConfigParseError, path, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from COSMORS_* variables only.
//
//	COSMORS_<SECTION>_<FIELD>   e.g.  COSMORS_MODEL_FCORR, COSMORS_RUNTIME_WORKERS
func LoadFromEnv() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrConfigParseError, err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
