package interaction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosmors/interaction"
)

func TestParameters_DefaultsValidate(t *testing.T) {
	require.NoError(t, interaction.DefaultParameters().Validate())
}

func TestParameters_Validate(t *testing.T) {
	cases := map[string]func(p *interaction.Parameters){
		"misfit mode":  func(p *interaction.Parameters) { p.Misfit = 3 },
		"contact mode": func(p *interaction.Parameters) { p.ContactStatistics = -1 },
		"NaN Aeff":     func(p *interaction.Parameters) { p.Aeff = math.NaN() },
		"Inf CHB":      func(p *interaction.Parameters) { p.CHB = math.Inf(1) },
		"negative P":   func(p *interaction.Parameters) { p.NumberOfPartialInteractionMatrices = -2 },
		"P below names": func(p *interaction.Parameters) {
			p.PartialInteractionMatrices = []string{interaction.PartialMisfit, interaction.PartialHydrogenBond}
			p.NumberOfPartialInteractionMatrices = 1
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := interaction.DefaultParameters()
			mutate(&p)
			require.ErrorIs(t, p.Validate(), interaction.ErrInvalidParameters)
		})
	}
}

func TestParameters_UnknownPartial(t *testing.T) {
	p := interaction.DefaultParameters()
	p.PartialInteractionMatrices = []string{"E_vdw"}
	err := p.Validate()
	require.ErrorIs(t, err, interaction.ErrInvalidParameters)
	require.ErrorIs(t, err, interaction.ErrUnknownPartial)
}

func TestParameters_PartialCount(t *testing.T) {
	p := interaction.DefaultParameters()
	require.Equal(t, 0, p.PartialCount())
	p.PartialInteractionMatrices = []string{interaction.PartialMisfit}
	require.Equal(t, 1, p.PartialCount())
	p.NumberOfPartialInteractionMatrices = 3
	require.Equal(t, 3, p.PartialCount())
}

// TestHBCoefficient covers the reference temperature and the clamp.
func TestHBCoefficient(t *testing.T) {
	p := interaction.DefaultParameters()
	p.CHB = 2
	p.CHBT = 1.5

	require.InEpsilon(t, 2*interaction.HBScale, p.HBCoefficient(interaction.ReferenceTemperature), 1e-12)
	// 1 − 1.5 + 1.5·298.15/T ≤ 0 for T ≥ 894.45
	require.Equal(t, 0.0, p.HBCoefficient(1000))
	require.Equal(t, 0.0, p.HBCoefficient(894.45))
	require.Greater(t, p.HBCoefficient(400), 0.0)
	require.Greater(t, p.HBCoefficient(250), p.HBCoefficient(300))
}
