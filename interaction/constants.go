// SPDX-License-Identifier: MIT

package interaction

// Physical constants of the COSMO-RS interaction model.
const (
	// MisfitScale converts α·σ² [e²/Å⁴·Å²] into J/mol.
	MisfitScale = 5.95e6

	// HBScale converts CHB·σ² into J/mol.
	HBScale = 3.67e7

	// SigmaTransSlope is the σ coefficient of the transformed correlation
	// density σtrans = σcorr − 0.816·σ.
	SigmaTransSlope = 0.816

	// ReferenceTemperature [K] of the hydrogen-bond temperature factor.
	ReferenceTemperature = 298.15
)

// Names of the partial interaction matrices the builder knows how to fill.
const (
	PartialMisfit       = "E_mf" // misfit contribution
	PartialHydrogenBond = "G_hb" // hydrogen-bond contribution
)
