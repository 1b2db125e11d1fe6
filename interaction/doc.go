// SPDX-License-Identifier: MIT

// Package interaction builds COSMO-RS segment–segment interaction matrices.
//
// Given a sorted segment.Collection and a temperature, a Builder writes the
// electrostatic misfit and hydrogen-bond energy of every pair of neutral
// segment types into a packed lower-triangular matrix.Lower[float32]:
//
//	E_mf(i,j) = ½·Aeff·α·5.95e6 · σij · (σij + fCorr·(σTi + σTj))   (correlated)
//	E_mf(i,j) = ½·Aeff·α·5.95e6 · σij²                             (plain)
//	E_hb(i,j) = Aeff·CHB(T) · (σacc − σHB)·(σdon + σHB)             (donor/acceptor pairs only)
//
// with σij = σi + σj, σT = σcorr − 0.816σ and
// CHB(T) = CHB·3.67e7·max(0, 1 − CHBT + CHBT·298.15/T).
//
// Cells involving ionic types are left to the caller. When the segment
// reference state is enabled the whole matrix is shifted so that every
// diagonal element becomes zero; partial matrices (the misfit part "E_mf",
// the hydrogen-bond part "G_hb" and any caller-filled extras) are shifted the
// same way when contact statistics are requested.
//
// Row evaluation and the per-partial shifts run on a parallel.Runner;
// Cache memoizes whole results per temperature.
package interaction
