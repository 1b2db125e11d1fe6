// Package cosmors is the COSMO-RS segment interaction core: a registry of
// surface segment types and the temperature-dependent interaction matrix
// built from them.
//
// Everything is organized under a handful of subpackages:
//
//	segment/     — segment-type registry, canonical ordering, group bounds
//	matrix/      — packed lower-triangular storage, reference-state shift, gonum export
//	interaction/ — misfit + hydrogen-bond builder, partial matrices, per-temperature cache
//	parallel/    — caller-provided parallel-for, bounded pool, first-error box
//	config/      — YAML / COSMORS_* configuration (viper)
//	logging/     — structured logging contract (zap)
//	metrics/     — build instrumentation (prometheus)
//
// Quick start:
//
//	c, _ := segment.NewCollection(2)
//	_ = c.Add(0, segment.NeutralPolyatomic, -0.012, -0.010, segment.HBDonor, 0, 2.5)
//	_ = c.Add(1, segment.NeutralPolyatomic, 0.011, 0.009, segment.HBAcceptor, 0, 1.5)
//	c.Sort()
//
//	b, _ := interaction.NewBuilder(interaction.DefaultParameters(),
//		interaction.WithRunner(parallel.NewPool(0)))
//	res, _ := b.Compute(c, 298.15)
//	e, _ := res.Matrix.At(1, 0)
//
// The cosmors command (cmd/cosmors) drives the same pipeline from a YAML file.
package cosmors
