// Package sia generates synthetic building-operation parameter sets
// (occupancy, lighting, appliances, DHW, HVAC setpoints, ventilation,
// infiltration) following the Swiss SIA 2024 standard, with optional
// statistical variability for Monte-Carlo-style uncertainty analysis
// across a building stock.
//
// # Reading Guide
//
// Start with these files to understand the generation pipeline:
//   - basedata.go: the BaseData accessor interface and the SIA Triple
//   - profile.go / variability.go: the deterministic expansion primitives
//     and the randomization operators built on top of them
//   - occupancy.go: the reference per-domain generator; every other
//     generator (appliances, lighting, dhw, thermostat, ventilation,
//     infiltration) follows the same nominal/variable/cached structure
//   - factory.go: composition of all generators into one Parameters record
//   - manager.go / facade.go: persistence, caching and building-identity
//     mapping on top of the factory
//
// # Determinism
//
// Every parameter-set draw owns a PartitionedRNG derived from the master
// seed and the draw index (rng.go). Each demand quantity samples from its
// own isolated stream, and every generator memoizes its draws per room
// type (cache.go), so repeated queries within one draw are consistent
// while separate draws are statistically independent.
package sia
