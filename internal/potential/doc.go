// Package potential is the galactic potential model library inspected by
// the galpot tool.
//
// The package exposes:
//
//   - [Potential]: one gravitational force model with probes for spatial
//     dimensionality and the fast native force path
//   - [Parse]: the canonical splitting of an instance into the type codes
//     and argument values understood by the downstream simulator
//   - [Names] / [New]: the registry of exported model names
//
// All quantities are in natural units: G = 1, velocities in [220 km/s],
// distances in [8 kpc]. Amplitudes are the simulator-facing values, not
// physical masses.
//
// # Thread Safety
//
// Model instances are plain parameter structs and are safe to share once
// constructed; the registry itself is immutable after init.
package potential
