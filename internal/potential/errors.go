package potential

import "errors"

// Domain errors for library lookups and parsing.
var (
	// ErrUnknownPotential indicates a name that is not exported by the library.
	ErrUnknownPotential = errors.New("potential: unknown potential name")

	// ErrNotSupported indicates a model the canonical parser cannot split
	// into simulator type codes.
	ErrNotSupported = errors.New("potential: model has no simulator type code")

	// ErrNeedsSnapshot indicates a model that cannot be built from default
	// parameters because it requires particle snapshot data.
	ErrNeedsSnapshot = errors.New("potential: model requires a particle snapshot")

	// ErrParameterBounds indicates a parameter value outside its valid range.
	ErrParameterBounds = errors.New("potential: parameter out of valid bounds")
)
