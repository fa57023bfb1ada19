package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with invalid dimensions or values.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrUnknownParameter indicates a parameter name the system does not expose.
	ErrUnknownParameter = errors.New("dynamo: unknown parameter")

	// ErrUnknownView indicates a camera view mode that does not exist.
	ErrUnknownView = errors.New("dynamo: unknown view mode")

	// ErrUnknownIntegrator indicates an integrator name that is not registered.
	ErrUnknownIntegrator = errors.New("dynamo: unknown integrator")

	// ErrContextCanceled indicates the simulation was interrupted.
	ErrContextCanceled = errors.New("dynamo: simulation canceled by context")
)

// SimulationError wraps an error with frame context.
type SimulationError struct {
	Frame   int
	Wrapped error
}

func (e *SimulationError) Error() string {
	return e.Wrapped.Error()
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
