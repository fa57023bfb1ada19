package physics

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenzbox/internal/dynamo"
)

// Classic constants that produce the butterfly.
const (
	DefaultSigma = 10.0
	DefaultRho   = 28.0
	DefaultBeta  = 8.0 / 3.0
)

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{DefaultSigma, DefaultRho, DefaultBeta} }

// NewLorenzWith builds a system with explicit constants.
func NewLorenzWith(sigma, rho, beta float64) *Lorenz { return &Lorenz{sigma, rho, beta} }

func (l *Lorenz) StateDim() int   { return 3 }
func (l *Lorenz) ControlDim() int { return 0 }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{l.sigma * (s[1] - s[0]), s[0]*(l.rho-s[2]) - s[1], s[0]*s[1] - l.beta*s[2]}
}

func (l *Lorenz) Sigma() float64 { return l.sigma }
func (l *Lorenz) Rho() float64   { return l.rho }
func (l *Lorenz) Beta() float64  { return l.beta }

// Set replaces all three constants at once. The animation loop calls this
// every frame so edits made through the control surface take effect
// immediately.
func (l *Lorenz) Set(sigma, rho, beta float64) {
	l.sigma, l.rho, l.beta = sigma, rho, beta
}

func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s=%v: %w", n, v, dynamo.ErrParameterBounds)
	}
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return fmt.Errorf("%q: %w", n, dynamo.ErrUnknownParameter)
	}
	return nil
}
