package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lorenzbox/internal/dynamo"
	"github.com/san-kum/lorenzbox/internal/integrators"
	"github.com/san-kum/lorenzbox/internal/physics"
)

func TestSpectrumFindsSine(t *testing.T) {
	dt := 0.01
	series := make([]float64, 1000)
	for i := range series {
		series[i] = 3 + math.Sin(2*math.Pi*2*float64(i)*dt)
	}
	bins := Spectrum(series, dt)
	if len(bins) != 501 {
		t.Fatalf("expected 501 bins, got %d", len(bins))
	}
	if bins[0].Power > 1e-9 {
		t.Errorf("mean not removed: %v", bins[0].Power)
	}
	peak, ok := Dominant(bins)
	if !ok || math.Abs(peak.Freq-2) > 1e-9 {
		t.Errorf("dominant = %+v", peak)
	}
	if len(Powers(bins)) != len(bins) {
		t.Error("powers length")
	}
	if Spectrum([]float64{1}, dt) != nil || Spectrum(series, 0) != nil {
		t.Error("degenerate input produced a spectrum")
	}
	if _, ok := Dominant(nil); ok {
		t.Error("dominant of nothing")
	}
}

func TestLyapunovSign(t *testing.T) {
	tests := []struct {
		name    string
		rho     float64
		chaotic bool
	}{
		{"chaotic", 28, true},
		{"fixed point", 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := physics.NewLorenzWith(10, tt.rho, 8.0/3.0)
			lambda, err := LyapunovExponent(sys, integrators.NewRK4(), sys.DefaultState(), 0.01, 10, 100, 1e-8)
			if err != nil {
				t.Fatal(err)
			}
			if tt.chaotic && (lambda < 0.5 || lambda > 1.3) {
				t.Errorf("lambda = %v, want about 0.9", lambda)
			}
			if !tt.chaotic && lambda >= 0 {
				t.Errorf("lambda = %v, want negative", lambda)
			}
		})
	}
}

func TestLyapunovRejectsBadInput(t *testing.T) {
	sys := physics.NewLorenz()
	if _, err := LyapunovExponent(sys, integrators.NewEuler(), nil, 0.01, 0, 1, 1e-8); !errors.Is(err, dynamo.ErrParameterBounds) {
		t.Errorf("err = %v", err)
	}
	_, err := LyapunovExponent(sys, integrators.NewEuler(), dynamo.State{math.NaN(), 0, 0}, 0.01, 0.05, 1, 1e-8)
	var simErr *dynamo.SimulationError
	if !errors.As(err, &simErr) || !errors.Is(err, dynamo.ErrInvalidState) {
		t.Errorf("err = %v", err)
	}
}

func TestBifurcationLorenzMap(t *testing.T) {
	sys := physics.NewLorenz()
	data, err := BifurcationDiagram(sys, integrators.NewRK4(), sys.DefaultState(), Sweep{
		Param: "rho", Min: 10, Max: 28, Steps: 2, StateIndex: 2,
		Dt: 0.01, Transient: 30, Record: 30,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 2 || data[0].Param != 10 || data[1].Param != 28 {
		t.Fatalf("params %+v", data)
	}
	for _, v := range data[0].Maxima {
		if math.Abs(v-9) > 0.1 {
			t.Errorf("rho=10 maximum %v away from the fixed point", v)
		}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data[1].Maxima {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	if len(data[1].Maxima) < 10 || hi-lo < 5 {
		t.Errorf("rho=28 maxima not spread: %d in [%v, %v]", len(data[1].Maxima), lo, hi)
	}
	if sys.Rho() != 28 {
		t.Errorf("rho not restored: %v", sys.Rho())
	}
	if BifurcationCanvas(data, 20, 5).Count() == 0 {
		t.Error("empty diagram")
	}
	if BifurcationCanvas(nil, 20, 5).Count() != 0 {
		t.Error("nothing should draw nothing")
	}
}

func TestBifurcationUnknownParam(t *testing.T) {
	sys := physics.NewLorenz()
	_, err := BifurcationDiagram(sys, integrators.NewEuler(), sys.DefaultState(), Sweep{Param: "gamma", Dt: 0.01})
	if !errors.Is(err, dynamo.ErrUnknownParameter) {
		t.Errorf("err = %v", err)
	}
}

func TestPhasePortrait(t *testing.T) {
	sys := physics.NewLorenz()
	pts, err := PhasePortrait(sys, integrators.NewEuler(), sys.DefaultState(), 0, 2, 0.01, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) < 100 || len(pts) > 101 {
		t.Errorf("len = %d", len(pts))
	}
	if _, err := PhasePortrait(sys, integrators.NewEuler(), sys.DefaultState(), 0, 3, 0.01, 1); err == nil {
		t.Error("out of range index accepted")
	}
}
