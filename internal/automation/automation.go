package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/metrics"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/storage"
	"gopkg.in/yaml.v3"
)

// Scenario is a scripted sequence of headless recordings.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep records one run. Params holds any subset of the config keys
// and is laid over the preset (or the defaults).
type ScenarioStep struct {
	Name   string    `yaml:"name"`
	Preset string    `yaml:"preset"`
	Params yaml.Node `yaml:"params"`
	Frames int       `yaml:"frames"`
	Every  int       `yaml:"every"`
}

// StepResult pairs a step with the run it produced.
type StepResult struct {
	Step   string
	RunID  string
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Resolve builds the step's parameter record.
func (s *ScenarioStep) Resolve() (*config.Params, error) {
	p := config.DefaultConfig()
	if s.Preset != "" {
		if p = config.GetPreset(s.Preset); p == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
	}
	if !s.Params.IsZero() {
		if err := s.Params.Decode(p); err != nil {
			return nil, err
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// RunScenario records every step into st, reporting progress to w. It stops
// at the first failing step and returns what completed.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, w io.Writer) ([]StepResult, error) {
	if err := st.Init(); err != nil {
		return nil, err
	}
	results := make([]StepResult, 0, len(scenario.Steps))

	for i := range scenario.Steps {
		step := &scenario.Steps[i]
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step %d", i+1)
		}
		fmt.Fprintf(w, "Running %d/%d: %s\n", i+1, len(scenario.Steps), name)

		p, err := step.Resolve()
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
		scene, err := sim.New(p)
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
		scene.AddMetric(metrics.NewMeanSpeed())

		rec, err := st.Record(p, step.Every)
		if err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
		scene.AddObserver(rec)

		frames := step.Frames
		if frames <= 0 {
			frames = 500
		}
		result, runErr := scene.Run(ctx, frames)
		if err := rec.Close(result); err != nil {
			return results, fmt.Errorf("%s: %w", name, err)
		}
		if runErr != nil {
			return results, fmt.Errorf("%s run: %w", name, runErr)
		}

		results = append(results, StepResult{Step: name, RunID: rec.ID(), Result: result})
	}

	return results, nil
}
