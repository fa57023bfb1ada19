package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigInitLayersPresetAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lorenz.yaml")
	if _, err := execute(t, "config", "init", path, "--preset", "blocks", "--rho", "20"); err != nil {
		t.Fatal(err)
	}
	p, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Rho != 20 || p.ParticleSize != 8 || !p.Outlines {
		t.Errorf("unexpected params %+v", p)
	}

	// file over preset, flag over file
	out := filepath.Join(t.TempDir(), "out.yaml")
	if _, err := execute(t, "config", "init", out, "--preset", "slowmo", "--config", path, "--particles", "9"); err != nil {
		t.Fatal(err)
	}
	q, err := config.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if q.Rho != 20 || q.ParticleCount != 9 || q.Timestep != config.GetPreset("blocks").Timestep {
		t.Errorf("unexpected layering %+v", q)
	}
}

func TestResolveRejects(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"config", "init", filepath.Join(dir, "a.yaml"), "--preset", "nope"},
		{"config", "init", filepath.Join(dir, "b.yaml"), "--view", "diagonal"},
		{"config", "init", filepath.Join(dir, "c.yaml"), "--dt", "1"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v accepted", args)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s not listed", name)
		}
	}
}

func TestRecordThenInspect(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "record", "--data", dir, "--frames", "300", "--every", "2", "--particles", "3", "--seed", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "mean_speed") {
		t.Errorf("metrics missing from %q", out)
	}

	runs, err := storage.New(dir).List()
	if err != nil || len(runs) != 1 {
		t.Fatalf("runs %v err %v", runs, err)
	}
	id := runs[0].ID

	out, err = execute(t, "list", "--data", dir)
	if err != nil || !strings.Contains(out, id) {
		t.Errorf("list: %v %q", err, out)
	}

	svg := filepath.Join(t.TempDir(), "traj.svg")
	if _, err := execute(t, "plot", id, "--data", dir, "--particle", "2", "--svg", svg); err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(svg); err != nil || !strings.Contains(string(data), "<path") {
		t.Errorf("svg not written: %v", err)
	}

	out, err = execute(t, "analyze", id, "--data", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "dominant frequency") || !strings.Contains(out, "lyapunov") {
		t.Errorf("analysis incomplete: %q", out)
	}

	portrait := filepath.Join(t.TempDir(), "portrait.svg")
	out, err = execute(t, "analyze", id, "--data", dir, "--svg", portrait)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "wrote "+portrait) {
		t.Errorf("portrait not reported: %q", out)
	}
	if data, err := os.ReadFile(portrait); err != nil || !strings.Contains(string(data), "<path") {
		t.Errorf("portrait not written: %v", err)
	}

	if _, err := execute(t, "plot", id, "--data", dir, "--particle", "7"); err == nil {
		t.Error("missing particle plotted")
	}
}

func TestRecordKeepsDivergedRun(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "record", "--data", dir, "--frames", "200", "--particles", "5", "--seed", "7",
		"--sigma", "50", "--rho", "100", "--beta", "10", "--dt", "0.012")
	if err != nil {
		t.Fatalf("record failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "stopped early") {
		t.Errorf("divergence not reported: %q", out)
	}
	runs, err := storage.New(dir).List()
	if err != nil || len(runs) != 1 || runs[0].Diverged != 5 {
		t.Errorf("runs %+v err %v", runs, err)
	}
}

func TestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.svg")
	if _, err := execute(t, "snapshot", "--frames", "20", "--particles", "10", "--out", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("snapshot is empty")
	}
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "--steps", "4", "--min", "20", "--max", "30")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "z maxima for rho") {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := execute(t, "sweep", "--param", "gamma"); err == nil {
		t.Error("unknown parameter swept")
	}
}

func TestScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	script := "name: quick\nsteps:\n  - name: tiny\n    params: {particles: 2}\n    frames: 5\n"
	if err := os.WriteFile(path, []byte(script), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "script", path, "--data", filepath.Join(dir, "runs"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "tiny") || !strings.Contains(out, "5 frames") {
		t.Errorf("unexpected output %q", out)
	}
}
