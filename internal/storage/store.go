package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
)

// DefaultDir is where runs land unless told otherwise.
const DefaultDir = ".lorenzbox"

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Params    config.Params      `json:"params"`
	Frames    int                `json:"frames"`
	Every     int                `json:"every"`
	Particles int                `json:"particles"`
	Diverged  int                `json:"diverged"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Sample is one particle position at one recorded frame.
type Sample struct {
	Frame    int
	Particle int
	X, Y, Z  float64
}

// Recorder is a scene observer that streams particle positions into a run
// directory every few frames.
type Recorder struct {
	meta  RunMetadata
	dir   string
	every int
	file  *os.File
	w     *csv.Writer
	err   error
}

// Record opens a new run for params, sampling every k-th frame.
func (s *Store) Record(params *config.Params, every int) (*Recorder, error) {
	if every < 1 {
		every = 1
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	now := time.Now()
	id, dir, err := s.newRunDir(now)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, "states.csv"))
	if err != nil {
		return nil, err
	}
	r := &Recorder{
		meta:  RunMetadata{ID: id, Timestamp: now, Params: *params, Every: every},
		dir:   dir,
		every: every,
		file:  f,
		w:     csv.NewWriter(f),
	}
	r.err = r.w.Write([]string{"frame", "particle", "x", "y", "z"})
	return r, r.err
}

// newRunDir creates a fresh run directory named after t, adding a suffix
// when two runs start within the clock's resolution.
func (s *Store) newRunDir(t time.Time) (id, dir string, err error) {
	base := fmt.Sprintf("lorenz_%d", t.UnixNano())
	id = base
	for i := 1; ; i++ {
		dir = filepath.Join(s.baseDir, id)
		err = os.Mkdir(dir, 0755)
		if !os.IsExist(err) {
			return id, dir, err
		}
		id = fmt.Sprintf("%s_%d", base, i)
	}
}

func (r *Recorder) ID() string { return r.meta.ID }

func (r *Recorder) OnFrame(f sim.Frame, particles []swarm.Particle) {
	if r.err != nil || f.Index%r.every != 0 {
		return
	}
	frame := strconv.Itoa(f.Index)
	for i := range particles {
		p := &particles[i]
		r.err = r.w.Write([]string{
			frame,
			strconv.Itoa(i),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		})
		if r.err != nil {
			return
		}
	}
	r.meta.Particles = max(r.meta.Particles, len(particles))
}

// Close flushes the samples and writes metadata.json from the run result.
// A nil result records no metrics.
func (r *Recorder) Close(result *sim.Result) error {
	r.w.Flush()
	if r.err == nil {
		r.err = r.w.Error()
	}
	if err := r.file.Close(); err != nil && r.err == nil {
		r.err = err
	}
	if r.err != nil {
		return r.err
	}
	if result != nil {
		r.meta.Frames = result.Frames
		r.meta.Diverged = result.Diverged
		r.meta.Metrics = finiteMetrics(result.Metrics)
	}

	metaFile, err := os.Create(filepath.Join(r.dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(r.meta)
}

// finiteMetrics drops values JSON cannot carry. Diverged runs produce them.
func finiteMetrics(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadStates reads every sample of a run. Malformed rows are skipped.
func (s *Store) LoadStates(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) != 5 {
			continue
		}
		frame, err1 := strconv.Atoi(rec[0])
		idx, err2 := strconv.Atoi(rec[1])
		x, err3 := strconv.ParseFloat(rec[2], 64)
		y, err4 := strconv.ParseFloat(rec[3], 64)
		z, err5 := strconv.ParseFloat(rec[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}
		samples = append(samples, Sample{Frame: frame, Particle: idx, X: x, Y: y, Z: z})
	}
	return samples, nil
}

// Trajectory picks one particle's samples in frame order.
func Trajectory(samples []Sample, particle int) []Sample {
	var out []Sample
	for _, s := range samples {
		if s.Particle == particle {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Frame < out[j].Frame })
	return out
}
