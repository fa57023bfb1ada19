package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/lorenzbox/internal/metrics"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Processor is an ambient pad whose low-pass filter opens as the swarm
// speeds up. It observes scene frames from the render loop; the portaudio
// callback runs on its own goroutine and only reads the guarded speed.
type Processor struct {
	Stream *portaudio.Stream

	Time        float64
	FilterState [2]float64
	DelayLine   [2][]float64
	DelayHead   int

	mu          sync.Mutex
	speed       float64
	speedSmooth float64

	Active bool
}

func NewProcessor() *Processor {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Processor{
		DelayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

// Start opens an output-only default stream.
func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	log.Printf("audio started at %d Hz", SampleRate)
	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// OnFrame feeds the mean particle speed to the synth.
func (a *Processor) OnFrame(_ sim.Frame, ps []swarm.Particle) {
	a.SetSpeed(metrics.FrameSpeed(ps))
}

func (a *Processor) SetSpeed(v float64) {
	a.mu.Lock()
	a.speed = v
	a.mu.Unlock()
}

// triangle is a soft oscillator in [-1, 1].
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one pole low pass filter.
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Cutoff maps a smoothed swarm speed to a filter cutoff between 300 Hz and
// 1200 Hz. The default timestep puts typical speeds around 0.5 to 1.5.
func Cutoff(speed float64) float64 {
	if math.IsNaN(speed) || speed < 0 {
		speed = 0
	}
	return 300.0 + math.Min(speed*600.0, 900.0)
}

// Gm7 add9, G2 to A3.
var chord = []float64{98.00, 116.54, 146.83, 174.61, 220.00}

func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	target := a.speed
	a.mu.Unlock()

	a.speedSmooth = a.speedSmooth*0.995 + target*0.005
	cutoff := Cutoff(a.speedSmooth)
	dt := 1.0 / float64(SampleRate)
	vol := 0.252

	for i := range out[0] {
		sampleL, sampleR := 0.0, 0.0
		for j, f := range chord {
			g := 1.0 / float64(len(chord))
			lfo := math.Sin(a.Time*0.2 + float64(j))
			sampleL += triangle(a.Time*(f*0.999)) * g * (0.7 + 0.3*lfo)
			sampleR += triangle(a.Time*(f*1.001)) * g * (0.7 + 0.3*lfo)
		}

		a.FilterState[0] = lpf(sampleL, cutoff, dt, a.FilterState[0])
		a.FilterState[1] = lpf(sampleR, cutoff, dt, a.FilterState[1])
		outL, outR := a.FilterState[0], a.FilterState[1]

		// ping pong feedback
		delayL := a.DelayLine[0][a.DelayHead]
		delayR := a.DelayLine[1][a.DelayHead]
		mixL := outL + delayL*0.3 + delayR*0.1
		mixR := outR + delayR*0.3 + delayL*0.1
		a.DelayLine[0][a.DelayHead] = mixL * 0.7
		a.DelayLine[1][a.DelayHead] = mixR * 0.7
		a.DelayHead = (a.DelayHead + 1) % len(a.DelayLine[0])

		out[0][i] = float32(mixL * vol)
		out[1][i] = float32(mixR * vol)
		a.Time += dt
	}
}
