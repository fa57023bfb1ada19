package tui

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/control"
	"github.com/san-kum/lorenzbox/internal/metrics"
	"github.com/san-kum/lorenzbox/internal/sim"
)

const panelWidth = 40

type Options struct {
	FPS int
	// GIFPath is where a recording is written when it stops.
	GIFPath string
}

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea frontend over a scene.
type Model struct {
	scene *sim.Scene
	surf  *control.Surface
	list  *ParamList

	painter *Painter

	fps       *metrics.Series
	speed     *metrics.Series
	interval  time.Duration
	lastFrame time.Time

	width, height int

	recording bool
	frames    []*image.Paletted
	gifPath   string
	status    string
}

func New(scene *sim.Scene, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "lorenzbox.gif"
	}
	m := &Model{
		scene:    scene,
		surf:     control.NewSurface(scene),
		list:     NewParamList(),
		painter:  NewPainter(scene.Params, 80, 24),
		fps:      metrics.NewSeries(60),
		speed:    metrics.NewSeries(60),
		interval: time.Second / time.Duration(opts.FPS),
		gifPath:  opts.GIFPath,
		width:    120,
		height:   36,
	}
	m.list.Bind(m.surf)
	m.resize()
	return m
}

func (m *Model) Init() tea.Cmd { return tick(m.interval) }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				m.fps.Push(1 / dt)
			}
		}
		m.lastFrame = now
		m.step()
		return m, tick(m.interval)
	}
	return m, nil
}

// resize fits the canvas beside the panel.
func (m *Model) resize() {
	w := m.width - 4
	if !m.scene.Hidden() {
		w -= panelWidth + 4
	}
	m.painter.canvas.Resize(max(w, 20), max(m.height-10, 8))
}

func (m *Model) handleKey(key string) tea.Cmd {
	if m.list.Editing() {
		m.list.HandleKey(key)
		return nil
	}
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	case " ", "p":
		m.surf.TogglePause()
	case "x":
		m.surf.ToggleHidden()
		m.list.Sync()
		m.resize()
	case "r":
		m.surf.Respawn()
	case "v":
		m.cycleView()
	case "g":
		m.toggleRecording()
	default:
		if !m.scene.Hidden() {
			m.list.HandleKey(key)
		}
	}
	return nil
}

func (m *Model) cycleView() {
	next := config.Views[0]
	for i, v := range config.Views {
		if v == m.scene.Params.View {
			next = config.Views[(i+1)%len(config.Views)]
		}
	}
	m.surf.SetView(next)
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recording = true
		m.frames = m.frames[:0]
		m.status = "recording"
		return
	}
	m.recording = false
	if len(m.frames) == 0 {
		m.status = "nothing recorded"
		return
	}
	delay := max(1, int(100*m.interval/time.Second))
	if err := saveGIF(m.gifPath, m.frames, delay); err != nil {
		m.status = fmt.Sprintf("gif: %v", err)
	} else {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.gifPath)
	}
	m.frames = nil
}

// step ticks the scene and draws the frame into the canvas.
func (m *Model) step() {
	m.list.Sync()
	f, ok := m.scene.Tick()
	if !ok {
		return
	}
	m.speed.Push(metrics.FrameSpeed(m.scene.Particles()))
	m.painter.OnFrame(f, m.scene.Particles())
	if m.recording && len(m.frames) < maxCaptureFrames {
		m.frames = append(m.frames, captureFrame(m.painter.canvas))
	}
}

func (m *Model) View() string {
	var b strings.Builder

	icon, state := green.Render("●"), green.Render("running")
	if m.scene.Paused() {
		icon, state = yellow.Render("○"), yellow.Render("paused")
	}
	p := m.scene.Params
	b.WriteString(fmt.Sprintf("\n  %s %s  %s  %s\n\n", icon, cyan.Render("lorenzbox"), state,
		dim.Render(fmt.Sprintf("%s view  %d particles  clock %d", p.View, m.scene.Len(), m.scene.Clock()))))

	scene := cyan.Render(m.painter.canvas.String())
	if m.scene.Hidden() {
		b.WriteString(indent(scene, "  "))
	} else {
		side := panelBox.Width(panelWidth).Render(m.list.View())
		b.WriteString(indent(lipgloss.JoinHorizontal(lipgloss.Top, scene, "  ", side), "  "))
	}
	b.WriteString("\n")

	if vals := m.fps.Values(); len(vals) > 1 {
		charts := asciigraph.Plot(vals, asciigraph.Height(3), asciigraph.Width(40), asciigraph.Caption("fps"))
		if sp := m.speed.Values(); len(sp) > 1 {
			speed := asciigraph.Plot(sp, asciigraph.Height(3), asciigraph.Width(40), asciigraph.Caption("speed"))
			charts = lipgloss.JoinHorizontal(lipgloss.Top, charts, "    ", speed)
		}
		b.WriteString("\n" + indent(dimmer.Render(charts), "  ") + "\n")
	}
	if m.status != "" {
		b.WriteString("  " + magenta.Render(m.status) + "\n")
	}
	rec := ""
	if m.recording {
		rec = magenta.Render(fmt.Sprintf(" ● rec %d", len(m.frames)))
	}
	b.WriteString("\n" + dim.Render("  space pause  x hide  r respawn  v view  g gif  ↑↓ select  ←→ adjust  enter edit  q quit") + rec + "\n")
	return b.String()
}

func indent(s, pad string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Run starts the terminal frontend and blocks until it quits.
func Run(scene *sim.Scene, opts Options) error {
	p := tea.NewProgram(New(scene, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
