package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/seralo/chaoscope/internal/metrics"
	"github.com/seralo/chaoscope/internal/pendulum"
)

const (
	canvasWidth     = 80
	canvasHeight    = 30
	historyCapacity = 600
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model drives the live ensemble view: each tick advances the whole
// population by a fixed batch of sub-steps and redraws every trajectory's
// outer bob on a Braille canvas.
type Model struct {
	pop          *pendulum.Population
	initial      []pendulum.Trajectory
	dt           float64
	stepsPerTick int

	t             float64
	running       bool
	canvas        *Canvas
	spreadHistory []float64
	lastErr       error
	svgPath       string
	svgNote       string
}

func NewModel(pop *pendulum.Population, dt float64, stepsPerTick int, svgPath string) Model {
	initial := make([]pendulum.Trajectory, pop.Len())
	copy(initial, pop.Trajectories())

	return Model{
		pop:           pop,
		initial:       initial,
		dt:            dt,
		stepsPerTick:  stepsPerTick,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		spreadHistory: make([]float64, 0, historyCapacity),
		svgPath:       svgPath,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "e":
			m.exportSVG()
		}
	case TickMsg:
		if m.running {
			m.pop.StepAllN(m.dt, m.stepsPerTick)
			m.t += m.dt * float64(m.stepsPerTick)
			m.observeSpread()
		}
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	copy(m.pop.Trajectories(), m.initial)
	m.t = 0
	m.spreadHistory = m.spreadHistory[:0]
	m.lastErr = nil
	m.svgNote = ""
}

func (m *Model) observeSpread() {
	s, err := metrics.PopulationSpread(m.pop)
	if err != nil {
		m.lastErr = err
		return
	}
	m.spreadHistory = append(m.spreadHistory, s.Mean)
	if len(m.spreadHistory) > historyCapacity {
		m.spreadHistory = m.spreadHistory[1:]
	}
}

func (m *Model) exportSVG() {
	if m.svgPath == "" {
		return
	}
	if err := os.WriteFile(m.svgPath, []byte(CanvasSVG(m.canvas, 4)), 0644); err != nil {
		m.lastErr = err
		return
	}
	m.svgNote = m.svgPath
}

// draw projects every trajectory onto the canvas: rods for trajectory 0,
// outer-bob points for the rest.
func (m *Model) draw() {
	m.canvas.Clear()

	pa, pb := m.pop.PendulumA(), m.pop.PendulumB()
	reach := pa.Length() + pb.Length()
	cw, ch := canvasWidth*2, canvasHeight*4
	cx, cy := cw/2, ch/2

	// Sub-pixels per simulation unit, with a small margin.
	scale := float64(min(cw, ch)) / (2.2 * reach)

	project := func(p pendulum.Point) (int, int) {
		return cx + int(p.X*scale), cy - int(p.Y*scale)
	}

	trajs := m.pop.Trajectories()
	for i := len(trajs) - 1; i >= 1; i-- {
		_, bobB := trajs[i].Positions(pa, pb)
		x, y := project(bobB)
		m.canvas.Set(x, y)
	}

	bobA, bobB := trajs[0].Positions(pa, pb)
	ax, ay := project(bobA)
	bx, by := project(bobB)
	m.canvas.DrawLine(cx, cy, ax, ay)
	m.canvas.DrawLine(ax, ay, bx, by)
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render("DOUBLE PENDULUM ENSEMBLE") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.spreadHistory) > 1 {
		chart := asciigraph.Plot(m.spreadHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Mean spread"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Sim time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Trajectories") + valueStyle.Render(fmt.Sprintf("%d", m.pop.Len())) + "\n")
	s.WriteString(labelStyle.Render("dt") + valueStyle.Render(fmt.Sprintf("%g", m.dt)) + "\n")

	if spread, err := metrics.PopulationSpread(m.pop); err == nil {
		s.WriteString(labelStyle.Render("Spread mean") + valueStyle.Render(fmt.Sprintf("%.4f", spread.Mean)) + "\n")
		s.WriteString(labelStyle.Render("Spread max") + valueStyle.Render(fmt.Sprintf("%.4f", spread.Max)) + "\n")
	}
	energy := metrics.Energy(m.pop.Trajectories()[0], m.pop.PendulumA(), m.pop.PendulumB())
	s.WriteString(labelStyle.Render("Energy[0]") + valueStyle.Render(fmt.Sprintf("%.1f", energy)) + "\n")

	if m.svgNote != "" {
		s.WriteString(labelStyle.Render("SVG") + valueStyle.Render(m.svgNote) + "\n")
	}
	if m.lastErr != nil {
		s.WriteString(errStyle.Render(m.lastErr.Error()) + "\n")
	}

	s.WriteString(helpStyle.Render("SP:Pause  R:Reset  E:SVG  Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}

// Run starts the live view and blocks until quit.
func Run(pop *pendulum.Population, dt float64, stepsPerTick int, svgPath string) error {
	_, err := tea.NewProgram(NewModel(pop, dt, stepsPerTick, svgPath)).Run()
	return err
}
