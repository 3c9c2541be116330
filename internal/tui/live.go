// Package tui is a live terminal view of the variational optimizer: one
// gradient-descent step per frame, with the energy trace plotted as it
// approaches the exact ground energy.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/gradient"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/viz"
	"github.com/BillyLjm/PennyLane-Code-Camp-2022/internal/vqe"
)

const frameInterval = 50 * time.Millisecond

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type tickMsg time.Time

// Model runs the noisy VQE optimization one step per frame.
type Model struct {
	p        float64
	opt      vqe.Optimizer
	theta    float64
	step     int
	energies []float64
	exact    float64
	running  bool
	err      error
}

func NewModel(p float64, opt vqe.Optimizer) Model {
	return Model{
		p:       p,
		opt:     opt,
		theta:   opt.Theta0,
		exact:   vqe.ExactGroundEnergy(),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			if m.running {
				return m, tick()
			}
			return m, nil
		case "r":
			m.theta = m.opt.Theta0
			m.step = 0
			m.energies = nil
			m.running = true
			return m, tick()
		}

	case tickMsg:
		if !m.running || m.step >= m.opt.Steps {
			return m, nil
		}
		energyAt := func(params []float64) (float64, error) {
			return vqe.Energy(params[0], m.p, 1)
		}
		g, err := gradient.Partial(energyAt, []float64{m.theta}, 0, gradient.TwoTerm)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.theta -= m.opt.LearningRate * g
		e, err := vqe.Energy(m.theta, m.p, 1)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.energies = append(m.energies, e)
		m.step++
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	header := headerStyle.Render("vqe optimization (noisy simulator)")

	current := m.exact
	if len(m.energies) > 0 {
		current = m.energies[len(m.energies)-1]
	}
	stats := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s%s",
		labelStyle.Render("step"), valueStyle.Render(fmt.Sprintf("%d / %d", m.step, m.opt.Steps)),
		labelStyle.Render("theta"), valueStyle.Render(fmt.Sprintf("%.6f", m.theta)),
		labelStyle.Render("energy"), valueStyle.Render(fmt.Sprintf("%.6f", current)),
		labelStyle.Render("exact ground"), valueStyle.Render(fmt.Sprintf("%.6f", m.exact)),
	)

	graph := viz.PlotConvergence(m.energies)
	body := viz.PanelStyle.Render(stats)
	if graph != "" {
		body += "\n" + viz.PanelStyle.Render(graph)
	}

	status := "running"
	if !m.running {
		status = "paused"
	} else if m.step >= m.opt.Steps {
		status = "done"
	}
	help := helpStyle.Render(fmt.Sprintf("[%s]  space pause · r restart · q quit", status))

	return header + "\n" + body + "\n" + help + "\n"
}
