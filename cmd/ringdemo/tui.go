package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/termsurface"
)

const tuiFPS = 30

var (
	tuiHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
	tuiErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)

func newTUICmd(pf *propFlags) *cobra.Command {
	var cols int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Animate the indicator in the terminal",
		Long:  "Animate the indicator in the terminal. Use +/- or arrows to change the fill, q to quit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.props(cmd)
			if err != nil {
				return err
			}
			target := p.Fill
			p.Fill = 0
			ind, err := ring.NewFromProps(p)
			if err != nil {
				return err
			}
			m := newTUIModel(ind, termsurface.New(cols), target)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 40, "preview width in terminal cells")
	return cmd
}

type frameMsg time.Time

func animate() tea.Cmd {
	return tea.Tick(time.Second/tuiFPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// tuiModel springs the displayed fill toward a target.
type tuiModel struct {
	ind     *ring.Indicator
	surface *termsurface.Surface
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	err     error
}

func newTUIModel(ind *ring.Indicator, s *termsurface.Surface, target float64) tuiModel {
	return tuiModel{
		ind:     ind,
		surface: s,
		spring:  harmonica.NewSpring(harmonica.FPS(tuiFPS), 6.0, 0.5),
		target:  ring.ClampFill(target),
	}
}

func (m tuiModel) Init() tea.Cmd {
	return animate()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=", "up", "right":
			m.target = ring.ClampFill(m.target + 5)
		case "-", "_", "down", "left":
			m.target = ring.ClampFill(m.target - 5)
		}
		return m, nil
	case frameMsg:
		m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
		m.ind.SetFill(m.pos)
		m.err = m.ind.Render(m.surface)
		return m, animate()
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.err != nil {
		return tuiErrorStyle.Render(m.err.Error()) + "\n"
	}
	help := tuiHelpStyle.Render(fmt.Sprintf("fill %5.1f%% → %5.1f%%   +/- change   q quit", m.ind.Fill(), m.target))
	return m.surface.String() + "\n\n" + help + "\n"
}
