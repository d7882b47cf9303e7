package main

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfall/input"
	"github.com/plus3/blockfall/tetris"
)

// frameInterval is how often the model ticks the engine.
const frameInterval = 16 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	engine   *tetris.Engine
	bindings input.Bindings
	ghost    bool
	last     time.Time
}

func newModel(engine *tetris.Engine, bindings input.Bindings, ghost bool) model {
	return model{
		engine:   engine,
		bindings: bindings,
		ghost:    ghost,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		action := m.bindings.Lookup(msg.String())
		if action == input.Quit {
			return m, tea.Quit
		}
		action.Apply(m.engine)
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.engine.Tick(now.Sub(m.last))
		}
		m.last = now
		return m, tickCmd()
	}
	return m, nil
}

var (
	wellStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	panelStyle = lipgloss.NewStyle().Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	emptyCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Render(" .")
)

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func block(c color.RGBA) string {
	return lipgloss.NewStyle().Foreground(hexColor(c)).Render("██")
}

func ghostBlock(c color.RGBA) string {
	return lipgloss.NewStyle().Foreground(hexColor(c)).Render("░░")
}

// renderWell draws the board with the active piece and its ghost.
func renderWell(snap tetris.Snapshot, ghost bool) string {
	cells := snap.Composite()

	ghostAt := make(map[tetris.Point]bool, len(snap.Ghost))
	if ghost && !snap.GameOver {
		for _, p := range snap.Ghost {
			ghostAt[p] = true
		}
	}

	var b strings.Builder
	for y, row := range cells {
		for x, c := range row {
			switch {
			case c.A != 0:
				b.WriteString(block(c))
			case ghostAt[tetris.Point{X: x, Y: y}]:
				b.WriteString(ghostBlock(snap.Color))
			default:
				b.WriteString(emptyCell)
			}
		}
		if y < len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return wellStyle.Render(b.String())
}

// renderPreview draws shape inside its 5x5 rotation frame.
func renderPreview(shape tetris.Shape) string {
	var grid [5][5]bool
	for _, p := range shape.Offsets(0) {
		grid[p.Y][p.X] = true
	}

	var rows []string
	for _, row := range grid {
		var b strings.Builder
		for _, filled := range row {
			if filled {
				b.WriteString(block(shape.Color()))
			} else {
				b.WriteString("  ")
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

func (m model) View() string {
	snap := m.engine.Snapshot()

	panel := []string{
		titleStyle.Render("NEXT"),
		renderPreview(snap.Next),
		"",
		fmt.Sprintf("SCORE %d", snap.Score),
		fmt.Sprintf("LINES %d", snap.Lines),
		fmt.Sprintf("LEVEL %d", snap.Level),
		"",
	}
	switch {
	case snap.GameOver:
		panel = append(panel, alertStyle.Render("GAME OVER"), "r to restart")
	case snap.Paused:
		panel = append(panel, alertStyle.Render("PAUSED"))
	}
	panel = append(panel, "", titleStyle.Render("KEYS"))
	panel = append(panel, m.bindings.Legend()...)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderWell(snap, m.ghost),
		panelStyle.Render(strings.Join(panel, "\n")),
	)
}
