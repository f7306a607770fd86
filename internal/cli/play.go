package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/solver"
)

var playSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Play with a cube interactively. Each face key applies a clockwise
turn; hold shift for the inverse turn.

Keyboard:
  r u f l d b   - outer face turns
  m e s         - slice turns
  x y z         - whole-cube rotations
  (shift)       - inverse of any of the above
  backspace     - undo last move
  tab           - redo
  ctrl+s        - scramble (starts the timer)
  ctrl+r        - reset to solved
  q/esc         - quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playSize, "size", 3, "Cube size (2-10)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// playKeys maps key presses to move notation. Lowercase turns
// clockwise, shift inverts.
var playKeys = map[string]string{
	"r": "R", "R": "R'",
	"u": "U", "U": "U'",
	"f": "F", "F": "F'",
	"l": "L", "L": "L'",
	"d": "D", "D": "D'",
	"b": "B", "B": "B'",
	"m": "M", "M": "M'",
	"e": "E", "E": "E'",
	"s": "S", "S": "S'",
	"x": "x", "X": "x'",
	"y": "y", "Y": "y'",
	"z": "z", "Z": "z'",
}

type tickMsg time.Time

// Model
type playModel struct {
	cube    *cubesim.Cube
	tracker *solver.Tracker // stage detection, 3x3x3 only

	// Timing: the timer runs from scramble until the cube is solved.
	solving         bool
	startTime       time.Time
	elapsed         time.Duration
	movesAtScramble int
	solveMsg        string

	// UI
	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(cube *cubesim.Cube) *playModel {
	m := &playModel{cube: cube}
	if cube.Size() == 3 {
		m.tracker = solver.NewTracker(cube)
	}
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace", "left":
			if _, ok := m.cube.Undo(); ok {
				m.err = nil
				m.observeStage()
			}

		case "tab", "right":
			if _, ok := m.cube.Redo(); ok {
				m.err = nil
				m.observeStage()
			}

		case "ctrl+s":
			return m, m.scramble()

		case "ctrl+r":
			m.reset()

		default:
			if notation, ok := playKeys[key]; ok {
				m.applyMove(notation)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.solving && !m.cube.IsSolved() {
			m.elapsed = time.Since(m.startTime)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) applyMove(notation string) {
	if err := m.cube.ApplyNotation(notation); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.observeStage()

	if m.solving && m.cube.IsSolved() {
		m.solving = false
		m.elapsed = time.Since(m.startTime)
		moves := m.cube.MoveCount() - m.movesAtScramble
		m.solveMsg = fmt.Sprintf("SOLVED in %s with %d moves!", m.formatElapsed(), moves)
	}
}

func (m *playModel) observeStage() {
	if m.tracker != nil {
		m.tracker.Observe()
	}
}

func (m *playModel) scramble() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.cube.Scramble(20); err != nil {
			m.err = err
			return nil
		}
		if m.tracker != nil {
			m.tracker.Reset()
		}
		m.solving = true
		m.startTime = time.Now()
		m.elapsed = 0
		m.movesAtScramble = m.cube.MoveCount()
		m.solveMsg = ""
		m.err = nil
		return nil
	}
}

func (m *playModel) reset() {
	m.cube.Reset()
	if m.tracker != nil {
		m.tracker.Reset()
	}
	m.solving = false
	m.elapsed = 0
	m.movesAtScramble = 0
	m.solveMsg = ""
	m.err = nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	size := m.cube.Size()
	b.WriteString(titleStyle.Render(fmt.Sprintf("cubesim %dx%dx%d", size, size, size)))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.cube))
	b.WriteString("\n\n")

	// Status
	status := fmt.Sprintf("Moves: %d", m.cube.MoveCount())
	if m.solving {
		status += fmt.Sprintf("   Timer: %s", m.formatElapsed())
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.solveMsg != "" {
		b.WriteString(solvedStyle.Render(m.solveMsg))
		b.WriteString("\n")
	} else if m.tracker != nil && m.solving {
		highest := m.tracker.Highest()
		if highest == solver.StageSolved {
			b.WriteString(stageStyle.Render("Stage: Solved"))
		} else {
			b.WriteString(stageStyle.Render(fmt.Sprintf("Stage: %s, working on %s",
				highest.DisplayName(), highest.Next().DisplayName())))
		}
		b.WriteString("\n")
	} else if m.cube.IsSolved() {
		b.WriteString(solvedStyle.Render("Solved"))
		b.WriteString("\n")
	}

	// Recent moves
	history := m.cube.History()
	if len(history) > 0 {
		start := 0
		prefix := ""
		if len(history) > 20 {
			start = len(history) - 20
			prefix = "... "
		}
		var notations []string
		for _, mv := range history[start:] {
			notations = append(notations, mv.Notation())
		}
		b.WriteString(prefix)
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: rufldb/mes/xyz move (shift=inverse)  backspace=undo tab=redo  ctrl+s=scramble ctrl+r=reset q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *playModel) formatElapsed() string {
	if m.elapsed < time.Minute {
		return fmt.Sprintf("%.1fs", m.elapsed.Seconds())
	}
	mins := int(m.elapsed.Minutes())
	secs := m.elapsed.Seconds() - float64(mins*60)
	return fmt.Sprintf("%d:%05.2f", mins, secs)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube, err := cubesim.NewCube(playSize)
	if err != nil {
		return err
	}

	model := newPlayModel(cube)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
