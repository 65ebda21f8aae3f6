// Package tui is the interactive worksheet editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/complexsolver/expr"
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
	"github.com/katalvlaran/complexsolver/sheet"
)

// State is the current screen.
type State int

const (
	StateSize   State = iota // asking for the number of unknowns
	StateGrid                // moving the cursor over the matrix
	StateEdit                // typing a cell value
	StateResult              // browsing the solution
)

// Config holds editor settings.
type Config struct {
	EvalOptions  []expr.Option
	SolveOptions []linear.Option
	Formatter    notation.Formatter
	Width        int // result line budget; 0 means unbounded

	// OnSolve is called after every solve attempt.
	OnSolve func(a *linear.Augmented, x linear.Vector, err error)
}

// DefaultConfig returns the editor defaults.
func DefaultConfig() Config {
	return Config{Formatter: notation.DefaultFormatter, Width: 26}
}

// Model is the Bubbletea model of the editor.
type Model struct {
	cfg    Config
	state  State
	input  textinput.Model
	sheet  *sheet.Sheet
	result *sheet.Result

	// edit state: the real part is kept while the imaginary part is typed
	editImag  bool
	pendingRe string

	err error
}

// New creates the editor at the size prompt.
func New(cfg Config) Model {
	in := textinput.New()
	in.Placeholder = "expression"
	in.CharLimit = 64
	in.Width = 30
	in.Focus()

	return Model{cfg: cfg, state: StateSize, input: in}
}

// State returns the current screen.
func (m Model) State() State { return m.state }

// Sheet returns the worksheet, nil before the size is entered.
func (m Model) Sheet() *sheet.Sheet { return m.sheet }

// Result returns the last solution, nil when none is shown.
func (m Model) Result() *sheet.Result { return m.result }

// Err returns the last error shown in the status line.
func (m Model) Err() error { return m.err }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}
	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.state {
	case StateSize:
		return m.updateSize(key)
	case StateGrid:
		return m.updateGrid(key)
	case StateEdit:
		return m.updateEdit(key)
	case StateResult:
		return m.updateResult(key)
	}

	return m, nil
}

func (m Model) updateSize(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		m.sheet = sheet.NewFromInput(m.input.Value(),
			sheet.WithEvalOptions(m.cfg.EvalOptions...),
			sheet.WithSolveOptions(m.cfg.SolveOptions...),
			sheet.WithFormatter(m.cfg.Formatter),
		)
		m.input.Reset()
		m.err = nil
		m.state = StateGrid

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)

	return m, cmd
}

func (m Model) updateGrid(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "left", "h":
		m.sheet.Left()
	case "right", "l":
		m.sheet.Right()
	case "up", "k":
		m.sheet.Up()
	case "down", "j":
		m.sheet.Down()
	case "enter", "e":
		m.state = StateEdit
		m.editImag = false
		m.pendingRe = ""
		m.input.Reset()
	case "n":
		m.sheet = nil
		m.result = nil
		m.err = nil
		m.input.Reset()
		m.state = StateSize
	case "s":
		m.solve()
	}

	return m, nil
}

func (m *Model) solve() {
	a := m.sheet.Matrix()
	res, err := m.sheet.Solve()
	if m.cfg.OnSolve != nil {
		var x linear.Vector
		if res != nil {
			x = res.X
		}
		m.cfg.OnSolve(a, x, err)
	}
	if err != nil {
		m.err = err

		return
	}
	m.err = nil
	m.result = res
	m.state = StateResult
}

func (m Model) updateEdit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.state = StateGrid
		m.input.Reset()

		return m, nil
	case tea.KeyEnter:
		if !m.editImag {
			m.pendingRe = m.input.Value()
			m.editImag = true
			m.input.Reset()

			return m, nil
		}
		m.err = m.sheet.Enter(m.pendingRe, m.input.Value())
		m.input.Reset()
		m.editImag = false
		m.state = StateGrid

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)

	return m, cmd
}

func (m Model) updateResult(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter":
		m.result = nil
		m.state = StateGrid
	case "up", "k":
		m.result.ScrollUp()
	case "down", "j":
		m.result.ScrollDown()
	case "left", "h":
		m.result.ScrollLeft()
	case "right", "l":
		m.result.ScrollRight()
	}

	return m, nil
}

// View renders the current screen
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Complex System Solver"))
	b.WriteString("\n")

	switch m.state {
	case StateSize:
		b.WriteString("Number of unknowns (2-5):\n")
		b.WriteString(InputStyle.Render(m.input.View()))
		b.WriteString(RenderHelp("enter: confirm • esc: quit"))
	case StateGrid:
		b.WriteString(m.gridView())
		b.WriteString(RenderHelp("←/→: equation • ↑/↓: column • enter: edit • s: solve • n: new • q: quit"))
	case StateEdit:
		b.WriteString(m.gridView())
		part := "Real"
		if m.editImag {
			part = "Imag"
		}
		row, col := m.sheet.Cursor()
		fmt.Fprintf(&b, "%s part of R%d %s:\n", part, row+1, m.sheet.Label(col))
		b.WriteString(InputStyle.Render(m.input.View()))
		b.WriteString(RenderHelp("enter: next • esc: cancel"))
	case StateResult:
		b.WriteString(m.resultView())
		b.WriteString(RenderHelp("↑/↓: unknowns • ←/→: scroll • esc: back • q: quit"))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(RenderError(m.err))
	}

	return b.String()
}

// gridView shows the equation under the cursor, one cell per line.
func (m Model) gridView() string {
	row, col := m.sheet.Cursor()
	var b strings.Builder
	fmt.Fprintf(&b, "Row %d\n", row+1)
	for j := 0; j <= m.sheet.Unknowns(); j++ {
		v, _ := m.sheet.Cell(row, j)
		style := CellStyle
		if j == col {
			style = SelectedCellStyle
		}
		b.WriteString(LabelStyle.Render(m.sheet.Label(j)))
		b.WriteString(style.Render(notation.Rectangular(v)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) resultView() string {
	clip := lipgloss.NewStyle()
	if m.cfg.Width > 0 {
		clip = clip.MaxWidth(m.cfg.Width)
	}

	var b strings.Builder
	for _, e := range m.result.Visible() {
		b.WriteString(ResultLabelStyle.Render(e.Label))
		b.WriteString("\n")
		for _, line := range []string{e.Rect, e.Polar, e.Phasor} {
			b.WriteString(clip.Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Run starts the editor on the terminal.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()

	return err
}
