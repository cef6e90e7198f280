// Package browse is an interactive terminal browser over the discovered
// potential models.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/galpot/internal/discover"
	"github.com/san-kum/galpot/internal/potential"
	"github.com/san-kum/galpot/internal/typearg"
)

var (
	header  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	cursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	bright  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

const (
	stateList = iota
	stateDetail
)

type model struct {
	state   int
	cursor  int
	entries []discover.Entry
	width   int
	height  int
}

func newModel() model {
	return model{entries: discover.Scan(), width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.state {
		case stateList:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "up", "k":
				if m.cursor > 0 {
					m.cursor--
				}
			case "down", "j":
				if m.cursor < len(m.entries)-1 {
					m.cursor++
				}
			case "enter", " ":
				if len(m.entries) > 0 {
					m.state = stateDetail
				}
			}
		case stateDetail:
			switch msg.String() {
			case "q", "escape":
				m.state = stateList
			case "ctrl+c":
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateDetail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString("\n  " + header.Render("GALPOT") + "\n  " +
		subtle.Render("potential library browser") + "\n  " +
		subtle.Render(strings.Repeat("─", 40)) + "\n\n")
	for i, e := range m.entries {
		kind := "model"
		if e.Kind == discover.Combined {
			kind = fmt.Sprintf("combination of %d", len(e.Components))
		}
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				cursor.Render("▸"),
				bright.Render(fmt.Sprintf("%-42s", e.Name)),
				accent.Render(kind)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n",
				muted.Render(fmt.Sprintf("%-42s", e.Name)),
				muted.Render(kind)))
		}
	}
	b.WriteString("\n  " + keyHint.Render("j/k") + subtle.Render(" navigate  ") +
		keyHint.Render("enter") + subtle.Render(" inspect  ") +
		keyHint.Render("q") + subtle.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewDetail() string {
	e := m.entries[m.cursor]
	var b strings.Builder
	b.WriteString("\n  " + header.Render(e.Name) + "\n  " +
		subtle.Render(strings.Repeat("─", 40)) + "\n\n")

	enc, err := typearg.Encode(e.Components)
	if err != nil {
		enc = err.Error()
	}
	b.WriteString("  " + bright.Render("--type-arg") + "  " + accent.Render(enc) + "\n\n")

	types, args, err := potential.ParseAll(e.Components)
	if err == nil {
		b.WriteString("  " + subtle.Render(fmt.Sprintf("types: %v", types)) + "\n")
		b.WriteString("  " + subtle.Render(fmt.Sprintf("args:  %v", args)) + "\n\n")
	}

	for _, p := range e.Components {
		for _, line := range strings.Split(p.Doc(), "\n") {
			b.WriteString("  " + line + "\n")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  " + keyHint.Render("esc") + subtle.Render(" back  ") +
		keyHint.Render("ctrl+c") + subtle.Render(" quit") + "\n")
	return b.String()
}

// Run starts the browser.
func Run() error {
	_, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run()
	return err
}
