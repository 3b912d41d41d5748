package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ctypes"
	"github.com/wippyai/ctypes/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectType modelState = iota
	stateInputValue
	stateShowResult
)

type interactiveModel struct {
	err      error
	reg      *types.Registry
	buf      *ctypes.Buffer
	result   string
	entries  []*types.Descriptor
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel(reg *types.Registry) *interactiveModel {
	names := reg.Names()
	entries := make([]*types.Descriptor, 0, len(names))
	for _, name := range names {
		entries = append(entries, reg.MustGet(name))
	}
	return &interactiveModel{
		reg:     reg,
		entries: entries,
		state:   stateSelectType,
	}
}

type encodedMsg struct {
	err    error
	buf    *ctypes.Buffer
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) current() *types.Descriptor {
	return m.entries[m.selected]
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputValue {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectType && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectType && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "*":
			if m.state == stateSelectType {
				m.addPointer()
			}

		case "enter":
			switch m.state {
			case stateSelectType:
				m.prepareInput()
				m.state = stateInputValue
				return m, textinput.Blink

			case stateInputValue:
				return m, m.encodeValue

			case stateShowResult:
				m.reset()
			}

		case "esc":
			switch m.state {
			case stateInputValue, stateShowResult:
				m.reset()
			}
		}

	case encodedMsg:
		m.buf = msg.buf
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// addPointer lists the pointer-to type of the selection right after it and
// selects it. Pointer types stay local to the explorer.
func (m *interactiveModel) addPointer() {
	ref := m.reg.RefType(m.current())
	if m.selectName(ref.Name()) {
		return
	}
	at := m.selected + 1
	m.entries = append(m.entries[:at], append([]*types.Descriptor{ref}, m.entries[at:]...)...)
	m.selected = at
}

func (m *interactiveModel) selectName(name string) bool {
	for i, d := range m.entries {
		if d.Name() == name {
			m.selected = i
			return true
		}
	}
	return false
}

func (m *interactiveModel) reset() {
	m.state = stateSelectType
	m.buf = nil
	m.result = ""
	m.err = nil
}

func (m *interactiveModel) prepareInput() {
	d := m.current()
	ti := textinput.New()
	ti.Placeholder = placeholder(d)
	ti.Prompt = d.Name() + " = "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func placeholder(d *types.Descriptor) string {
	switch {
	case d.Category() == types.CategoryVoid:
		return "(no value)"
	case d.Category() == types.CategoryPointer:
		return "address"
	case d.Name() == "float" || d.Name() == "double":
		return "number"
	case d.Size() == 8:
		return "integer or decimal string"
	case d.Size() == 1:
		return "integer or single character"
	default:
		return "integer"
	}
}

func (m *interactiveModel) encodeValue() tea.Msg {
	d := m.current()
	buf := ctypes.Wrap(make([]byte, d.Size()), d)
	if err := buf.Set(0, parseValue(m.input.Value())); err != nil {
		return encodedMsg{err: err}
	}
	return encodedMsg{buf: buf, result: formatValue(buf.Get(0))}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	l := m.reg.Layout()
	b.WriteString(titleStyle.Render("ctypes"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("%s, %s", l.Name, l.Endian))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectType:
		b.WriteString("Select a type to encode:\n\n")
		for i, d := range m.entries {
			name := d.Name()
			line := "  " + name
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + name))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(typeStyle.Render(describeType(m.current())))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/↓ select • * pointer to • enter encode • q quit"))

	case stateInputValue:
		b.WriteString(fmt.Sprintf("Encoding %s\n\n", typeStyle.Render(describeType(m.current()))))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter encode • esc back"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(ctypes.Plain.Render(m.buf))
			b.WriteString("\n")
			b.WriteString(resultStyle.Render(m.current().Name() + " = " + m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(reg *types.Registry) error {
	p := tea.NewProgram(newInteractiveModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
