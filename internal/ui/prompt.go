package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptGoTo
	promptPageSize
)

// promptState is the single-line numeric input shown in the footer.
type promptState struct {
	kind  promptKind
	input textinput.Model
}

func newPromptState() promptState {
	ti := textinput.New()
	ti.CharLimit = 6
	ti.Width = 8
	ti.Prompt = ""
	return promptState{input: ti}
}

func (p promptState) active() bool {
	return p.kind != promptNone
}

// label returns the text shown before the input.
func (p promptState) label() string {
	switch p.kind {
	case promptGoTo:
		return "Go to page:"
	case promptPageSize:
		return "Page size:"
	default:
		return ""
	}
}

// openPrompt shows the input for kind, prefilled with the current value.
func (m *Model) openPrompt(kind promptKind) tea.Cmd {
	m.prompt.kind = kind
	m.prompt.input.Reset()
	switch kind {
	case promptGoTo:
		m.prompt.input.Placeholder = fmt.Sprintf("1-%d", m.nav.LastPage()+1)
	case promptPageSize:
		m.prompt.input.Placeholder = strconv.Itoa(m.nav.PageSize())
	}
	return m.prompt.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt.kind = promptNone
	m.prompt.input.Blur()
	m.prompt.input.Reset()
}

// handlePromptKey processes keyboard input while a prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		m.submitPrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// submitPrompt applies the entered number and closes the prompt. Input the
// navigator would ignore (not a number, a page out of range, a non-positive
// size) is dropped without a message.
func (m *Model) submitPrompt() {
	defer m.closePrompt()

	n, err := strconv.Atoi(strings.TrimSpace(m.prompt.input.Value()))
	if err != nil {
		m.logger.Debug("prompt input ignored", "value", m.prompt.input.Value())
		return
	}

	switch m.prompt.kind {
	case promptGoTo:
		if m.nav.GoTo(n) {
			m.afterPageChange()
		}

	case promptPageSize:
		if n <= 0 {
			return
		}
		m.nav.OnChangePageSize(n)
		m.pageSize = m.nav.PageSize()
		m.savedPageSize = m.pageSize
		m.afterPageChange()
		m.savePrefs()
	}
}
