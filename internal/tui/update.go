package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"loadenv/internal/model"
)

// MsgLoadReady indicates that the load has completed.
type MsgLoadReady model.LoadResult

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4 // minus footer/header
		m.refreshDetails()
		return m, nil

	case MsgLoadReady:
		m.Loading = false
		m.Result = model.LoadResult(msg)
		// Auto-populate filtered indices with all
		m.FilteredIndices = make([]int, len(m.Result.Entries))
		for i := range m.Result.Entries {
			m.FilteredIndices[i] = i
		}
		m.SelectedIdx = 0
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				// Exit search mode and clear search
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
			}
			return m, nil
		case "/":
			m.InputMode = true
			m.SearchActive = true
			m.InputBuffer.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
			return m, nil
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
			return m, nil
		}

		// Let the viewport handle scrolling keys (pgup/pgdn etc.)
		m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// performSearch filters the entry list by key substring.
func (m *AppModel) performSearch() {
	query := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.FilteredIndices = m.FilteredIndices[:0]
	for i, e := range m.Result.Entries {
		if !m.SearchActive || query == "" || strings.Contains(strings.ToLower(e.Key), query) {
			m.FilteredIndices = append(m.FilteredIndices, i)
		}
	}
	if m.SelectedIdx >= len(m.FilteredIndices) {
		m.SelectedIdx = 0
	}
	m.refreshDetails()
}

func (m *AppModel) refreshDetails() {
	m.DetailsViewport.SetContent(m.detailContent())
}
