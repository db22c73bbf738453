package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"loadenv/internal/model"
)

// LoadFunc produces the load result shown by the inspector.
type LoadFunc func() (model.LoadResult, error)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Result  model.LoadResult
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Result.Entries to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model

	load LoadFunc
}

// InitialModel returns the initial state.
func InitialModel(load LoadFunc) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Key name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		load:        load,
	}
}

// Init runs the load in the background and reports back as a message.
func (m AppModel) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		result, err := load()
		if err != nil {
			return MsgError(err)
		}
		return MsgLoadReady(result)
	}
}
