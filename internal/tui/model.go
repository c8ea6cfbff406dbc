package tui

import (
	"image"

	"sankey/internal/chart"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Path    string
	Options chart.Options
	Chart   *chart.Chart
	Preview image.Image
	Loading bool
	Err     error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	ShowDetails bool
	Status      string

	// Save prompt
	InputMode   bool
	InputBuffer textinput.Model

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state for previewing path.
func InitialModel(path string, opts chart.Options) AppModel {
	ti := textinput.New()
	ti.Placeholder = "chart.png"
	ti.CharLimit = 256
	ti.Width = 40

	return AppModel{
		Path:        path,
		Options:     opts,
		Loading:     true,
		ShowDetails: true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}

// Init starts loading the document.
func (m AppModel) Init() tea.Cmd {
	return LoadChartCmd(m.Path, m.Options)
}
