package tui

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"sankey/internal/chart"
	"sankey/internal/logging"
	"sankey/internal/render"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgChartReady carries a built chart and its rasterised preview.
type MsgChartReady struct {
	Chart   *chart.Chart
	Preview image.Image
}

// MsgError indicates the document could not be loaded.
type MsgError error

// MsgSaved reports the file a chart was exported to.
type MsgSaved string

// MsgSaveFailed reports an export error. The loaded chart stays on screen.
type MsgSaveFailed struct{ Err error }

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 3
		m.DetailsViewport.Height = msg.Height / 3
		return m, nil

	case MsgChartReady:
		m.Loading = false
		m.Err = nil
		m.Chart = msg.Chart
		m.Preview = msg.Preview
		if m.SelectedIdx >= len(m.Chart.Diagram.Flows) {
			m.SelectedIdx = 0
		}
		return m, nil

	case MsgSaved:
		m.Status = fmt.Sprintf("Saved %s", string(msg))
		return m, nil

	case MsgSaveFailed:
		m.Status = fmt.Sprintf("Save failed: %v", msg.Err)
		return m, nil

	case MsgError:
		m.Loading = false
		m.Err = msg
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.InputBuffer.Blur()
				target := strings.TrimSpace(m.InputBuffer.Value())
				if target == "" || m.Chart == nil {
					return m, nil
				}
				m.Status = "Saving " + target
				return m, SaveChartCmd(m.Chart, target)
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.InputBuffer.SetValue("")
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.Chart != nil && m.SelectedIdx < len(m.Chart.Diagram.Flows)-1 {
				m.SelectedIdx++
			}
		case "d":
			m.ShowDetails = !m.ShowDetails
		case "c":
			if m.Chart == nil {
				return m, nil
			}
			next := render.Linear
			if m.Chart.Curve == render.Linear {
				next = render.Sine
			}
			m.Options.Curve = next
			m.Status = fmt.Sprintf("Curve: %s", next)
			return m, RenderChartCmd(m.Chart.WithCurve(next))
		case "r":
			m.Loading = true
			m.Status = ""
			return m, LoadChartCmd(m.Path, m.Options)
		case "s":
			if m.Chart == nil {
				return m, nil
			}
			m.InputMode = true
			m.InputBuffer.SetValue(defaultExportName(m.Path))
			m.InputBuffer.Focus()
			return m, textinput.Blink
		}
	}

	return m, cmd
}

func defaultExportName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if base == "" || base == "." {
		base = "chart"
	}
	return base + ".png"
}

// LoadChartCmd reads and builds the document in the background.
func LoadChartCmd(path string, opts chart.Options) tea.Cmd {
	return func() tea.Msg {
		c, err := chart.Load(path, opts)
		if err != nil {
			return MsgError(err)
		}
		return RenderChartCmd(c)()
	}
}

// RenderChartCmd rasterises a chart for the preview.
func RenderChartCmd(c *chart.Chart) tea.Cmd {
	return func() tea.Msg {
		r, err := c.Raster()
		if err != nil {
			return MsgError(err)
		}
		defer r.Close()
		return MsgChartReady{Chart: c, Preview: r.Image()}
	}
}

// SaveChartCmd exports the chart. The format follows the file extension.
func SaveChartCmd(c *chart.Chart, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return MsgSaveFailed{Err: err}
		}
		defer f.Close()

		if strings.EqualFold(filepath.Ext(path), ".svg") {
			err = c.RenderSVG(f)
		} else {
			err = c.RenderPNG(f)
		}
		if err != nil {
			return MsgSaveFailed{Err: err}
		}
		logging.Logger().Info("chart exported", "path", path)
		return MsgSaved(path)
	}
}
