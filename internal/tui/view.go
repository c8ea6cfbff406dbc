package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"sankey/internal/chart"
	"sankey/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	unselectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	adviceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

func (m AppModel) View() string {
	if m.Loading {
		return fmt.Sprintf("\n  Rendering %s... please wait.\n", m.Path)
	}
	if m.Err != nil {
		return m.errorView()
	}
	if m.Chart == nil {
		return "\n  Nothing to show.\n"
	}

	width := m.WindowSize.Width
	height := m.WindowSize.Height
	if width < 40 {
		width = 40
	}
	if height < 12 {
		height = 12
	}

	// Two bordered panels: preview takes two thirds of the width.
	// Subtract title, footer and borders vertically.
	interiorHeight := height - 6
	leftWidth := (width-4)*2/3 - 2
	rightWidth := width - 4 - leftWidth - 2

	cols, rows := fitPreview(leftWidth, interiorHeight, m.Chart.Geometry.Width, m.Chart.Geometry.Height)
	preview := Rasterize(m.Preview, cols, rows)
	left := panelStyle.Width(leftWidth).Height(interiorHeight).Render(preview)

	right := panelStyle.Width(rightWidth).Height(interiorHeight).Render(m.flowPanel(rightWidth, interiorHeight))

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Chart.Diagram.Title))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render(m.Path))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m AppModel) flowPanel(width, height int) string {
	d := &m.Chart.Diagram
	var b strings.Builder

	b.WriteString(headingStyle.Render("Flows"))
	b.WriteString("\n\n")

	swatch := func(c model.Color) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(model.GlyphSwatch)
	}

	fmt.Fprintf(&b, "  %s %s %s\n", model.GlyphSource, swatch(d.SourceColor()), d.AxisLabel)

	var total float64
	for _, f := range d.Flows {
		total += f.Magnitude
	}

	for i, f := range d.Flows {
		line := fmt.Sprintf("%s %s %5.1f%%", f.Name, formatMagnitude(f.Magnitude), f.Magnitude/total*100)
		if width > 9 {
			line = runewidth.Truncate(line, width-6, "...")
		}
		cursor := " "
		style := unselectedItemStyle
		if i == m.SelectedIdx {
			cursor = model.GlyphSelected
			style = selectedItemStyle
		}
		fmt.Fprintf(&b, "%s %s %s\n", cursor, swatch(d.FlowColor(i)), style.Render(line))
	}

	if m.ShowDetails && len(d.Flows) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Details"))
		b.WriteString("\n")
		vp := m.DetailsViewport
		vp.Width = width
		if vp.Height <= 0 || vp.Height > height/2 {
			vp.Height = height / 2
		}
		vp.SetContent(m.details())
		b.WriteString(vp.View())
	}

	return b.String()
}

func (m AppModel) details() string {
	d := &m.Chart.Diagram
	i := m.SelectedIdx
	f := d.Flows[i]
	slot := m.Chart.Layout.Slots[i]

	var b strings.Builder
	fmt.Fprintf(&b, "Name:       %s\n", f.Name)
	fmt.Fprintf(&b, "Magnitude:  %s\n", formatMagnitude(f.Magnitude))
	fmt.Fprintf(&b, "Target bar: y=%.1f h=%.1f\n", slot.TargetY, slot.TargetHeight)
	fmt.Fprintf(&b, "Source seg: y=%.1f\n", slot.SourceSegmentY)
	fmt.Fprintf(&b, "Colour:     %s %s\n", d.FlowColor(i), d.FlowColor(i).Hex())
	fmt.Fprintf(&b, "Band:       %s -> %s\n", d.SourceColor().Hex(), d.FlowColor(i).Hex())
	return b.String()
}

func (m AppModel) footer() string {
	if m.InputMode {
		return "Save as: " + m.InputBuffer.View() + dimStyle.Render("  (enter to save, esc to cancel)")
	}
	curve := "sine"
	if m.Chart != nil {
		curve = m.Chart.Curve.String()
	}
	help := dimStyle.Render(fmt.Sprintf("↑/↓ select • c curve (%s) • s save • r reload • d details • q quit", curve))
	if m.Status != "" {
		return help + "  " + adviceStyle.Render(m.Status)
	}
	return help
}

func (m AppModel) errorView() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(errorStyle.Render(model.GlyphError + " Could not render " + m.Path))
	b.WriteString("\n\n")
	for _, line := range strings.Split(strings.TrimRight(chart.Describe(m.Err, m.Path), "\n"), "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render("r reload • q quit"))
	b.WriteString("\n")
	return b.String()
}

func formatMagnitude(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

// fitPreview returns the largest cols x rows cell area inside maxCols x
// maxRows that keeps the width:height ratio of a w x h image. Each cell
// shows two vertically stacked pixels.
func fitPreview(maxCols, maxRows, w, h int) (cols, rows int) {
	if maxCols < 1 || maxRows < 1 || w < 1 || h < 1 {
		return 0, 0
	}
	cols = maxCols
	rows = cols * h / w / 2
	if rows > maxRows {
		rows = maxRows
		cols = rows * 2 * w / h
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

// Rasterize downsamples img to cols x rows terminal cells using upper half
// blocks, so each cell carries two pixels: foreground on top, background
// below.
func Rasterize(img image.Image, cols, rows int) string {
	if img == nil || cols < 1 || rows < 1 {
		return ""
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	sample := func(x, y int) model.Color {
		r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return model.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}

	styles := make(map[[2]model.Color]lipgloss.Style)
	var sb strings.Builder
	for cy := 0; cy < rows; cy++ {
		topY := (4*cy + 1) * h / (4 * rows)
		bottomY := (4*cy + 3) * h / (4 * rows)
		for cx := 0; cx < cols; cx++ {
			x := (2*cx + 1) * w / (2 * cols)
			key := [2]model.Color{sample(x, topY), sample(x, bottomY)}
			style, ok := styles[key]
			if !ok {
				style = lipgloss.NewStyle().
					Foreground(lipgloss.Color(key[0].Hex())).
					Background(lipgloss.Color(key[1].Hex()))
				styles[key] = style
			}
			sb.WriteString(style.Render(model.GlyphHalfBlock))
		}
		if cy < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
