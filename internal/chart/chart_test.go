package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sankey/internal/config"
	"sankey/internal/model"
	"sankey/internal/render"
)

func doc(t *testing.T, text string) model.Document {
	t.Helper()
	d, err := model.ParseDocument(strings.NewReader(text))
	require.NoError(t, err)
	return d
}

func TestBuild(t *testing.T) {
	c, err := Build(doc(t, "budget\nIncome, 40, 50, 60\nrent, 100\nfood, 40, 0, 255, 0\n"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "budget", c.Diagram.Title)
	assert.Equal(t, "Income", c.Diagram.AxisLabel)
	assert.Equal(t, []model.Flow{{Name: "rent", Magnitude: 100}, {Name: "food", Magnitude: 40}}, c.Diagram.Flows)
	assert.Equal(t, []model.Color{
		model.RGB(40, 50, 60),
		model.DefaultPalette()[1],
		model.RGB(0, 255, 0),
	}, c.Diagram.Colors)

	assert.Equal(t, 490.0, c.Layout.TotalHeight)
	assert.Equal(t, 105.0, c.Layout.SourceY)
	assert.Equal(t, render.Sine, c.Curve)
}

func TestBuildStopsAtParseError(t *testing.T) {
	_, err := Build(doc(t, "t\naxis\na, 1\nb, x\n"), DefaultOptions())

	var invalid *model.InvalidNumberError
	require.True(t, errors.As(err, &invalid), "got %v", err)
	assert.Equal(t, 4, invalid.Line)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(doc(t, "t\naxis\n"), DefaultOptions())
	var empty *model.EmptyDiagramError
	assert.True(t, errors.As(err, &empty), "got %v", err)

	_, err = Build(doc(t, "t\naxis\na, 0\n"), DefaultOptions())
	assert.True(t, errors.As(err, &empty), "got %v", err)
}

func TestBuildDefaultsFontSize(t *testing.T) {
	opts := DefaultOptions()
	opts.FontSize = 0
	c, err := Build(doc(t, "t\naxis\na, 1\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 14.0, c.fontSize)
}

func TestLoad(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "budget.txt"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "Monthly budget", c.Diagram.Title)
	assert.Len(t, c.Diagram.Flows, 3)
	assert.Equal(t, model.RGB(0, 130, 200), c.Diagram.FlowColor(0))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "nope.txt"), DefaultOptions())
	var fileErr *model.FileError
	require.True(t, errors.As(err, &fileErr), "got %v", err)
}

func TestWithCurveCopies(t *testing.T) {
	c, err := Build(doc(t, "t\naxis\na, 1\n"), DefaultOptions())
	require.NoError(t, err)

	linear := c.WithCurve(render.Linear)
	assert.Equal(t, render.Linear, linear.Curve)
	assert.Equal(t, render.Sine, c.Curve)
	assert.Equal(t, c.Diagram, linear.Diagram)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Width, cfg.Height = 2000, 1400
	cfg.Curve = render.Linear
	cfg.Palette = []string{"#ff0000"}

	opts, err := OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2000, opts.Geometry.Width)
	assert.Equal(t, render.Linear, opts.Curve)
	assert.Equal(t, model.Palette{model.RGB(255, 0, 0)}, opts.Palette)

	cfg.Palette = []string{"red"}
	_, err = OptionsFromConfig(cfg)
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "budget.txt"), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.RenderPNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 700, img.Bounds().Dy())

	// middle of the source bar
	r, g, b, _ := img.At(110, 350).RGBA()
	assert.InDelta(t, 40, r>>8, 2)
	assert.InDelta(t, 50, g>>8, 2)
	assert.InDelta(t, 60, b>>8, 2)
}

func TestRenderSVG(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "budget.txt"), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.RenderSVG(&buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, ">Monthly budget</text>")
	assert.Contains(t, out, ">rent</text>")
	assert.Equal(t, 3*741*2, strings.Count(out, "<line"))
}

func TestChartJSON(t *testing.T) {
	c, err := Build(doc(t, "t\naxis\na, 1\n"), DefaultOptions())
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "sine", out["curve"])
	assert.Contains(t, out, "layout")
	assert.Contains(t, out, "geometry")
}
