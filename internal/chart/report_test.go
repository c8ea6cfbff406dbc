package chart

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sankey/internal/model"
)

func TestReport(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "budget.txt"), DefaultOptions())
	require.NoError(t, err)

	out := Report(c, false)
	assert.Contains(t, out, "Title:      Monthly budget\n")
	assert.Contains(t, out, "Axis label: Income\n")
	assert.Contains(t, out, "Curve:      sine\n")
	assert.Contains(t, out, "(40, 50, 60)")
	assert.Contains(t, out, "rent")
	assert.Contains(t, out, "Total magnitude: 152.50 across 3 flows\n")
	assert.NotContains(t, out, "Drawing:")
}

func TestReportVerbose(t *testing.T) {
	c, err := Load(filepath.Join("testdata", "budget.txt"), DefaultOptions())
	require.NoError(t, err)

	out := Report(c, true)
	assert.Contains(t, out, "Canvas:   1000x700\n")
	assert.Contains(t, out, "Bands:    columns 120..860 (741 per flow)\n")
	assert.Contains(t, out, "Drawing:  4 rects, 4446 lines, 5 labels\n")
}

func TestDescribeLineError(t *testing.T) {
	path := filepath.Join("testdata", "negative.txt")
	_, err := Load(path, DefaultOptions())
	require.Error(t, err)

	out := Describe(err, path)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Error on line 4: -14 is not a valid number", lines[0])
	assert.Contains(t, out, ">    4 | data2, -14, 124\n")
	assert.Contains(t, out, "     3 | data1, 14, 12, 124\n")
	assert.True(t, strings.HasSuffix(out, "Content of file is invalid\n"))
}

func TestDescribeWithoutPath(t *testing.T) {
	out := Describe(&model.MissingFieldError{Line: 5}, "")
	assert.Equal(t, "Error on line 5: data is missing\nContent of file is invalid\n", out)
}

func TestDescribeFileError(t *testing.T) {
	err := &model.FileError{Path: "gone.txt", Err: errors.New("no such file")}
	assert.Equal(t, "File gone.txt not found or is not readable.", Describe(err, "gone.txt"))
}

func TestDescribeOtherError(t *testing.T) {
	out := Describe(&model.EmptyDiagramError{}, "x.txt")
	assert.Equal(t, "diagram has no flows\n", out)
}
