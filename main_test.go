package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTarget(t *testing.T) {
	tests := []struct {
		name           string
		output, format string
		wantOutput     string
		wantFormat     string
	}{
		{"defaults", "", "", "budget.png", "png"},
		{"svg format names the file", "", "SVG", "budget.svg", "svg"},
		{"extension picks format", "out.svg", "", "out.svg", "svg"},
		{"upper-case extension", "OUT.PNG", "", "OUT.PNG", "png"},
		{"format wins over extension", "chart.img", "png", "chart.img", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, format, err := exportTarget("data/budget.txt", tt.output, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOutput, output)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}

func TestExportTargetRejectsUnknownFormats(t *testing.T) {
	for _, tc := range []struct{ output, format string }{
		{"out.jpg", ""},
		{"out", ""},
		{"", "gif"},
		{"out.png", "bmp"},
	} {
		_, _, err := exportTarget("budget.txt", tc.output, tc.format)
		assert.Error(t, err, "output %q format %q", tc.output, tc.format)
	}
}
