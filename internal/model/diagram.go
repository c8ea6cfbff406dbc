package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Document is the raw input split into its header and record lines.
type Document struct {
	Title    string
	AxisLine string
	Records  []string
}

// AxisLabel returns the displayed part of the axis line: the text before
// the first comma.
func (d Document) AxisLabel() string {
	label, _, _ := strings.Cut(d.AxisLine, ",")
	return strings.TrimSpace(label)
}

// ColorLines returns the lines that carry bar colours, source first.
func (d Document) ColorLines() []string {
	lines := make([]string, 0, len(d.Records)+1)
	lines = append(lines, d.AxisLine)
	return append(lines, d.Records...)
}

// Diagram is the validated, render-ready description of a chart.
// Colors[0] belongs to the source bar and Colors[i+1] to Flows[i].
type Diagram struct {
	Title     string  `json:"title"`
	AxisLabel string  `json:"axis_label"`
	Flows     []Flow  `json:"flows"`
	Colors    []Color `json:"colors"`
}

// SourceColor returns the colour of the source bar.
func (d *Diagram) SourceColor() Color {
	return d.Colors[0]
}

// FlowColor returns the colour of target bar i.
func (d *Diagram) FlowColor(i int) Color {
	return d.Colors[i+1]
}

// ParseDocument reads a document from r.
func ParseDocument(r io.Reader) (Document, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}

	// Trailing blank lines are editor noise, not empty records.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return Document{}, ErrShortDocument
	}

	return Document{
		Title:    strings.TrimSpace(lines[0]),
		AxisLine: lines[1],
		Records:  lines[2:],
	}, nil
}

// ReadDocument opens path and parses it as a document.
func ReadDocument(path string) (Document, error) {
	f, err := os.Open(expandTilde(path))
	if err != nil {
		return Document{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	return ParseDocument(f)
}
