package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LineContext represents a line from a document with surrounding context
type LineContext struct {
	Before2    string // Two lines before the target
	Before1    string // Line before the target
	Target     string // The actual target line
	After1     string // Line after the target
	After2     string // Two lines after the target
	LineNumber int    // Line number of the target
	HasBefore2 bool   // Whether there's a second line before
	HasBefore1 bool   // Whether there's a line before
	HasAfter1  bool   // Whether there's a line after
	HasAfter2  bool   // Whether there's a second line after
	ErrorMsg   string // Error message if file couldn't be read
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// GetLineContext reads a file and returns the target line with surrounding context
func GetLineContext(filePath string, lineNumber int) LineContext {
	file, err := os.Open(expandTilde(filePath))
	if err != nil {
		return LineContext{
			LineNumber: lineNumber,
			ErrorMsg:   fmt.Sprintf("Could not read file: %v", err),
		}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return LineContext{
			LineNumber: lineNumber,
			ErrorMsg:   fmt.Sprintf("Error reading file: %v", err),
		}
	}

	return LinesContext(lines, lineNumber)
}

// LinesContext is GetLineContext over lines already in memory.
func LinesContext(lines []string, lineNumber int) LineContext {
	result := LineContext{
		LineNumber: lineNumber,
	}

	if lineNumber < 1 || lineNumber > len(lines) {
		result.ErrorMsg = fmt.Sprintf("Line %d out of range (file has %d lines)", lineNumber, len(lines))
		return result
	}

	result.Target = lines[lineNumber-1]

	if lineNumber > 2 {
		result.Before2 = lines[lineNumber-3]
		result.HasBefore2 = true
	}
	if lineNumber > 1 {
		result.Before1 = lines[lineNumber-2]
		result.HasBefore1 = true
	}

	if lineNumber < len(lines) {
		result.After1 = lines[lineNumber]
		result.HasAfter1 = true
	}
	if lineNumber+1 < len(lines) {
		result.After2 = lines[lineNumber+1]
		result.HasAfter2 = true
	}

	return result
}

// Lines returns the document as it appeared on disk, header first.
func (d Document) Lines() []string {
	lines := make([]string, 0, len(d.Records)+2)
	lines = append(lines, d.Title, d.AxisLine)
	return append(lines, d.Records...)
}

// Format renders the context as numbered lines with the target marked.
func (lc LineContext) Format() string {
	if lc.ErrorMsg != "" {
		return lc.ErrorMsg
	}
	var b strings.Builder
	row := func(n int, text string, marker string) {
		fmt.Fprintf(&b, "%s %4d | %s\n", marker, n, text)
	}
	if lc.HasBefore2 {
		row(lc.LineNumber-2, lc.Before2, " ")
	}
	if lc.HasBefore1 {
		row(lc.LineNumber-1, lc.Before1, " ")
	}
	row(lc.LineNumber, lc.Target, ">")
	if lc.HasAfter1 {
		row(lc.LineNumber+1, lc.After1, " ")
	}
	if lc.HasAfter2 {
		row(lc.LineNumber+2, lc.After2, " ")
	}
	return b.String()
}
