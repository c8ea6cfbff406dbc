// Package record turns raw flow lines into validated flows.
package record

import (
	"math"
	"strconv"
	"strings"

	"sankey/internal/logging"
	"sankey/internal/model"
)

// FirstLine is the document line number of the first record; the title and
// axis label occupy lines 1 and 2.
const FirstLine = 3

// Parser handles the parsing of flow records.
type Parser struct {
	FirstLine int
}

// NewParser creates a Parser numbering records from FirstLine.
func NewParser() *Parser {
	return &Parser{FirstLine: FirstLine}
}

// Parse validates every line and collects the flows in first-occurrence
// order. It stops at the first bad record.
//
// Each line is "name, magnitude[, anything...]". Fields past the second are
// colour data and are not inspected here.
func (p *Parser) Parse(lines []string) (*model.FlowSet, error) {
	log := logging.Logger()
	flows := model.NewFlowSet()

	for i, line := range lines {
		lineNum := i + p.FirstLine

		fields := SplitFields(line)
		if len(fields) < 2 {
			return nil, &model.MissingFieldError{Line: lineNum}
		}
		for _, f := range fields {
			if f == "" {
				return nil, &model.MissingFieldError{Line: lineNum}
			}
		}

		magnitude, err := parseMagnitude(fields[1])
		if err != nil {
			return nil, &model.InvalidNumberError{Line: lineNum, Literal: fields[1]}
		}

		if flows.Set(fields[0], magnitude) {
			log.Debug("flow redefined, keeping first position", "name", fields[0], "line", lineNum, "magnitude", magnitude)
		} else {
			log.Debug("flow parsed", "name", fields[0], "line", lineNum, "magnitude", magnitude)
		}
	}

	return flows, nil
}

// SplitFields splits a record on commas and trims every field.
func SplitFields(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

func parseMagnitude(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
