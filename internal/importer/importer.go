// Package importer reads traced rooflines from CSV, Excel, SVG path data
// and DXF drawings. Point lists are grouped into paths by side and path
// identifier, with automatic delimiter detection and case-insensitive
// header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/LightLine/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Paths    []model.Path
	Errors   []string
	Warnings []string
}

// PointCount returns the number of points across all imported paths.
func (r ImportResult) PointCount() int {
	n := 0
	for _, p := range r.Paths {
		n += len(p.Points)
	}
	return n
}

// ColumnMapping maps semantic column roles to their indices in the data.
// A negative index means the column is absent.
type ColumnMapping struct {
	Side int
	Path int
	X    int
	Y    int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"side": {"side", "house side", "elevation", "wall"},
	"path": {"path", "path id", "line", "stroke", "segment", "run"},
	"x":    {"x", "px", "x px", "x (px)"},
	"y":    {"y", "py", "y px", "y (px)"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readCSV(bytes.NewReader(data), delim)
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func readCSV(r io.Reader, delim rune) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a positional
// mapping and false if the row looks like data.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Side: -1, Path: -1, X: -1, Y: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "side":
					if mapping.Side == -1 {
						mapping.Side = i
					}
				case "path":
					if mapping.Path == -1 {
						mapping.Path = i
					}
				case "x":
					if mapping.X == -1 {
						mapping.X = i
					}
				case "y":
					if mapping.Y == -1 {
						mapping.Y = i
					}
				}
			}
		}
	}

	if isHeader {
		return mapping, true
	}
	return positionalMapping(len(row)), false
}

// positionalMapping guesses columns from the row width:
// "side, path, x, y", "path, x, y" or "x, y".
func positionalMapping(cols int) ColumnMapping {
	switch {
	case cols >= 4:
		return ColumnMapping{Side: 0, Path: 1, X: 2, Y: 3}
	case cols == 3:
		return ColumnMapping{Side: -1, Path: 0, X: 1, Y: 2}
	default:
		return ColumnMapping{Side: -1, Path: -1, X: 0, Y: 1}
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports points from a CSV file. Rows without a side column
// are assigned defaultSide.
func ImportCSV(path string, defaultSide model.Side) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	var warnings []string
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		warnings = append(warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	records, err := readCSV(bytes.NewReader(data), delimiter)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", defaultSide, warnings)
}

// ImportCSVFromReader imports points from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, defaultSide model.Side) ImportResult {
	records, err := readCSV(reader, delimiter)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}
	return importFromRows(records, "Line", defaultSide, nil)
}

// ImportExcel imports points from the first sheet of an Excel workbook.
func ImportExcel(path string, defaultSide model.Side) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", defaultSide, nil)
}

type groupKey struct {
	side model.Side
	path string
}

// importFromRows is the shared import logic for both CSV and Excel data.
// Points are grouped by (side, path) in first-seen order.
func importFromRows(rows [][]string, rowPrefix string, defaultSide model.Side, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if _, err := strconv.ParseFloat(getCell(rows[0], mapping.X), 64); err != nil {
		// Unrecognized header: skip it but keep the positional mapping
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	}

	var order []groupKey
	groups := map[groupKey][]model.Point{}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		side := defaultSide
		if s := getCell(row, mapping.Side); s != "" {
			parsed, ok := model.ParseSide(s)
			if !ok {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Unknown side '%s'", rowLabel, s))
				continue
			}
			side = parsed
		}

		pt, errMsg := parsePoint(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}

		key := groupKey{side: side, path: getCell(row, mapping.Path)}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], pt)
	}

	for _, key := range order {
		pts := groups[key]
		if len(pts) < 2 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped %s path '%s' with fewer than 2 points", key.side.Label(), key.path))
			continue
		}
		result.Paths = append(result.Paths, model.NewPath(key.side, pts))
	}

	if len(result.Paths) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No valid paths found in file")
	}

	return result
}

func parsePoint(row []string, mapping ColumnMapping, rowLabel string) (model.Point, string) {
	xStr := getCell(row, mapping.X)
	if xStr == "" {
		return model.Point{}, fmt.Sprintf("%s: Missing X value", rowLabel)
	}
	x, err := strconv.ParseFloat(xStr, 64)
	if err != nil {
		return model.Point{}, fmt.Sprintf("%s: Invalid X '%s'", rowLabel, xStr)
	}

	yStr := getCell(row, mapping.Y)
	if yStr == "" {
		return model.Point{}, fmt.Sprintf("%s: Missing Y value", rowLabel)
	}
	y, err := strconv.ParseFloat(yStr, 64)
	if err != nil {
		return model.Point{}, fmt.Sprintf("%s: Invalid Y '%s'", rowLabel, yStr)
	}

	return model.Point{X: x, Y: y}, ""
}
