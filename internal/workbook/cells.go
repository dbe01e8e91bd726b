package workbook

import (
	"strconv"
	"strings"
	"time"

	"workbook-recon/internal/model"

	"github.com/xuri/excelize/v2"
)

// builtinDateFormats are the built-in number format IDs that display dates or times
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true, 20: true, 21: true, 22: true,
	27: true, 28: true, 29: true, 30: true, 31: true, 32: true, 33: true, 34: true, 35: true, 36: true,
	45: true, 46: true, 47: true,
	50: true, 51: true, 52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

// missingMarkers are data cell texts that read as missing values
var missingMarkers = map[string]bool{
	"#N/A": true, "#N/A N/A": true, "#NA": true, "-1.#IND": true, "-1.#QNAN": true,
	"-NaN": true, "-nan": true, "1.#IND": true, "1.#QNAN": true, "<NA>": true,
	"N/A": true, "NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

func isMissingMarker(v model.Value) bool {
	return v.Kind() == model.KindString && missingMarkers[v.Text()]
}

// cellReader turns raw cell text into typed values using the cell's type and number format
type cellReader struct {
	file     *excelize.File
	date1904 bool
	// dateStyles caches whether a style ID carries a date format
	dateStyles map[int]bool
}

func newCellReader(f *excelize.File, date1904 bool) *cellReader {
	return &cellReader{
		file:       f,
		date1904:   date1904,
		dateStyles: make(map[int]bool),
	}
}

// value converts the raw text of the cell at (col, row), both 1-based
func (c *cellReader) value(sheet string, col, row int, raw string) (model.Value, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Null(), err
	}

	cellType, err := c.file.GetCellType(sheet, cell)
	if err != nil {
		return model.Null(), err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return model.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return model.Date(t), nil
		}
		return model.String(raw), nil
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		num, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.String(raw), nil
		}
		if c.isDateCell(sheet, cell) {
			if t, err := excelize.ExcelDateToTime(num, c.date1904); err == nil {
				return model.Date(t), nil
			}
		}
		return model.Number(num), nil
	case excelize.CellTypeError:
		return model.Null(), nil
	default:
		// shared/inline strings and string formula results
		return model.String(raw), nil
	}
}

func (c *cellReader) isDateCell(sheet, cell string) bool {
	styleID, err := c.file.GetCellStyle(sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := c.dateStyles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := c.file.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormatCode(*style.CustomNumFmt)
		} else {
			isDate = builtinDateFormats[style.NumFmt]
		}
	}
	c.dateStyles[styleID] = isDate
	return isDate
}

// isDateFormatCode reports whether a custom number format displays a date or time.
// Quoted literals, escaped characters and bracketed sections (colors, locales) are ignored.
func isDateFormatCode(code string) bool {
	var b strings.Builder
	inQuote := false
	inBracket := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		switch {
		case inQuote:
			if ch == '"' {
				inQuote = false
			}
		case inBracket:
			if ch == ']' {
				inBracket = false
			}
		case ch == '"':
			inQuote = true
		case ch == '[':
			// elapsed-time sections like [h] still count as time
			if i+1 < len(code) && strings.ContainsRune("hHmMsS", rune(code[i+1])) {
				b.WriteByte(code[i+1])
			}
			inBracket = true
		case ch == '\\' || ch == '_' || ch == '*':
			i++
		default:
			b.WriteByte(ch)
		}
	}
	clean := strings.ToLower(b.String())
	return strings.ContainsAny(clean, "ymdhs")
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
