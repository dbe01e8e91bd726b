// Package workbook reads spreadsheet files into model tables.
package workbook

import (
	"fmt"
	"strconv"

	"workbook-recon/internal/logger"
	"workbook-recon/internal/model"

	"github.com/xuri/excelize/v2"
)

// Workbook is a read-only handle on an opened spreadsheet file
type Workbook struct {
	path     string
	file     *excelize.File
	sheets   []string
	date1904 bool
	cells    *cellReader
}

// Open opens the workbook at path and reads its sheet directory.
// Cached formula results are returned for formula cells, never formula text.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenWorkbook, err)
	}

	wb := &Workbook{
		path:   path,
		file:   f,
		sheets: f.GetSheetList(),
	}

	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	wb.cells = newCellReader(f, wb.date1904)

	logger.Debug("Opened %s (%d sheets, date1904=%v)", path, len(wb.sheets), wb.date1904)
	return wb, nil
}

// Close releases the underlying file
func (w *Workbook) Close() error {
	if w.file == nil {
		return nil
	}
	return w.file.Close()
}

// Path returns the path the workbook was opened from
func (w *Workbook) Path() string { return w.path }

// SheetNames returns the sheet names in workbook order
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.sheets))
	copy(names, w.sheets)
	return names
}

// LoadTable reads a sheet into a Table. The first row supplies the headers;
// every following row is data. Trailing all-empty rows are dropped.
func (w *Workbook) LoadTable(sheet string) (*model.Table, error) {
	if !w.hasSheet(sheet) {
		return nil, NewSheetError(sheet, ErrSheetNotFound)
	}

	raw, err := w.file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewSheetError(sheet, err)
	}

	rows := make([][]model.Value, 0, len(raw))
	width := 0
	for r, cells := range raw {
		values := make([]model.Value, len(cells))
		last := -1
		for c, text := range cells {
			if text == "" {
				continue
			}
			v, err := w.cells.value(sheet, c+1, r+1, text)
			if err != nil {
				return nil, NewSheetError(sheet, err)
			}
			// header cells keep their text
			if r > 0 && isMissingMarker(v) {
				v = model.Null()
			}
			values[c] = v
			if !v.IsNull() {
				last = c
			}
		}
		values = values[:last+1]
		if len(values) > width {
			width = len(values)
		}
		rows = append(rows, values)
	}

	rows = trimTrailingEmpty(rows)
	if len(rows) == 0 {
		return model.NewTable(nil, nil), nil
	}

	headers := make([]string, width)
	for i := range headers {
		if i < len(rows[0]) && !rows[0][i].IsNull() {
			headers[i] = rows[0][i].String()
			continue
		}
		headers[i] = model.UnnamedPrefix + strconv.Itoa(i)
	}

	table := model.NewTable(headers, rows[1:])
	logger.Debug("Loaded sheet %q: %d rows x %d columns", sheet, table.RowCount(), table.ColumnCount())
	return table, nil
}

func (w *Workbook) hasSheet(name string) bool {
	for _, s := range w.sheets {
		if s == name {
			return true
		}
	}
	return false
}

func trimTrailingEmpty(rows [][]model.Value) [][]model.Value {
	end := len(rows)
	for end > 0 && len(rows[end-1]) == 0 {
		end--
	}
	return rows[:end]
}
