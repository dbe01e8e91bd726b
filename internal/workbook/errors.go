package workbook

import (
	"errors"
	"fmt"
)

// ErrOpenWorkbook indicates the file could not be opened as a workbook
var ErrOpenWorkbook = errors.New("cannot open workbook")

// ErrSheetNotFound indicates the requested sheet is not in the workbook
var ErrSheetNotFound = errors.New("sheet not found")

// SheetError represents a failure while loading a single sheet
type SheetError struct {
	Sheet string
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError
func NewSheetError(sheet string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Err:   err,
	}
}
