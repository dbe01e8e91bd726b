package model

// SheetResult is the outcome of inspecting one sheet.
// Exactly one of Table and Err is set.
type SheetResult struct {
	Name  string
	Table *Table
	Err   error
}

// OK reports whether the sheet was loaded successfully
func (r SheetResult) OK() bool { return r.Err == nil }

// Summary aggregates the per-sheet results of one run
type Summary struct {
	SheetNames []string
	Analyzed   int
	Empty      int
	Failed     []string
}

// NewSummary creates an empty summary for the given sheets
func NewSummary(sheetNames []string) *Summary {
	return &Summary{SheetNames: sheetNames}
}

// Record folds one sheet result into the summary
func (s *Summary) Record(r SheetResult) {
	switch {
	case !r.OK():
		s.Failed = append(s.Failed, r.Name)
	case r.Table.IsEmpty():
		s.Empty++
	default:
		s.Analyzed++
	}
}
