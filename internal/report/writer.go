package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"workbook-recon/internal/classify"
	"workbook-recon/internal/config"
	"workbook-recon/internal/model"
	"workbook-recon/internal/workbook"
)

// contactSampleRows bounds the rows inspected when guessing contact fields from values
const contactSampleRows = 20

// Writer renders report sections to an output stream.
// The first write error is kept and reported by Err; later writes are skipped.
type Writer struct {
	out        io.Writer
	cfg        config.Config
	classifier *classify.Classifier
	err        error
}

// NewWriter creates a Writer using the report and analysis settings of cfg
func NewWriter(out io.Writer, cfg *config.Config) *Writer {
	return &Writer{
		out:        out,
		cfg:        *cfg,
		classifier: classify.FromConfig(cfg),
	}
}

// Err returns the first error hit while writing
func (w *Writer) Err() error { return w.err }

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

func (w *Writer) println(s string) {
	w.printf("%s\n", s)
}

// Preamble opens the report for the file at path
func (w *Writer) Preamble(path string) {
	w.printf("Analyzing Excel file: %s\n\n", path)
}

// SheetList reports the sheet count and names in workbook order
func (w *Writer) SheetList(names []string) {
	w.printf("Workbook contains %d sheets: %s\n\n", len(names), strings.Join(names, ", "))
}

// Complete closes the report
func (w *Writer) Complete() {
	w.println("Analysis complete!")
}

// Sheet renders the block for one sheet result: the banner, then either the
// error line, the empty-sheet notice or the full analysis.
func (w *Writer) Sheet(r model.SheetResult) {
	w.println(Banner(r.Name, w.cfg.Report.BannerWidth))

	if !r.OK() {
		w.printf("Error analyzing sheet '%s': %s\n\n", r.Name, errorMessage(r.Err))
		return
	}

	t := r.Table
	if t.IsEmpty() {
		w.println("Sheet is empty")
		return
	}

	w.printf("Rows: %d, Columns: %d\n", t.RowCount(), t.ColumnCount())
	w.headers(t)
	w.sample(t)
	w.nonNull(t)

	if w.classifier.Has(r.Name, classify.Document) {
		w.documentAnalysis(t)
	}
	if w.classifier.Has(r.Name, classify.Contact) {
		w.contactAnalysis(t)
	}

	w.printf("\n\n")
}

func (w *Writer) headers(t *model.Table) {
	w.printf("\nColumn Headers:\n")
	for i, h := range t.Headers {
		w.printf("  %d: %s\n", i+1, h)
	}
}

func (w *Writer) sample(t *model.Table) {
	limit := w.cfg.Report.SampleRows
	if t.RowCount() == 0 || limit == 0 {
		return
	}

	w.printf("\nSample Data (first %d rows):\n", limit)

	maxCols := w.cfg.Report.SampleColumns
	shown := t.ColumnCount()
	if shown > maxCols {
		shown = maxCols
	}

	for row := 0; row < t.RowCount() && row < limit; row++ {
		var b strings.Builder
		b.WriteString("  ")
		for col := 0; col < shown; col++ {
			fmt.Fprintf(&b, "%s: %s, ", t.Headers[col], SampleValue(t.Cell(row, col), w.cfg.Report.TruncateLength))
		}
		if extra := t.ColumnCount() - maxCols; extra > 0 {
			fmt.Fprintf(&b, "... (%d more columns)", extra)
		}
		w.println(b.String())
	}
}

func (w *Writer) nonNull(t *model.Table) {
	w.printf("\nNon-null value counts per column:\n")
	for col, count := range t.NonNullCounts() {
		if count > 0 {
			w.printf("  %s: %d\n", t.Headers[col], count)
		}
	}
}

func (w *Writer) documentAnalysis(t *model.Table) {
	w.printf("\n[DOCUMENT ANALYSIS]\n")
	w.printf("This sheet contains %d potential document records\n", t.RowCount())

	if col := t.ColumnIndexFold(w.cfg.Analysis.FileIDColumn); col >= 0 {
		w.printf("  Unique file IDs: %d\n", t.UniqueCount(col))
	}
}

func (w *Writer) contactAnalysis(t *model.Table) {
	w.printf("\n[CONTACT ANALYSIS]\n")
	w.printf("This sheet contains %d potential contact records\n", t.RowCount())

	if !w.cfg.Analysis.DetectContactFields {
		return
	}
	fields := classify.DetectContactFields(t, contactSampleRows)
	if len(fields) == 0 {
		return
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Header, f.Kind))
	}
	w.printf("  Detected fields: %s\n", strings.Join(parts, ", "))
}

// errorMessage strips the sheet wrapper; the error line already names the sheet
func errorMessage(err error) string {
	var se *workbook.SheetError
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return err.Error()
}
