// Package inspector drives one workbook report run: open the workbook, walk
// its sheets in order, and render each sheet's block. A failing sheet is
// reported inline and never stops the run.
package inspector

import (
	"fmt"
	"io"

	"workbook-recon/internal/config"
	"workbook-recon/internal/logger"
	"workbook-recon/internal/model"
	"workbook-recon/internal/report"
	"workbook-recon/internal/ui"
	"workbook-recon/internal/workbook"

	"golang.org/x/text/cases"
)

// Source is a workbook whose sheets can be loaded one at a time
type Source interface {
	SheetNames() []string
	LoadTable(sheet string) (*model.Table, error)
}

// Inspector renders workbook reports to an output stream
type Inspector struct {
	cfg      *config.Config
	out      io.Writer
	progress func(total int) ui.Progress
}

// New creates an Inspector writing its report to out
func New(cfg *config.Config, out io.Writer) *Inspector {
	return &Inspector{
		cfg: cfg,
		out: out,
		progress: func(total int) ui.Progress {
			return ui.ForSheets(cfg.UI.Progress, total)
		},
	}
}

// Analyze opens the workbook at path and reports on every sheet.
// Only a failure to open the workbook is returned; per-sheet failures
// appear in the report.
func (i *Inspector) Analyze(path string) (*model.Summary, error) {
	w := report.NewWriter(i.out, i.cfg)
	w.Preamble(path)

	wb, err := workbook.Open(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	summary := i.run(w, wb, wb.Path())
	return summary, w.Err()
}

// Run reports on every sheet of src
func (i *Inspector) Run(src Source) (*model.Summary, error) {
	w := report.NewWriter(i.out, i.cfg)
	summary := i.run(w, src, "")
	return summary, w.Err()
}

func (i *Inspector) run(w *report.Writer, src Source, path string) *model.Summary {
	names := src.SheetNames()
	w.SheetList(names)

	selected := i.selectSheets(names)
	summary := model.NewSummary(names)

	bar := i.progress(len(selected))
	for _, name := range selected {
		bar.Describe(name)

		result := inspectSheet(src, name)
		if !result.OK() {
			logger.Debug("Sheet %q failed: %v", name, result.Err)
			logger.LogSheetError(path, name, result.Err)
		}
		w.Sheet(result)
		summary.Record(result)

		bar.Increment()
	}
	bar.Finish()

	w.Complete()
	logger.Debug("Analyzed %d sheets (%d empty, %d failed)", summary.Analyzed, summary.Empty, len(summary.Failed))
	return summary
}

// inspectSheet loads one sheet, turning both errors and panics into a failed result
func inspectSheet(src Source, name string) (result model.SheetResult) {
	result.Name = name
	defer func() {
		if r := recover(); r != nil {
			result.Table = nil
			result.Err = fmt.Errorf("%v", r)
		}
	}()

	table, err := src.LoadTable(name)
	if err != nil {
		result.Err = err
		return result
	}
	if table == nil {
		table = model.NewTable(nil, nil)
	}
	result.Table = table
	return result
}

// selectSheets applies the configured sheet filter, keeping workbook order
func (i *Inspector) selectSheets(names []string) []string {
	filter := i.cfg.Analysis.Sheets
	if len(filter) == 0 {
		return names
	}

	folder := cases.Fold()
	wanted := make(map[string]bool, len(filter))
	for _, s := range filter {
		wanted[folder.String(s)] = false
	}

	var selected []string
	for _, name := range names {
		key := folder.String(name)
		if _, ok := wanted[key]; ok {
			wanted[key] = true
			selected = append(selected, name)
		}
	}

	for _, s := range filter {
		if !wanted[folder.String(s)] {
			logger.Warn("Sheet %q not found in workbook", s)
		}
	}
	return selected
}
