package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// Writes a small case-management workbook for manual runs and the system test.
// Usage: go run scripts/make_sample.go [output.xlsx]
func main() {
	filename := "output/sample-cases.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f := excelize.NewFile()
	defer f.Close()

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		log.Fatal(err)
	}

	sheets := []struct {
		name string
		rows [][]interface{}
	}{
		{"PM INFO", [][]interface{}{
			{"Property Manager", "Email", "Phone", "City"},
			{"Oak Street Mgmt", "leasing@oakstreet.example", "555-201-3344", "Oakland"},
			{"Harbor Rentals", "office@harbor.example", "555-410-9821", "Alameda"},
		}},
		{"Complaint", [][]interface{}{
			{"File ID", "Case #", "Filed", "Amount"},
			{1001, "UD-24-001", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), 2450.5},
			{1002, "UD-24-002", time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC), 1800},
			{1002, "UD-24-003", nil, nil},
		}},
		{"Summons", [][]interface{}{
			{"File ID", "Served", "Notes"},
			{1001, true, "Personal service on tenant at the front door of the unit"},
			{1002, false},
		}},
		{"Blank", nil},
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				log.Fatal(err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			log.Fatal(err)
		}

		for r, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+1)
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				log.Fatal(err)
			}
		}
	}

	if err := f.SetCellStyle("Complaint", "C2", "C4", dateStyle); err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		log.Fatal(err)
	}
	if err := f.SaveAs(filename); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %s (%d sheets)\n", filename, len(sheets))
}

