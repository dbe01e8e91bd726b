// Package report renders the plain-text workbook report.
package report

import (
	"strings"
	"unicode/utf8"

	"workbook-recon/internal/model"
)

// Ellipsis marks a truncated value
const Ellipsis = "..."

// Center pads s with fill on both sides to width characters. When the
// padding is odd the extra character goes right, unless width is odd too.
// Strings at least width long are returned unchanged.
func Center(s string, width int, fill rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := width - n
	left := pad/2 + (pad & width & 1)
	f := string(fill)
	return strings.Repeat(f, left) + s + strings.Repeat(f, pad-left)
}

// Banner returns the centered title line that opens a sheet block
func Banner(sheet string, width int) string {
	return Center("='SHEET: "+sheet+"'=", width, '=')
}

// Truncate cuts s to max characters followed by Ellipsis when it is longer
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + Ellipsis
}

// SampleValue renders a cell for the sample block. Only text values are truncated.
func SampleValue(v model.Value, max int) string {
	if v.Kind() == model.KindString {
		return Truncate(v.Text(), max)
	}
	return v.String()
}
