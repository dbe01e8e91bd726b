// Package classify decides which heuristic analyses apply to a sheet.
package classify

import (
	"strings"

	"workbook-recon/internal/config"

	"golang.org/x/text/cases"
)

// Category is the kind of records a sheet is assumed to hold
type Category string

const (
	Document Category = config.CategoryDocument
	Contact  Category = config.CategoryContact
)

// Rule assigns Category to sheets whose name contains Keyword
type Rule struct {
	Keyword  string
	Category Category
}

// Classifier evaluates an ordered rule list against sheet names
type Classifier struct {
	rules []Rule
}

// New creates a Classifier. Keywords are case-folded once here.
func New(rules []Rule) *Classifier {
	folder := cases.Fold()
	folded := make([]Rule, 0, len(rules))
	for _, r := range rules {
		folded = append(folded, Rule{Keyword: folder.String(r.Keyword), Category: r.Category})
	}
	return &Classifier{rules: folded}
}

// FromConfig builds a Classifier from configured rules
func FromConfig(cfg *config.Config) *Classifier {
	rules := make([]Rule, 0, len(cfg.Analysis.Rules))
	for _, r := range cfg.Analysis.Rules {
		rules = append(rules, Rule{Keyword: r.Keyword, Category: Category(r.Category)})
	}
	return New(rules)
}

// Classify returns the distinct categories whose keywords occur in the
// case-folded sheet name, in the order their first rule matched.
func (c *Classifier) Classify(sheetName string) []Category {
	name := cases.Fold().String(sheetName)

	var matched []Category
	seen := make(map[Category]bool)
	for _, r := range c.rules {
		if seen[r.Category] {
			continue
		}
		if strings.Contains(name, r.Keyword) {
			seen[r.Category] = true
			matched = append(matched, r.Category)
		}
	}
	return matched
}

// Has reports whether sheetName falls into category
func (c *Classifier) Has(sheetName string, category Category) bool {
	for _, got := range c.Classify(sheetName) {
		if got == category {
			return true
		}
	}
	return false
}
