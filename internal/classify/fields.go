package classify

import (
	"regexp"
	"strings"

	"workbook-recon/internal/model"
)

// FieldKind is the detected meaning of a contact column
type FieldKind string

const (
	FieldEmail   FieldKind = "email"
	FieldPhone   FieldKind = "phone"
	FieldAddress FieldKind = "address"
	FieldName    FieldKind = "name"
	FieldCity    FieldKind = "city"
	FieldState   FieldKind = "state"
	FieldZip     FieldKind = "zip"
	FieldUnknown FieldKind = ""
)

// minFieldScore is the lowest header score accepted as a match
const minFieldScore = 80

// fieldPatterns are checked in order; the first kind reaching minFieldScore wins
var fieldPatterns = []struct {
	kind     FieldKind
	patterns []string
}{
	{FieldEmail, []string{"email", "e-mail", "email address", "email_address", "emailaddress", "mail", "e mail", "contact email"}},
	{FieldPhone, []string{"phone", "telephone", "mobile", "cell", "contact number", "phone_number", "phone number", "tel"}},
	{FieldAddress, []string{"address", "street", "location", "street address", "mailing address", "physical address"}},
	{FieldName, []string{"name", "full name", "contact name", "person", "individual"}},
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9]`)
	emailValue = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneValue = regexp.MustCompile(`\d{3}[^\d]?\d{3}[^\d]?\d{4}`)
	zipValue   = regexp.MustCompile(`\d{5}(-\d{4})?`)
)

// DetectedField is a column recognized as contact data
type DetectedField struct {
	Header string
	Kind   FieldKind
}

// NormalizeHeader lower-cases a header and strips everything but letters and digits
func NormalizeHeader(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

// ScoreHeader rates how well a header matches a pattern:
// 100 for equality, 90 if the header contains the pattern, 80 the other way round.
func ScoreHeader(header, pattern string) int {
	col := NormalizeHeader(header)
	pat := NormalizeHeader(pattern)
	switch {
	case col == "" || pat == "":
		return 0
	case col == pat:
		return 100
	case strings.Contains(col, pat):
		return 90
	case strings.Contains(pat, col):
		return 80
	default:
		return 0
	}
}

// DetectFieldKind guesses a column's meaning from its header, falling back
// to its sample values.
func DetectFieldKind(header string, samples []string) FieldKind {
	for _, group := range fieldPatterns {
		for _, p := range group.patterns {
			if ScoreHeader(header, p) >= minFieldScore {
				return group.kind
			}
		}
	}

	name := NormalizeHeader(header)
	switch {
	case name == "city":
		return FieldCity
	case name == "state":
		return FieldState
	case strings.Contains(name, "zip"):
		return FieldZip
	}

	for _, check := range []struct {
		re   *regexp.Regexp
		kind FieldKind
	}{
		{emailValue, FieldEmail},
		{phoneValue, FieldPhone},
		{zipValue, FieldZip},
	} {
		for _, s := range samples {
			if check.re.MatchString(s) {
				return check.kind
			}
		}
	}

	return FieldUnknown
}

// DetectContactFields returns the columns of t that look like contact data.
// Up to sampleRows rows feed the value-based fallback.
func DetectContactFields(t *model.Table, sampleRows int) []DetectedField {
	var fields []DetectedField
	for col, header := range t.Headers {
		// generated headers carry no meaning
		if strings.HasPrefix(header, model.UnnamedPrefix) {
			continue
		}
		var samples []string
		for row := 0; row < t.RowCount() && row < sampleRows; row++ {
			v := t.Cell(row, col)
			if v.IsNull() {
				continue
			}
			samples = append(samples, v.String())
		}
		if kind := DetectFieldKind(header, samples); kind != FieldUnknown {
			fields = append(fields, DetectedField{Header: header, Kind: kind})
		}
	}
	return fields
}
