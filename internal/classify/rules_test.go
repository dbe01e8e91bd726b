package classify

import (
	"testing"

	"workbook-recon/internal/config"
	"workbook-recon/internal/model"

	"github.com/stretchr/testify/assert"
)

func defaultClassifier() *Classifier {
	return FromConfig(config.Default())
}

func TestClassifyDefaultRules(t *testing.T) {
	c := defaultClassifier()

	tests := []struct {
		sheet    string
		expected []Category
	}{
		{"Documents", []Category{Document}},
		{"ALIAS Summons", []Category{Document}},
		{"Aff of Serv", []Category{Document}},
		{"Staff List", []Category{Document}}, // "aff" is a plain substring match
		{"PM INFO", []Category{Contact}},
		{"Client List", []Category{Contact}},
		{"contacts", []Category{Contact}},
		{"Client Documents", []Category{Document, Contact}},
		{"Court 25", nil},
		{"ZOOM", nil},
		{"PMINFO", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.Classify(tt.sheet), "sheet %q", tt.sheet)
	}
}

func TestClassifyOrderFollowsRules(t *testing.T) {
	c := New([]Rule{
		{Keyword: "client", Category: Contact},
		{Keyword: "document", Category: Document},
	})

	assert.Equal(t, []Category{Contact, Document}, c.Classify("Client Documents"))
}

func TestClassifyCaseFolding(t *testing.T) {
	c := New([]Rule{{Keyword: "STRASSE", Category: Contact}})

	assert.True(t, c.Has("Straße Kontakte", Contact))
	assert.False(t, c.Has("Straße Kontakte", Document))
}

func TestClassifyNoRules(t *testing.T) {
	c := New(nil)
	assert.Empty(t, c.Classify("Documents"))
}

func TestScoreHeader(t *testing.T) {
	assert.Equal(t, 100, ScoreHeader("E-Mail", "email"))
	assert.Equal(t, 90, ScoreHeader("Primary Phone #", "phone"))
	assert.Equal(t, 80, ScoreHeader("Tel", "telephone"))
	assert.Equal(t, 0, ScoreHeader("Balance", "phone"))
	assert.Equal(t, 0, ScoreHeader("###", "phone"))
}

func TestDetectFieldKind(t *testing.T) {
	tests := []struct {
		header   string
		samples  []string
		expected FieldKind
	}{
		{"Email Address", nil, FieldEmail},
		{"Mobile", nil, FieldPhone},
		{"Mailing Address", nil, FieldEmail}, // email patterns are checked first and "mail" matches
		{"Street", nil, FieldAddress},
		{"Tenant Name", nil, FieldName},
		{"City", nil, FieldCity},
		{"State", nil, FieldState},
		{"Zip Code", nil, FieldZip},
		{"Notes", []string{"reach at jane@example.com"}, FieldUnknown},
		{"Notes", []string{"jane@example.com"}, FieldEmail},
		{"Notes", []string{"555-123-4567"}, FieldPhone},
		{"Notes", []string{"90210"}, FieldZip},
		{"Amount", []string{"12.5"}, FieldUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectFieldKind(tt.header, tt.samples), "header %q", tt.header)
	}
}

func TestDetectContactFields(t *testing.T) {
	table := model.NewTable(
		[]string{"Client", "Phone", "Unnamed: 2", "Balance", "Reach"},
		[][]model.Value{
			{model.String("Acme LLC"), model.String("555-123-4567"), model.String("x"), model.Number(10), model.Null()},
			{model.String("Bolt Inc"), model.Null(), model.Null(), model.Number(20), model.String("ops@bolt.io")},
		},
	)

	fields := DetectContactFields(table, 20)

	assert.Equal(t, []DetectedField{
		{Header: "Phone", Kind: FieldPhone},
		{Header: "Reach", Kind: FieldEmail},
	}, fields)
}
