package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwalls/impactboard/model"
)

var girls = model.Role{
	Name: "Girls",
	Fields: []model.Field{
		{Name: "Full Name", Type: "text", Required: true},
		{Name: "Age", Type: "number", Required: true},
		{Name: "Nickname", Type: "text", Required: false},
	},
}

func TestParseHeader(t *testing.T) {
	columns, err := ParseHeader("Full Name,Age\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Name", "Age"}, columns)
}

func TestParseHeaderTrimsTokens(t *testing.T) {
	columns, err := ParseHeader("  Full Name , Age \nSarah,15")
	require.NoError(t, err)
	assert.Equal(t, []string{"Full Name", "Age"}, columns)
}

func TestParseHeaderEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "\n", "   \nSarah,15"} {
		_, err := ParseHeader(raw)
		assert.ErrorAs(t, err, &model.EmptyImportFileError{}, "input %q", raw)
	}
}

func TestParseRowsSkipsBlankLines(t *testing.T) {
	rows := ParseRows("Full Name,Age\nSarah,15\n\nMaria,16\n")
	assert.Equal(t, [][]string{{"Sarah", "15"}, {"Maria", "16"}}, rows)
}

func TestParseRowsHeaderOnly(t *testing.T) {
	assert.Empty(t, ParseRows("Full Name,Age"))
	assert.Empty(t, ParseRows("Full Name,Age\n"))
}

func TestBuildMapping(t *testing.T) {
	mapping := BuildMapping(girls)
	assert.Equal(t, []FieldMapping{
		{Field: "Full Name"},
		{Field: "Age"},
		{Field: "Nickname"},
	}, mapping)
}

func TestSetMapping(t *testing.T) {
	mapping := BuildMapping(girls)
	mapping = SetMapping(mapping, "Age", "age_years")

	assert.Equal(t, "age_years", mapping[1].Column)
	assert.Empty(t, mapping[0].Column)
}

func TestIsMappingComplete(t *testing.T) {
	mapping := BuildMapping(girls)
	assert.False(t, IsMappingComplete(mapping, girls))

	mapping = SetMapping(mapping, "Full Name", "Full Name")
	assert.False(t, IsMappingComplete(mapping, girls))

	mapping = SetMapping(mapping, "Age", "Age")
	assert.True(t, IsMappingComplete(mapping, girls), "optional fields may stay unmapped")
}

func TestRunMapsColumnsOntoFields(t *testing.T) {
	columns := []string{"name", "age"}
	mapping := BuildMapping(girls)
	mapping = SetMapping(mapping, "Full Name", "name")
	mapping = SetMapping(mapping, "Age", "age")

	report := Run(girls, columns, mapping, [][]string{
		{"Sarah", "15"},
		{"Maria", "16"},
	})

	require.Empty(t, report.Errors)
	assert.Equal(t, []map[string]string{
		{"Full Name": "Sarah", "Age": "15"},
		{"Full Name": "Maria", "Age": "16"},
	}, report.Valid)
}

func TestRunReportsInvalidRows(t *testing.T) {
	columns := []string{"Full Name", "Age"}
	mapping := BuildMapping(girls)
	mapping = SetMapping(mapping, "Full Name", "Full Name")
	mapping = SetMapping(mapping, "Age", "Age")

	report := Run(girls, columns, mapping, [][]string{
		{"Sarah", "15"},
		{"Maria", ""},
		{"", "12"},
	})

	assert.Len(t, report.Valid, 1)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 2, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Reason, "Age")
	assert.Equal(t, 3, report.Errors[1].Row)
	assert.Contains(t, report.Errors[1].Reason, "Full Name")
}

func TestRunZeroRows(t *testing.T) {
	columns, err := ParseHeader("Full Name,Age")
	require.NoError(t, err)

	mapping := BuildMapping(girls)
	mapping = SetMapping(mapping, "Full Name", "Full Name")
	mapping = SetMapping(mapping, "Age", "Age")

	report := Run(girls, columns, mapping, nil)
	assert.Empty(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestRunIgnoresShortRows(t *testing.T) {
	columns := []string{"Full Name", "Age"}
	mapping := BuildMapping(girls)
	mapping = SetMapping(mapping, "Full Name", "Full Name")
	mapping = SetMapping(mapping, "Age", "Age")

	report := Run(girls, columns, mapping, [][]string{{"Sarah"}})
	assert.Empty(t, report.Valid)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Reason, "Age")
}
