package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/abdidvp/localelint/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileResult_SuccessIffNoViolations(t *testing.T) {
	passing := domain.FileResult{File: "a.json"}
	assert.True(t, passing.Success())

	failing := domain.FileResult{File: "b.json", Violations: []domain.Violation{
		{Category: domain.CategorySchema, Message: "x"},
	}}
	assert.False(t, failing.Success())
}

func TestFileResult_MarshalSuccess(t *testing.T) {
	result := domain.FileResult{File: "locales/en-US.json"}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"file": "locales/en-US.json", "success": true}`, string(data))
}

func TestFileResult_MarshalFailure(t *testing.T) {
	result := domain.FileResult{File: "locales/de-DE.json", Violations: []domain.Violation{
		{Category: domain.CategorySchema, Message: `Required field "version" is missing`},
		{Category: domain.CategoryFormat, Message: "strings must be an object"},
	}}

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"file": "locales/de-DE.json",
		"errors": ["Required field \"version\" is missing", "strings must be an object"]
	}`, string(data))
}

func TestReport_JSONRoundTrip(t *testing.T) {
	original := domain.Report{
		{File: "locales/en-US.json"},
		{File: "locales/de-DE.json", Violations: []domain.Violation{
			{Category: domain.CategorySchema, Message: `Required field "metadata" is missing`},
			{Category: domain.CategoryFormat, Message: `Value for key "a" must be a string`},
		}},
		{File: "locales/fr-FR.json", Violations: []domain.Violation{
			{Category: domain.CategoryIO, Message: "File reading error: open: no such file"},
		}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded, len(original), "order and length preserved")
	for i := range original {
		assert.Equal(t, original[i].File, decoded[i].File)
		assert.Equal(t, original[i].Success(), decoded[i].Success())
		assert.Equal(t, original[i].Messages(), decoded[i].Messages())
	}
}

func TestReport_EmptyIsSuccess(t *testing.T) {
	report := domain.Report{}
	assert.True(t, report.Success())
	assert.Equal(t, 0, report.Failures())

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "empty report is distinct from a failing one")
}

func TestReport_Counts(t *testing.T) {
	report := domain.Report{
		{File: "a.json"},
		{File: "b.json", Violations: []domain.Violation{{Message: "x"}, {Message: "y"}}},
		{File: "c.json", Violations: []domain.Violation{{Message: "z"}}},
	}

	assert.False(t, report.Success())
	assert.Equal(t, 2, report.Failures())
	assert.Equal(t, 3, report.TotalViolations())
}
