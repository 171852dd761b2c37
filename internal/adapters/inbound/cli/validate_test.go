package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/localelint/internal/adapters/inbound/cli"
	"github.com/abdidvp/localelint/internal/domain"
)

func fixtureDir(name string) string {
	abs, _ := filepath.Abs(filepath.Join("..", "..", "..", "..", "testdata", name))
	return abs
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidateCommand_CleanProjectPasses(t *testing.T) {
	out, err := runCmd(t, "validate", "--path", fixtureDir("project-clean"))
	require.NoError(t, err)
	assert.Contains(t, out, "en-US.json")
	assert.Contains(t, out, "no violations")
}

func TestValidateCommand_FailingProjectExitsNonZero(t *testing.T) {
	out, err := runCmd(t, "validate", "--path", fixtureDir("project"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, out, "de-DE.json")
}

func TestValidateCommand_JSONReport(t *testing.T) {
	out, err := runCmd(t, "validate", "--path", fixtureDir("project"), "--json")
	require.Error(t, err, "JSON output still exits non-zero on violations")

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report, 3)

	byFile := make(map[string]domain.FileResult)
	for _, res := range report {
		byFile[res.File] = res
	}

	assert.True(t, byFile["locales/en-US.json"].Success())

	deDE := byFile["locales/de-DE.json"]
	assert.False(t, deDE.Success())
	assert.Contains(t, deDE.Messages(), `Required metadata field "name" is missing`)
	assert.Contains(t, deDE.Messages(), `Required metadata field "fallback" is missing`)
	assert.Contains(t, deDE.Messages(), "lastUpdated must be in ISO8601 format (YYYY-MM-DDThh:mm:ssZ)")
	assert.Contains(t, deDE.Messages(), `Value for key "unreadCount" must be a string`)

	broken := byFile["locales/broken.json"]
	require.Len(t, broken.Violations, 1, "syntax failure short-circuits the other rules")
}

func TestValidateCommand_ExplicitFiles(t *testing.T) {
	out, err := runCmd(t, "validate",
		"--path", fixtureDir("project"),
		"--json",
		"locales/en-US.json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report, 1)
	assert.True(t, report[0].Success())
}

func TestValidateCommand_MissingFileReportedNotFatal(t *testing.T) {
	out, err := runCmd(t, "validate",
		"--path", fixtureDir("project"),
		"--json",
		"locales/nope.json", "locales/en-US.json")
	require.Error(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report, 2)
	assert.Contains(t, report[0].Messages()[0], "File reading error:")
	assert.True(t, report[1].Success(), "sibling files still validate")
}

func TestValidateCommand_ConfigEnablesPlaceholderRule(t *testing.T) {
	out, err := runCmd(t, "validate", "--path", fixtureDir("project-placeholders"), "--json")
	require.Error(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report, 1)
	assert.Contains(t, report[0].Messages(),
		`Value for key "inboxSummary" mixes {placeholder} and [placeholder] styles`)
}

func TestValidateCommand_NoCandidatesIsSuccess(t *testing.T) {
	out, err := runCmd(t, "validate", "--path", t.TempDir(), "--json")
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report, "empty candidate set yields an empty report and success")
}
