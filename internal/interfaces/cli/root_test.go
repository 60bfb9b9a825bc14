package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
log:
  level: error
calendar:
  tribunals:
    - id: TJSP
registry:
  enabled: false
redis:
  enabled: false
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := writeFile(t, "prazo.yaml", testConfig)
	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", cfg}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestCLI_DeadlineCalc(t *testing.T) {
	out, err := runCLI(t,
		"deadline", "calc",
		"--disclosure", "2025-01-06",
		"--days", "15",
		"--tribunal", "TJSP",
		"--at", "2025-01-06")
	require.NoError(t, err)
	assert.Contains(t, out, "Due:          29/01/2025")
	assert.Contains(t, out, "Status:       ON_TRACK")
}

func TestCLI_DeadlineCalc_JSON(t *testing.T) {
	out, err := runCLI(t,
		"deadline", "calc",
		"-o", "json",
		"--disclosure", "2025-01-06",
		"--days", "15",
		"--tribunal", "TJSP",
		"--at", "2025-01-29")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "2025-01-29", decoded["due_date"])
	assert.Equal(t, "DUE_TODAY", decoded["status"])
}

func TestCLI_CalendarHolidays(t *testing.T) {
	out, err := runCLI(t, "calendar", "holidays", "--tribunal", "TJSP", "--year", "2025")
	require.NoError(t, err)
	assert.Contains(t, out, "25/12/2025")
	assert.Contains(t, out, "Carnaval")
	assert.Contains(t, out, "12 holidays")
}

func TestCLI_MatrixBuild(t *testing.T) {
	movements := writeFile(t, "movements.json", `[
		{"date": "2025-01-06", "raw_text": "Apresentou contestação"},
		{"date": "2025-01-07", "raw_text": "Mero despacho de expediente"}
	]`)
	cfg := writeFile(t, "prazo.yaml", testConfig)
	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{
		"--config", cfg,
		"matrix", "build",
		"--file", movements,
		"--area", "civil",
		"--tribunal", "TJSP",
		"--at", "2025-01-27",
		"--markdown",
	})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "contestação")
	assert.Contains(t, buf.String(), "29/01/2025")
}

func TestCLI_ChronologyBuild(t *testing.T) {
	caseFile := writeFile(t, "case.json", `{
		"movements": [{"date": "2025-01-06", "description": "Citação da parte ré"}],
		"decisions": [{"date": "2025-02-20", "description": "Sentença de procedência"}]
	}`)
	cfg := writeFile(t, "prazo.yaml", testConfig)
	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{
		"--config", cfg,
		"chronology", "build",
		"--file", caseFile,
	})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "summons")
	assert.Contains(t, buf.String(), "decision")
}

func TestCLI_MigrateRequiresRegistry(t *testing.T) {
	_, err := runCLI(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registry is disabled")
}

//Personal.AI order the ending
