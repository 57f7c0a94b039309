package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWorkloadYAML = `
name: ledger
cells:
  - name: alice
    value: 100
  - name: bob
    value: 200
stages:
  - name: settle
    steps:
      - op: transfer
        from: alice
        to: bob
        amount: 50
  - name: verify
    depends_on:
      - settle
    steps:
      - op: check
        cell: bob
        expect: 250
`

func writeWorkload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewRootCommand(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "tagcell", root.Use)
	assert.Contains(t, root.Short, "workloads")
}

func TestRootCommandHelp(t *testing.T) {
	root := NewRootCommand()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tagcell")
	assert.Contains(t, buf.String(), "run")
	assert.Contains(t, buf.String(), "validate")
}

func TestValidateCommand(t *testing.T) {
	path := writeWorkload(t, testWorkloadYAML)

	root := NewRootCommand()
	root.SetArgs([]string{"validate", path})
	require.NoError(t, root.Execute())
}

func TestValidateCommandRejectsBadWorkload(t *testing.T) {
	path := writeWorkload(t, `
name: broken
cells:
  - name: x
    value: 1
stages:
  - name: s
    steps:
      - op: divide
        cell: x
`)

	root := NewRootCommand()
	root.SetArgs([]string{"validate", path})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown op")
}

func TestValidateCommandMissingFile(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"validate", filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, root.Execute())
}

func TestRunCommand(t *testing.T) {
	path := writeWorkload(t, testWorkloadYAML)

	root := NewRootCommand()
	root.SetArgs([]string{"run", path})
	require.NoError(t, root.Execute())
}

func TestRunCommandVerbose(t *testing.T) {
	path := writeWorkload(t, testWorkloadYAML)

	root := NewRootCommand()
	root.SetArgs([]string{"run", "--verbose", path})
	require.NoError(t, root.Execute())
}

func TestRunCommandFailedCheck(t *testing.T) {
	path := writeWorkload(t, `
name: bad
cells:
  - name: x
    value: 1
stages:
  - name: verify
    steps:
      - op: check
        cell: x
        expect: 99
`)

	root := NewRootCommand()
	root.SetArgs([]string{"run", path})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "check failed")
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand()
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
}
