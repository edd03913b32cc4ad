package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/declschema"
)

const testCatalog = `
types:
  - name: declschema.project.ProjectTopLevelReceiver
  - name: accessors.dm.RootProjectAccessor
    members:
      - {name: getApp, kind: function, type: accessors.dm.AppProjectAccessor}
  - name: accessors.dm.AppProjectAccessor
    members:
      - {name: getPath, kind: function, type: string}
`

func writeCatalog(t *testing.T, text string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "types.yaml")
	require.NoError(t, os.WriteFile(p, []byte(text), 0o600))
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSchemaCommand_JSON(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "schema", "--catalog", path, "-o", "json")
	require.NoError(t, err)

	var doc declschema.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.NotEmpty(t, doc.Types)
	top := doc.Types[0]
	assert.Equal(t, "declschema.project.ProjectTopLevelReceiver", top.Name)
	require.Len(t, top.Properties, 1)
	assert.Equal(t, declschema.PropertyDoc{Name: "projects", Type: "accessors.dm.RootProjectAccessor", Mode: "read-only", HasDefault: true}, top.Properties[0])
}

func TestSchemaCommand_YAMLDefault(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "schema", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "topLevel: declschema.project.ProjectTopLevelReceiver")
	assert.Contains(t, out, "name: app")
}

func TestDiscoverCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog)
	out, _, err := run(t, "discover", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"accessors.dm.RootProjectAccessor", "accessors.dm.AppProjectAccessor"}, strings.Fields(out))

	_, _, err = run(t, "discover", "-c", path, "--from", "missing.Type")
	assert.Error(t, err)
}

func TestLintCommand(t *testing.T) {
	path := writeCatalog(t, testCatalog+"  - name: accessors.dm.StrayProjectAccessor\n")
	out, _, err := run(t, "lint", "-c", path)
	require.Error(t, err)
	assert.Contains(t, out, "empty_accessor\taccessors.dm.StrayProjectAccessor")

	_, _, err = run(t, "schema", "-c", path, "--strict")
	assert.Error(t, err)
	_, _, err = run(t, "schema", "-c", path)
	assert.NoError(t, err)
}

func TestVerboseLogging(t *testing.T) {
	path := writeCatalog(t, "types:\n  - name: declschema.project.ProjectTopLevelReceiver\n")
	_, stderr, err := run(t, "schema", "-c", path, "-v", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "typesafe project accessors disabled")
}

func TestMissingCatalogFlag(t *testing.T) {
	_, _, err := run(t, "schema")
	assert.Error(t, err)
}
