package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/declschema/catalog"
	"github.com/reoring/declschema/model"
)

const yamlCatalog = `
types:
  - name: accessors.dm.RootProjectAccessor
    supertypes: [support.ProjectDependency]
    members:
      - name: getApp
        kind: function
        type: accessors.dm.AppProjectAccessor
  - name: support.ProjectDependency
---
types:
  - name: accessors.dm.AppProjectAccessor
    members:
      - {name: path, type: string}
`

const jsonCatalog = `{
  "types": [
    {"name": "accessors.dm.RootProjectAccessor", "members": [
      {"name": "getApp", "kind": "function", "type": "accessors.dm.AppProjectAccessor"}
    ]},
    {"name": "accessors.dm.AppProjectAccessor", "members": [
      {"name": "setName", "kind": "function", "params": ["string"]}
    ]}
  ]
}`

func TestDecodeYAML_MultiDocument(t *testing.T) {
	t.Parallel()

	c, err := catalog.DecodeYAML([]byte(yamlCatalog))
	require.NoError(t, err)
	require.Len(t, c.Types, 3)
	assert.Equal(t, "accessors.dm.AppProjectAccessor", c.Types[2].Name)
	assert.Equal(t, []string{"support.ProjectDependency"}, c.Types[0].Supertypes)
	assert.Equal(t, model.MemberDecl{Name: "getApp", Kind: "function", Type: "accessors.dm.AppProjectAccessor"}, c.Types[0].Members[0])

	idx, err := c.Index()
	require.NoError(t, err)
	app, err := idx.Load("accessors.dm.AppProjectAccessor")
	require.NoError(t, err)
	assert.Equal(t, model.String, app.Members[0].Type.Name)
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	c, err := catalog.DecodeJSON([]byte(jsonCatalog))
	require.NoError(t, err)
	require.Len(t, c.Types, 2)
	assert.Equal(t, []string{"string"}, c.Types[1].Members[0].Params)

	_, err = c.Index()
	require.NoError(t, err)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := catalog.DecodeYAML([]byte("types:\n  - name: a.A\n    bogus: 1\n"))
	assert.Error(t, err)
	_, err = catalog.DecodeJSON([]byte(`{"types":[{"name":"a.A","bogus":1}]}`))
	assert.Error(t, err)
	_, err = catalog.DecodeJSON([]byte(`{"types":[]} {"types":[{"name":"a.A"}]}`))
	assert.ErrorIs(t, err, catalog.ErrTrailingData)
	_, err = catalog.DecodeJSON([]byte(`{"types":[]} garbage`))
	assert.ErrorIs(t, err, catalog.ErrTrailingData)
	_, err = catalog.DecodeJSON([]byte("{\"types\":[]}\n\t "))
	assert.NoError(t, err)
	_, err = catalog.Decode(nil, "toml")
	assert.ErrorIs(t, err, catalog.ErrUnknownFormat)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yml := filepath.Join(dir, "types.yml")
	js := filepath.Join(dir, "types.JSON")
	txt := filepath.Join(dir, "types.txt")
	require.NoError(t, os.WriteFile(yml, []byte(yamlCatalog), 0o600))
	require.NoError(t, os.WriteFile(js, []byte(jsonCatalog), 0o600))
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o600))

	c, err := catalog.ReadFile(yml)
	require.NoError(t, err)
	assert.Len(t, c.Types, 3)

	c, err = catalog.ReadFile(js)
	require.NoError(t, err)
	assert.Len(t, c.Types, 2)

	_, err = catalog.ReadFile(txt)
	assert.ErrorIs(t, err, catalog.ErrUnknownFormat)
	_, err = catalog.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
