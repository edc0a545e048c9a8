package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/staticconfig/namespace"
)

func TestSchemaFromMap_CopiesDefaultsEveryTime(t *testing.T) {
	// Arrange
	defaults := map[string]any{
		"name":  "app",
		"db":    map[string]any{"dsn": "sqlite://", "pool": 4},
		"hosts": []any{"a", "b"},
	}
	l := NewLoader(SchemaFromMap(defaults))

	// Act
	first, err := l.Defaults()
	require.NoError(t, err)
	first.MustSection("db").MustSet("pool", 100)
	hosts, _ := first.Lookup("hosts")
	hosts.([]any)[0] = "changed"

	second, err := l.Defaults()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, defaults, second.ToMap())
	assert.Equal(t, "a", defaults["hosts"].([]any)[0])
	_, err = second.Section("db")
	assert.NoError(t, err, "nested maps become sections")
}

func TestSchemaFromMap_InvalidKey(t *testing.T) {
	_, err := NewLoader(SchemaFromMap(map[string]any{"bad-key": 1})).Defaults()

	assert.ErrorIs(t, err, namespace.ErrKeyFormat)
}

func TestSchemaFromFile(t *testing.T) {
	p := writeFile(t, "defaults.json", `{"a": 1, "server": {"port": 8080}}`)

	schema, err := SchemaFromFile(p)
	require.NoError(t, err)
	cfg, err := NewLoader(schema).FromMap(map[string]any{"server": map[string]any{"port": 9000}})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "server": map[string]any{"port": 9000}}, cfg.ToMap())
}

func TestSchemaFromFile_Errors(t *testing.T) {
	_, err := SchemaFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "error reading schema file")

	p := writeFile(t, "defaults.json", `"just a string"`)
	_, err = SchemaFromFile(p)
	assert.ErrorIs(t, err, namespace.ErrNotObject)
}

func TestExtend_AddsAndOverridesDefaults(t *testing.T) {
	// Arrange
	base := SchemaFromMap(map[string]any{"a": 1, "server": map[string]any{"port": 80}})
	extra := func(root *namespace.Namespace) error {
		root.MustDeclare("server").MustSet("port", 8080).MustSet("tls", false)
		return root.Set("debug", true)
	}

	// Act
	cfg, err := NewLoader(Extend(base, nil, extra)).Defaults()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a":      1,
		"debug":  true,
		"server": map[string]any{"port": 8080, "tls": false},
	}, cfg.ToMap())
}

func TestExtend_StopsOnError(t *testing.T) {
	called := false
	failing := func(*namespace.Namespace) error { return assert.AnError }
	after := func(*namespace.Namespace) error {
		called = true
		return nil
	}

	_, err := NewLoader(Extend(failing, after)).Defaults()

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}
