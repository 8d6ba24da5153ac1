package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	assert.NotNil(t, l)
	assert.NotNil(t, l.vars)
	assert.Empty(t, l.prefix)
}

func TestDefaultLoader_Load(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := `# Comment
FOO=bar
BAZ="quoted value"
EMPTY=
SINGLE_QUOTE='single'
export EXPORTED=yes
`
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0644))

	l := NewLoader()
	require.NoError(t, l.Load(envFile))
	assert.True(t, l.loaded)
	assert.Equal(t, "bar", l.vars["FOO"])
	assert.Equal(t, "quoted value", l.vars["BAZ"])
	assert.Equal(t, "", l.vars["EMPTY"])
	assert.Equal(t, "single", l.vars["SINGLE_QUOTE"])
	assert.Equal(t, "yes", l.vars["EXPORTED"])
}

func TestDefaultLoader_Load_FileNotFound(t *testing.T) {
	l := NewLoader()
	err := l.Load("/nonexistent/.env")
	assert.Error(t, err)
}

func TestDefaultLoader_Get(t *testing.T) {
	l := NewLoader()
	l.vars["TRUTHEXT_TEST_KEY"] = "from_file"

	// File value
	assert.Equal(t, "from_file", l.Get("TRUTHEXT_TEST_KEY"))

	// OS env takes precedence
	t.Setenv("TRUTHEXT_TEST_KEY_ENV", "from_os")
	assert.Equal(t, "from_os", l.Get("TRUTHEXT_TEST_KEY_ENV"))

	// Missing key
	assert.Equal(t, "", l.Get("NONEXISTENT"))
}

// TestPrefixedLoader_Get verifies keys resolve with the prefix.
func TestPrefixedLoader_Get(t *testing.T) {
	l := NewPrefixedLoader("TRUTHEXT_")
	l.vars["TRUTHEXT_LOCALE"] = "fr-FR"
	assert.Equal(t, "fr-FR", l.Get("LOCALE"))
	assert.Equal(t, "", l.Get("TRUTHEXT_LOCALE"))

	t.Setenv("TRUTHEXT_LOG_LEVEL", "debug")
	assert.Equal(t, "debug", l.Get("LOG_LEVEL"))
}

func TestDefaultLoader_GetRequired(t *testing.T) {
	l := NewPrefixedLoader("TRUTHEXT_")
	l.vars["TRUTHEXT_EXISTS"] = "value"

	v, err := l.GetRequired("EXISTS")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = l.GetRequired("MISSING")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TRUTHEXT_MISSING")
}

func TestDefaultLoader_GetWithDefault(t *testing.T) {
	l := NewLoader()
	l.vars["EXISTS"] = "value"

	assert.Equal(t, "value", l.GetWithDefault("EXISTS", "default"))
	assert.Equal(t, "default", l.GetWithDefault("MISSING", "default"))
}

func TestDefaultLoader_GetInt(t *testing.T) {
	l := NewLoader()
	l.vars["N"] = "42"
	l.vars["BAD"] = "forty"

	n, err := l.GetInt("N", 1)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = l.GetInt("MISSING", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = l.GetInt("BAD", 7)
	assert.Error(t, err)
	assert.Equal(t, 7, n)
}

func TestDefaultLoader_GetBool(t *testing.T) {
	l := NewLoader()
	l.vars["ON"] = "true"
	l.vars["BAD"] = "maybe"

	b, err := l.GetBool("ON", false)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = l.GetBool("MISSING", true)
	require.NoError(t, err)
	assert.True(t, b)

	_, err = l.GetBool("BAD", false)
	assert.Error(t, err)
}

func TestDefaultLoader_Set(t *testing.T) {
	l := NewLoader()
	require.NoError(t, l.Set("TRUTHEXT_MY_VAR", "my_value"))
	defer os.Unsetenv("TRUTHEXT_MY_VAR")
	assert.Equal(t, "my_value", l.Get("TRUTHEXT_MY_VAR"))
}

func TestDefaultLoader_All(t *testing.T) {
	l := NewLoader()
	l.vars["A"] = "1"
	l.vars["B"] = "2"

	all := l.All()
	assert.Equal(t, "1", all["A"])
	assert.Equal(t, "2", all["B"])

	// Verify it's a copy
	all["C"] = "3"
	assert.Empty(t, l.vars["C"])
}
