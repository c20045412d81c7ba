package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/phsc/internal/diagnostics"
)

func TestParseOptionsYAML(t *testing.T) {
	src := `
bail: false
log_level: debug
color: never
reserved_words: [match, enum]
relative_imports: true
`
	opts, err := ParseOptions([]byte(src), "phsc.yaml")
	require.NoError(t, err)
	assert.False(t, opts.Bail)
	assert.Equal(t, "never", opts.Color)
	assert.Equal(t, []string{"match", "enum"}, opts.ReservedWords)
	assert.True(t, opts.RelativeImports)
	assert.Equal(t, RuntimeModuleName, opts.RuntimeModule, "unset keys keep defaults")

	lvl, err := opts.Level()
	require.NoError(t, err)
	assert.Equal(t, diagnostics.Debug, lvl)
}

func TestParseOptionsTOML(t *testing.T) {
	src := `
log_level = "warning"
runtime_module = "rt"
throw_helper = "raise"
`
	opts, err := ParseOptions([]byte(src), "phsc.toml")
	require.NoError(t, err)
	assert.True(t, opts.Bail)
	assert.Equal(t, "rt", opts.RuntimeModule)
	assert.Equal(t, "raise", opts.ThrowHelper)
	assert.Equal(t, "auto", opts.Color)
}

func TestParseOptionsRejects(t *testing.T) {
	cases := map[string]struct{ path, src string }{
		"format":  {"phsc.json", `{}`},
		"level":   {"phsc.yaml", "log_level: loud\n"},
		"color":   {"phsc.yaml", "color: rainbow\n"},
		"runtime": {"phsc.toml", "runtime_module = \"a::b\"\n"},
		"word":    {"phsc.yaml", "reserved_words: ['  ']\n"},
		"syntax":  {"phsc.yaml", "bail: [\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOptions([]byte(tc.src), tc.path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAndFindOptions(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "app")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := FindOptions(nested)
	require.NoError(t, err)
	if path != "" {
		// A stray options file above the temp dir would make the rest meaningless.
		t.Skipf("found unrelated options file %s", path)
	}

	file := filepath.Join(root, "phsc.toml")
	require.NoError(t, os.WriteFile(file, []byte("bail = false\n"), 0o644))

	path, err = FindOptions(nested)
	require.NoError(t, err)
	assert.Equal(t, file, path)

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.False(t, opts.Bail)

	_, err = LoadOptions(filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)
}
