package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulebook/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Parallel()

	data, err := (&i18n.MapAdapter{}).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileAdapter(t *testing.T) {
	t.Parallel()

	t.Run("picks parser from extension", func(t *testing.T) {
		t.Parallel()
		a := i18n.NewFileAdapter(nil, "testdata/messages.yaml")
		require.NotNil(t, a)

		data, err := a.Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, data, "en")
		assert.Contains(t, data, "fr")
	})

	t.Run("invalid construction", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, i18n.NewFileAdapter(nil, ""))
		assert.Nil(t, i18n.NewFileAdapter(nil, "testdata/README.txt"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFileAdapter(nil, "testdata/missing.yaml").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Parallel()

	data, err := i18n.NewDirectoryAdapter(nil, "testdata").Load(context.Background())
	require.NoError(t, err)

	// extra.json is read before messages.yaml, which overrides its "min" entry
	rules := data["en"]["rules"].(map[string]any)
	assert.Equal(t, "The :attribute must be at least %min.", rules["min"])
	assert.Equal(t, "Too large: :attribute.", rules["max"])
	assert.Equal(t, "The :attribute field is required.", rules["required"])
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"msgs/a.yaml":  {Data: []byte("en:\n  rules:\n    required: a\n")},
		"msgs/b.json":  {Data: []byte(`{"en":{"rules":{"email":"b"}}}`)},
		"msgs/c.txt":   {Data: []byte("ignored")},
		"msgs/sub/d.y": {Data: []byte("ignored")},
	}

	t.Run("parser per extension", func(t *testing.T) {
		t.Parallel()
		data, err := i18n.NewFSAdapter(nil, fsys, "msgs").Load(context.Background())
		require.NoError(t, err)
		rules := data["en"]["rules"].(map[string]any)
		assert.Equal(t, "a", rules["required"])
		assert.Equal(t, "b", rules["email"])
	})

	t.Run("fixed parser filters files", func(t *testing.T) {
		t.Parallel()
		data, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "msgs").Load(context.Background())
		require.NoError(t, err)
		rules := data["en"]["rules"].(map[string]any)
		assert.NotContains(t, rules, "email")
	})

	t.Run("no catalog files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(i18n.NewJSONParser(), fstest.MapFS{"x/a.yaml": {Data: []byte("en: {}")}}, "x").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoCatalogFiles)
	})

	t.Run("broken file fails the load", func(t *testing.T) {
		t.Parallel()
		broken := fstest.MapFS{"x/a.yaml": {Data: []byte("en: [")}}
		_, err := i18n.NewFSAdapter(nil, broken, "x").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(nil, fsys, "msgs").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestChainAdapter(t *testing.T) {
	t.Parallel()

	chain := i18n.ChainAdapter{
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"rules": map[string]any{"required": "first", "email": "kept"}},
		}},
		nil,
		&i18n.MapAdapter{Data: map[string]map[string]any{
			"en": {"rules": map[string]any{"required": "second"}},
		}},
	}

	data, err := chain.Load(context.Background())
	require.NoError(t, err)
	rules := data["en"]["rules"].(map[string]any)
	assert.Equal(t, "second", rules["required"])
	assert.Equal(t, "kept", rules["email"])
}
