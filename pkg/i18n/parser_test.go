package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulebook/pkg/i18n"
)

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &i18n.JSONParser{}, i18n.NewParserForFile("en.json"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("en.yaml"))
	assert.IsType(t, &i18n.YAMLParser{}, i18n.NewParserForFile("EN.YML"))
	assert.Nil(t, i18n.NewParserForFile("en.toml"))
	assert.Nil(t, i18n.NewParserForFile("README"))
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewYAMLParser()

	t.Run("parses languages", func(t *testing.T) {
		t.Parallel()
		data, err := p.Parse(context.Background(), []byte("en:\n  rules:\n    required: \"x\"\n"))
		require.NoError(t, err)
		require.Contains(t, data, "en")
		rules, ok := data["en"]["rules"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "x", rules["required"])
	})

	t.Run("rejects scalar language", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()
		_, err := p.Parse(context.Background(), []byte("en: [\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en: {}\n"))
		assert.ErrorIs(t, err, i18n.ErrParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	assert.True(t, p.SupportsFileExtension(".yml"))
	assert.True(t, p.SupportsFileExtension("yaml"))
	assert.False(t, p.SupportsFileExtension("json"))
}

func TestJSONParser(t *testing.T) {
	t.Parallel()
	p := i18n.NewJSONParser()

	data, err := p.Parse(context.Background(), []byte(`{"es":{"rules":{"required":"y"}}}`))
	require.NoError(t, err)
	assert.Contains(t, data, "es")

	_, err = p.Parse(context.Background(), []byte(`{"es":`))
	assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)

	_, err = p.Parse(context.Background(), []byte(`{}`))
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	assert.True(t, p.SupportsFileExtension(".JSON"))
	assert.False(t, p.SupportsFileExtension("yaml"))
}
