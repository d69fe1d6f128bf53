package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "badger", settings.IndexBackend)
	assert.Equal(t, "data/documents.json", settings.DocumentsPath)
	assert.Equal(t, 384, settings.OpenAI.Dimension)
	assert.False(t, settings.OpenAI.Enabled)
}

func TestLoad_ProviderPrefixes(t *testing.T) {
	t.Setenv("OPENAI_ENABLED", "true")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_NAMESPACE", "openai-ns")
	t.Setenv("LOCAL_ENABLED", "true")
	t.Setenv("LOCAL_HOST", "http://localhost:11434/v1")

	settings, err := Load()
	require.NoError(t, err)

	enabled := settings.EnabledProviders()
	require.Len(t, enabled, 2)
	assert.Equal(t, "sk-test", enabled["openai"].APIKey)
	assert.Equal(t, "openai-ns", enabled["openai"].Namespace)
	assert.Equal(t, "http://localhost:11434/v1", enabled["local"].Host)
}

func TestEnabledProviders_NoneEnabled(t *testing.T) {
	settings := &Settings{}
	assert.Empty(t, settings.EnabledProviders())
}
