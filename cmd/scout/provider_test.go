package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveModel_ExplicitGemini(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "gemini", "gk-test", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_ExplicitOpenAI(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "openai", "sk-test", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_ExplicitOpenRouter(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "openrouter", "or-test", "", "", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_UnknownProvider(t *testing.T) {
	t.Parallel()
	_, err := resolveModel(context.Background(), "anthropic", "key", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestResolveModel_AutoDetectGemini(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "", "", "gk-env", "", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_AutoDetectOpenRouter(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "", "", "", "", "or-env")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_MultipleKeysRequireFlag(t *testing.T) {
	t.Parallel()
	_, err := resolveModel(context.Background(), "", "", "gk-env", "sk-env", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple API keys")
}

func TestResolveModel_NoKeys(t *testing.T) {
	t.Parallel()
	_, err := resolveModel(context.Background(), "", "", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no API key")
}

func TestResolveModel_FlagKeyOverridesEnv(t *testing.T) {
	t.Parallel()
	m, err := resolveModel(context.Background(), "openai", "flag-key", "", "env-key", "")
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestResolveModel_ExplicitProviderMissingKey(t *testing.T) {
	t.Parallel()
	_, err := resolveModel(context.Background(), "openai", "", "gk-env", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
