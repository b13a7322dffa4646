package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	set, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), set)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), "prompts.toml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), set)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.toml")
	require.NoError(t, os.WriteFile(path, []byte(`summary_user = "Résume ce texte : {text}"
chat_system = "Réponds seulement à partir de : {text}"
`), 0644))

	set, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Résume ce texte : {text}", set.SummaryUser)
	assert.Equal(t, "Réponds seulement à partir de : {text}", set.ChatSystem)
	assert.Equal(t, Default().TranslationUser, set.TranslationUser)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.toml")
	require.NoError(t, os.WriteFile(path, []byte("summary_user = "), 0644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.toml")
	want := Default()
	want.SummarySystem = "custom"

	require.NoError(t, Save(path, want))
	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRender(t *testing.T) {
	got := Render(Default().TranslationUser, "Bonjour", "anglais")

	assert.Contains(t, got, "Bonjour")
	assert.Contains(t, got, "anglais")
	assert.NotContains(t, got, "{text}")
	assert.NotContains(t, got, "{language}")
}
