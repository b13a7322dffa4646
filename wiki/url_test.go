package wiki

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://fr.wikipedia.org/wiki/Victor_Hugo", "Victor Hugo"},
		{"https://fr.wikipedia.org/wiki/Victor_Hugo#Biographie", "Victor Hugo"},
		{"https://en.wikipedia.org/wiki/Caf%C3%A9_culture", "Café culture"},
		{"  https://en.m.wikipedia.org/wiki/Go_(programming_language)  ", "Go (programming language)"},
		{"https://en.wikipedia.org/wiki/Paris?oldid=1", "Paris"},
	}

	for _, tt := range tests {
		got, err := TitleFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got, tt.url)
	}
}

func TestTitleFromURL_Invalid(t *testing.T) {
	for _, raw := range []string{"", "https://fr.wikipedia.org/", "https://example.com/page", "https://fr.wikipedia.org/wiki/#top", "/wiki/___"} {
		_, err := TitleFromURL(raw)
		assert.ErrorIs(t, err, ErrInvalidURL, raw)
	}
}

func TestLanguageFromURL(t *testing.T) {
	assert.Equal(t, "fr", LanguageFromURL("https://fr.wikipedia.org/wiki/Paris", "en"))
	assert.Equal(t, "de", LanguageFromURL("https://de.m.wikipedia.org/wiki/Berlin", "en"))
	assert.Equal(t, "en", LanguageFromURL("https://www.wikipedia.org/wiki/Paris", "en"))
	assert.Equal(t, "fr", LanguageFromURL("https://example.com/wiki/Paris", "fr"))
	assert.Equal(t, "fr", LanguageFromURL("://bad", "fr"))
}
