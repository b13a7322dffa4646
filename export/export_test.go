package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		doc  Document
		want string
	}{
		{Document{Kind: KindSummary, Section: "Biographie"}, "summary_Biographie.txt"},
		{Document{Kind: KindTranslation, Section: "Œuvres / Romans"}, "translation_Œuvres_Romans.txt"},
		{Document{Kind: KindChat, Section: "../etc/passwd"}, "chat_etc_passwd.txt"},
		{Document{Kind: KindSection, Section: "", Article: "Victor Hugo"}, "section_Victor_Hugo.txt"},
		{Document{Kind: KindSummary}, "summary_page.txt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.doc))
	}
}

func TestDocument_Title(t *testing.T) {
	assert.Equal(t, "Hugo - Exil (요약)", Document{Kind: KindSummary, Article: "Hugo", Section: "Exil"}.Title())
	assert.Equal(t, "Hugo - Exil (번역: anglais)", Document{Kind: KindTranslation, Article: "Hugo", Section: "Exil", Language: "anglais"}.Title())
	assert.Equal(t, "Hugo - Exil", Document{Kind: KindSection, Article: "Hugo", Section: "Exil"}.Title())
}

func TestFileExporter_WritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	e := NewFileExporter(dir)

	path, err := e.Export(context.Background(), Document{Kind: KindSummary, Section: "Exil", Content: "Résumé."})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "summary_Exil.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Résumé.", string(data))
}

func TestNewFileExporter_DefaultDir(t *testing.T) {
	assert.Equal(t, ".", NewFileExporter("").Dir)
}
