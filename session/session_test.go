package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goc-wiki-section/chat"
	"goc-wiki-section/models"
	"goc-wiki-section/section"
)

var article = &models.Article{
	Title:   "Victor Hugo",
	Content: "Intro.\n== Biographie ==\nNé en 1802.\n== Œuvres ==\nLes Misérables.\n",
}

func seed(text string) *chat.Transcript {
	return chat.New("seed:" + text)
}

func TestNew_HasIDAndTitles(t *testing.T) {
	s := New(article, seed)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []string{"Biographie", "Œuvres"}, s.Titles())
	assert.Empty(t, s.Section())
}

func TestSelect_SetsSectionText(t *testing.T) {
	s := New(article, seed)

	require.NoError(t, s.Select("Œuvres"))

	assert.Equal(t, "Œuvres", s.Section())
	assert.Equal(t, "\nLes Misérables.\n", s.SectionText())
}

func TestSelect_Unknown(t *testing.T) {
	s := New(article, seed)

	err := s.Select("Nope")

	assert.ErrorIs(t, err, section.ErrNotFound)
	assert.Empty(t, s.Section())
}

func TestTranscript_SeededFromSection(t *testing.T) {
	s := New(article, seed)
	require.NoError(t, s.Select("Biographie"))

	tr := s.Transcript()

	assert.Equal(t, "seed:\nNé en 1802.\n", tr.Messages()[0].Content)
	assert.Same(t, tr, s.Transcript())
}

func TestSelect_OtherSectionDiscardsTranscript(t *testing.T) {
	s := New(article, seed)
	require.NoError(t, s.Select("Biographie"))
	tr := s.Transcript()
	tr.Append(models.RoleUser, "q")

	require.NoError(t, s.Select("Biographie"))
	assert.Same(t, tr, s.Transcript())

	require.NoError(t, s.Select("Œuvres"))
	assert.NotSame(t, tr, s.Transcript())
	assert.Equal(t, 1, s.Transcript().Len())
}

func TestClearChat(t *testing.T) {
	s := New(article, seed)
	s.ClearChat() // 대화 전에는 아무 일도 없음

	require.NoError(t, s.Select("Biographie"))
	s.Transcript().Append(models.RoleUser, "q")
	s.ClearChat()

	assert.Equal(t, 1, s.Transcript().Len())
}

func TestSelectPage(t *testing.T) {
	s := New(article, seed)
	require.NoError(t, s.Select("Biographie"))
	tr := s.Transcript()

	s.SelectPage()

	assert.True(t, s.WholePage())
	assert.Empty(t, s.Section())
	assert.Equal(t, article.Content, s.SectionText())
	assert.NotSame(t, tr, s.Transcript())

	whole := s.Transcript()
	s.SelectPage()
	assert.Same(t, whole, s.Transcript())

	require.NoError(t, s.Select("Biographie"))
	assert.False(t, s.WholePage())
	assert.NotSame(t, whole, s.Transcript())
}
