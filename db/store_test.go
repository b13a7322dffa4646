package db

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goc-wiki-section/models"
)

var vocabulary = []string{"naissance", "enfance", "roman", "poésie", "exil", "politique"}

// bagOfWords 어휘 단어 출현 횟수로 만든 정규화 벡터 (마지막 차원은 0 벡터 방지용)
func bagOfWords(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, len(vocabulary)+1)
	lower := strings.ToLower(text)
	for i, w := range vocabulary {
		vec[i] = float32(strings.Count(lower, w))
	}
	vec[len(vocabulary)] = 0.01

	var norm float64
	for _, v := range vec {
		norm += float64(v * v)
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) / norm)
	}
	return vec, nil
}

var hugo = &models.Article{
	Title: "Victor Hugo",
	Content: "Intro.\n== Biographie ==\nSa naissance à Besançon, son enfance, puis l'exil.\n" +
		"== Œuvres ==\nUn roman célèbre, de la poésie, encore un roman.\n" +
		"== Politique ==\nSa vie politique et son exil politique à Guernesey.\n" +
		"== Notes ==\ncourt\n",
}

func TestIndexArticle_SkipsShortSections(t *testing.T) {
	store := NewStore(bagOfWords, nil, 0)

	n, err := store.IndexArticle(context.Background(), hugo)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, store.Count())
}

func TestSearch_RanksBySimilarity(t *testing.T) {
	store := NewStore(bagOfWords, nil, 0)
	_, err := store.IndexArticle(context.Background(), hugo)
	require.NoError(t, err)

	hits, err := store.Search(context.Background(), "quel roman et quelle poésie ?", 2)

	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "Œuvres", hits[0].Title)
	assert.Contains(t, hits[0].Body, "roman célèbre")
	assert.LessOrEqual(t, len(hits), 2)
}

func TestSearch_MinSimilarityFilters(t *testing.T) {
	store := NewStore(bagOfWords, nil, 0.9)
	_, err := store.IndexArticle(context.Background(), hugo)
	require.NoError(t, err)

	hits, err := store.Search(context.Background(), "politique politique", 3)

	require.NoError(t, err)
	for _, h := range hits {
		assert.GreaterOrEqual(t, h.Similarity, float32(0.9))
	}
}

func TestSearch_BeforeIndex(t *testing.T) {
	store := NewStore(bagOfWords, nil, 0)

	_, err := store.Search(context.Background(), "roman", 3)

	assert.ErrorIs(t, err, ErrNotIndexed)
}

func TestIndexArticle_ReplacesPrevious(t *testing.T) {
	store := NewStore(bagOfWords, nil, 0)
	_, err := store.IndexArticle(context.Background(), hugo)
	require.NoError(t, err)

	n, err := store.IndexArticle(context.Background(), &models.Article{
		Title:   "Autre",
		Content: "== Seule ==\nune section sur la poésie moderne\n",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	hits, err := store.Search(context.Background(), "roman", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Seule", hits[0].Title)
}

func TestIndexArticle_EmbeddingError(t *testing.T) {
	failing := func(context.Context, string) ([]float32, error) {
		return nil, errors.New("embedding down")
	}
	store := NewStore(failing, nil, 0)

	_, err := store.IndexArticle(context.Background(), hugo)

	assert.Error(t, err)
}

func TestChunkText(t *testing.T) {
	assert.Equal(t, []string{"abc"}, chunkText("abc", 5))
	assert.Equal(t, []string{"ab", "cd", "e"}, chunkText("abcde", 2))
	assert.Equal(t, []string{"éé", "é"}, chunkText("ééé", 2))
}
