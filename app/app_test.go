package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goc-wiki-section/config"
	"goc-wiki-section/export"
	"goc-wiki-section/llm/llmtest"
	"goc-wiki-section/models"
	"goc-wiki-section/notion"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	dir := t.TempDir()
	cfg.PromptsPath = filepath.Join(dir, "prompts.toml")
	cfg.OutputDir = dir
	return cfg
}

func constEmbed(_ context.Context, _ string) ([]float32, error) {
	return []float32{1, 0}, nil
}

type stubExporter struct{}

func (stubExporter) Export(context.Context, export.Document) (string, error) {
	return "stub", nil
}

func TestNew_WithoutNetwork(t *testing.T) {
	cfg := testConfig(t)

	a, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "fr", a.Loader.Language())
	assert.NotEmpty(t, a.Prompts.SummarySystem)
	assert.Equal(t, cfg.OutputDir, a.Files.Dir)

	_, err = a.Notion()
	assert.ErrorIs(t, err, notion.ErrNotConfigured)
}

func TestLLM_MissingKey(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)

	_, err = a.LLM(context.Background())
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)

	_, err = a.Treatment(context.Background())
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestTreatment_UsesConfiguredOptions(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxTokens = 256
	cfg.Temperature = 0.2
	fake := &llmtest.Fake{Answer: "résumé"}

	a, err := New(cfg, WithLLM(fake))
	require.NoError(t, err)

	svc, err := a.Treatment(context.Background())
	require.NoError(t, err)
	again, err := a.Treatment(context.Background())
	require.NoError(t, err)
	assert.Same(t, svc, again)

	out, err := svc.Summarize(context.Background(), "texte")
	require.NoError(t, err)
	assert.Equal(t, "résumé", out)
	require.Len(t, fake.Options, 1)
	assert.Equal(t, 256, fake.Options[0].MaxTokens)
	assert.Equal(t, 0.2, fake.Options[0].Temperature)
}

func TestSearcher_WithInjectedEmbeddings(t *testing.T) {
	fake := &llmtest.Fake{Answer: "réponse"}
	a, err := New(testConfig(t), WithLLM(fake), WithEmbeddings(constEmbed, nil))
	require.NoError(t, err)

	searcher, err := a.Searcher(context.Background())
	require.NoError(t, err)

	article := &models.Article{
		Title:   "Paris",
		Content: "== Histoire ==\nLa ville a une longue histoire.\n",
	}
	require.NoError(t, searcher.Index(context.Background(), article))

	hits, err := searcher.Find(context.Background(), "histoire")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Histoire", hits[0].Title)
}

func TestNotion_Injected(t *testing.T) {
	a, err := New(testConfig(t), WithNotion(stubExporter{}))
	require.NoError(t, err)

	exp, err := a.Notion()
	require.NoError(t, err)
	loc, err := exp.Export(context.Background(), export.Document{})
	require.NoError(t, err)
	assert.Equal(t, "stub", loc)
}

func TestNotion_FromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.NotionAPIKey = "secret"
	cfg.NotionParentPageID = "parent"

	a, err := New(cfg)
	require.NoError(t, err)
	_, err = a.Notion()
	assert.NoError(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	fake := &llmtest.Fake{}
	a, err := New(testConfig(t), WithLLM(fake))
	require.NoError(t, err)
	assert.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}

func TestNewLLM(t *testing.T) {
	cfg := config.Default()
	cfg.OpenAIAPIKey = "sk-test"

	client, err := NewLLM(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo-16k", client.ModelName())

	cfg.Provider = "unknown"
	_, err = NewLLM(context.Background(), cfg)
	assert.Error(t, err)
}
