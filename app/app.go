package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/philippgille/chromem-go"

	"goc-wiki-section/config"
	"goc-wiki-section/db"
	"goc-wiki-section/embedding"
	"goc-wiki-section/export"
	"goc-wiki-section/llm"
	"goc-wiki-section/llm/gemini"
	"goc-wiki-section/llm/openai"
	"goc-wiki-section/logger"
	"goc-wiki-section/notion"
	"goc-wiki-section/prompts"
	"goc-wiki-section/rag"
	"goc-wiki-section/treatment"
	"goc-wiki-section/wiki"
)


// App 설정으로부터 만든 서비스 묶음. 언어 모델과 색인은 처음 쓸 때 생성됩니다
type App struct {
	Config  *config.Config
	Loader  *wiki.Loader
	Prompts prompts.Set
	Files   *export.FileExporter

	notion     export.Exporter
	client     llm.Client
	embedDoc   chromem.EmbeddingFunc
	embedQuery chromem.EmbeddingFunc
	treatment  *treatment.Service
	searcher   *rag.Searcher
	closers    []func() error
}

// Option App 구성 옵션
type Option func(*App)

// WithLLM 언어 모델 클라이언트를 직접 지정합니다
func WithLLM(client llm.Client) Option {
	return func(a *App) { a.client = client }
}

// WithEmbeddings 섹션 색인에 쓸 임베딩 함수를 직접 지정합니다
func WithEmbeddings(document, query chromem.EmbeddingFunc) Option {
	return func(a *App) {
		a.embedDoc = document
		a.embedQuery = query
	}
}

// WithNotion Notion 내보내기를 직접 지정합니다
func WithNotion(exporter export.Exporter) Option {
	return func(a *App) { a.notion = exporter }
}

// New 네트워크 연결 없이 만들 수 있는 부분만 초기화합니다
func New(cfg *config.Config, opts ...Option) (*App, error) {
	set, err := prompts.Load(cfg.PromptsPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config: cfg,
		Loader: wiki.NewLoader(wiki.Options{
			APIURL:    cfg.WikiAPIURL,
			Language:  cfg.Language,
			UserAgent: cfg.UserAgent,
		}),
		Prompts: set,
		Files:   export.NewFileExporter(cfg.OutputDir),
	}
	if cfg.NotionEnabled() {
		a.notion = notion.NewExporter(cfg.NotionAPIKey, cfg.NotionParentPageID)
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// LLMOptions 설정의 생성 옵션
func (a *App) LLMOptions() llm.Options {
	return llm.Options{
		MaxTokens:   a.Config.MaxTokens,
		Temperature: a.Config.Temperature,
	}
}

// LLM 언어 모델 클라이언트. 처음 호출할 때 설정을 검증하고 생성합니다
func (a *App) LLM(ctx context.Context) (llm.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	client, err := NewLLM(ctx, a.Config)
	if err != nil {
		return nil, err
	}
	logger.Debug("언어 모델 연결: %s (%s)", a.Config.Provider, client.ModelName())
	a.client = client
	a.closers = append(a.closers, client.Close)
	return client, nil
}

// Treatment 요약, 번역, 대화 서비스
func (a *App) Treatment(ctx context.Context) (*treatment.Service, error) {
	if a.treatment != nil {
		return a.treatment, nil
	}
	client, err := a.LLM(ctx)
	if err != nil {
		return nil, err
	}
	a.treatment = treatment.NewService(client, a.Prompts, a.LLMOptions())
	return a.treatment, nil
}

// Searcher 문서 전체 질의응답 검색기
func (a *App) Searcher(ctx context.Context) (*rag.Searcher, error) {
	if a.searcher != nil {
		return a.searcher, nil
	}
	client, err := a.LLM(ctx)
	if err != nil {
		return nil, err
	}
	if a.embedDoc == nil {
		if err := a.initEmbeddings(ctx); err != nil {
			return nil, err
		}
	}
	store := db.NewStore(a.embedDoc, a.embedQuery, float32(a.Config.MinSimilarity))
	a.searcher = rag.NewSearcher(store, client, a.Prompts, a.LLMOptions(), a.Config.TopK)
	return a.searcher, nil
}

func (a *App) initEmbeddings(ctx context.Context) error {
	switch a.Config.Provider {
	case config.ProviderGemini:
		embedder, err := embedding.NewEmbedder(ctx, a.Config.GeminiAPIKey, "")
		if err != nil {
			return err
		}
		a.embedDoc, a.embedQuery = embedder.Funcs()
		a.closers = append(a.closers, embedder.Close)
	default:
		a.embedDoc, a.embedQuery = embedding.OpenAIFuncs(a.Config.OpenAIAPIKey)
	}
	return nil
}

// Notion Notion 내보내기. 설정되지 않았으면 notion.ErrNotConfigured
func (a *App) Notion() (export.Exporter, error) {
	if a.notion == nil {
		return nil, notion.ErrNotConfigured
	}
	return a.notion, nil
}

// Close 생성된 클라이언트를 모두 닫습니다
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// NewLLM 설정의 provider 에 맞는 언어 모델 클라이언트를 생성합니다
func NewLLM(ctx context.Context, cfg *config.Config) (llm.Client, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client, err := openai.New(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.ProviderGemini:
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("지원하지 않는 provider입니다: %q", cfg.Provider)
	}
}
