package rag

import (
	"context"
	"fmt"
	"strings"

	"goc-wiki-section/db"
	"goc-wiki-section/llm"
	"goc-wiki-section/models"
	"goc-wiki-section/prompts"
)

// NoMatchAnswer 관련 섹션이 없을 때의 답변
const NoMatchAnswer = "질문과 관련된 섹션을 찾을 수 없습니다."

// DefaultTopK 질문마다 문맥으로 넣을 섹션 수
const DefaultTopK = 3

// Answer 문서 전체에 대한 질문의 답과 근거 섹션
type Answer struct {
	Text     string
	Sections []string
}

// Searcher 색인된 섹션에서 관련 섹션을 찾아 답변을 만드는 구조체
type Searcher struct {
	store   *db.Store
	client  llm.Client
	prompts prompts.Set
	opts    llm.Options
	topK    int
}

// NewSearcher 새로운 검색기를 생성합니다
func NewSearcher(store *db.Store, client llm.Client, set prompts.Set, opts llm.Options, topK int) *Searcher {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Searcher{store: store, client: client, prompts: set, opts: opts, topK: topK}
}

// Index 문서를 색인합니다
func (s *Searcher) Index(ctx context.Context, article *models.Article) error {
	if _, err := s.store.IndexArticle(ctx, article); err != nil {
		return fmt.Errorf("문서 색인 실패: %w", err)
	}
	return nil
}

// Find 질문과 관련된 섹션을 찾습니다
func (s *Searcher) Find(ctx context.Context, query string) ([]db.Hit, error) {
	hits, err := s.store.Search(ctx, query, s.topK)
	if err != nil {
		return nil, fmt.Errorf("섹션 검색 실패: %w", err)
	}
	return hits, nil
}

// Ask 문서 전체를 대상으로 질문에 답합니다
func (s *Searcher) Ask(ctx context.Context, question string) (*Answer, error) {
	// 1. 관련 섹션 검색
	hits, err := s.Find(ctx, question)
	if err != nil {
		return nil, err
	}

	if len(hits) == 0 {
		return &Answer{Text: NoMatchAnswer}, nil
	}

	// 2. 검색된 섹션들을 컨텍스트로 구성
	contextText := buildContext(hits)

	// 3. 언어 모델에 질문 전송
	answer, err := s.client.Chat(ctx, []models.Message{
		{Role: models.RoleSystem, Content: prompts.Render(s.prompts.ArticleSystem, contextText, "")},
		{Role: models.RoleUser, Content: question},
	}, s.opts)
	if err != nil {
		return nil, fmt.Errorf("답변 생성 실패: %w", err)
	}

	titles := make([]string, len(hits))
	for i, h := range hits {
		titles[i] = h.Title
	}

	return &Answer{Text: answer, Sections: titles}, nil
}

// buildContext 검색된 섹션들을 컨텍스트 텍스트로 구성합니다
func buildContext(hits []db.Hit) string {
	parts := make([]string, 0, len(hits))
	for i, h := range hits {
		parts = append(parts, fmt.Sprintf("[섹션 %d: %s]\n%s", i+1, h.Title, strings.TrimSpace(h.Body)))
	}
	return strings.Join(parts, "\n\n---\n\n")
}
