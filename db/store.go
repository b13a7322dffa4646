package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"

	"goc-wiki-section/logger"
	"goc-wiki-section/models"
	"goc-wiki-section/section"
)

const (
	chunkSize     = 1000 // 청킹 크기 (문자 단위)
	minContentLen = 10   // 이보다 짧은 섹션은 색인하지 않음

	// DefaultMinSimilarity 이 값보다 유사도가 낮은 결과는 버립니다
	DefaultMinSimilarity = 0.5
)

// ErrNotIndexed 아직 문서를 색인하지 않았습니다
var ErrNotIndexed = errors.New("색인된 문서가 없습니다")

// Hit 검색된 섹션
type Hit struct {
	Title      string
	Body       string
	Similarity float32
}

// Store 문서 하나의 섹션을 담는 메모리 벡터 DB 저장소 (실행이 끝나면 사라집니다)
type Store struct {
	db            *chromem.DB
	collection    *chromem.Collection
	embedDocument chromem.EmbeddingFunc
	embedQuery    chromem.EmbeddingFunc
	sections      []models.Section
	minSimilarity float32
}

// NewStore 새로운 벡터 DB 저장소를 생성합니다
func NewStore(embedDocument, embedQuery chromem.EmbeddingFunc, minSimilarity float32) *Store {
	if embedQuery == nil {
		embedQuery = embedDocument
	}
	return &Store{
		db:            chromem.NewDB(),
		embedDocument: embedDocument,
		embedQuery:    embedQuery,
		minSimilarity: minSimilarity,
	}
}

// IndexArticle 문서의 섹션들을 임베딩하여 저장합니다. 이전에 색인한 문서는 지웁니다
func (s *Store) IndexArticle(ctx context.Context, article *models.Article) (int, error) {
	if err := s.reset(); err != nil {
		return 0, err
	}

	// cosine 거리 사용, 문서마다 새 컬렉션
	collection, err := s.db.GetOrCreateCollection("article-"+uuid.NewString(), map[string]string{
		"hnsw:space": "cosine",
		"title":      article.Title,
	}, s.embedDocument)
	if err != nil {
		return 0, fmt.Errorf("Collection 생성 실패: %w", err)
	}
	s.collection = collection

	_, sections := section.Split(article.Content)
	s.sections = sections

	var docs []chromem.Document
	for i, sec := range sections {
		body := strings.TrimSpace(sec.Body)
		if len([]rune(body)) < minContentLen {
			logger.Debug("섹션 %q 은(는) 너무 짧아 건너뜁니다", sec.Title)
			continue
		}

		for idx, chunk := range chunkText(body, chunkSize) {
			docs = append(docs, chromem.Document{
				ID:      fmt.Sprintf("%d-chunk-%d", i, idx),
				Content: sec.Title + "\n" + chunk,
				Metadata: map[string]string{
					"title":         sec.Title,
					"section_index": strconv.Itoa(i),
				},
			})
		}
	}

	if len(docs) == 0 {
		return 0, nil
	}
	if err := collection.AddDocuments(ctx, docs, 1); err != nil {
		return 0, fmt.Errorf("문서 추가 실패: %w", err)
	}

	logger.Info("섹션 %d개, 청크 %d개 색인 완료", len(sections), len(docs))
	return len(docs), nil
}

// Count 저장된 청크의 개수를 반환합니다
func (s *Store) Count() int {
	if s.collection == nil {
		return 0
	}
	return s.collection.Count()
}

// Search 질문과 가까운 섹션을 유사도 순으로 최대 topK 개 반환합니다 (섹션당 하나)
func (s *Store) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	if s.collection == nil {
		return nil, ErrNotIndexed
	}
	count := s.collection.Count()
	if count == 0 || topK <= 0 {
		return nil, nil
	}

	queryVector, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("질문 임베딩 실패: %w", err)
	}

	// 한 섹션에 청크가 여러 개일 수 있으므로 넉넉히 가져온 뒤 섹션 단위로 합칩니다
	n := min(topK*3, count)
	results, err := s.collection.QueryEmbedding(ctx, queryVector, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("검색 실패: %w", err)
	}

	var hits []Hit
	seen := make(map[int]bool)
	for _, result := range results {
		if result.Similarity < s.minSimilarity {
			continue
		}
		idx, err := strconv.Atoi(result.Metadata["section_index"])
		if err != nil || idx < 0 || idx >= len(s.sections) || seen[idx] {
			continue
		}
		seen[idx] = true

		logger.Debug("검색 결과: %s, 유사도: %.3f", s.sections[idx].Title, result.Similarity)
		hits = append(hits, Hit{
			Title:      s.sections[idx].Title,
			Body:       s.sections[idx].Body,
			Similarity: result.Similarity,
		})
		if len(hits) == topK {
			break
		}
	}

	return hits, nil
}

// reset 이전 문서의 컬렉션을 지웁니다
func (s *Store) reset() error {
	if s.collection == nil {
		return nil
	}
	if err := s.db.DeleteCollection(s.collection.Name); err != nil {
		return fmt.Errorf("Collection 삭제 실패: %w", err)
	}
	s.collection = nil
	s.sections = nil
	return nil
}

// chunkText 텍스트를 지정된 크기로 청킹합니다
func chunkText(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))
		chunks = append(chunks, string(runes[i:end]))
	}

	return chunks
}
