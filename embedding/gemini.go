package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/philippgille/chromem-go"
	"google.golang.org/api/option"
)

// DefaultModel Gemini 임베딩 모델
const DefaultModel = "text-embedding-004"

// Embedder Gemini API를 사용하여 텍스트를 임베딩으로 변환하는 구조체
type Embedder struct {
	client        *genai.Client
	documentModel *genai.EmbeddingModel
	queryModel    *genai.EmbeddingModel
}

// NewEmbedder 새로운 임베딩 생성기를 생성합니다
func NewEmbedder(ctx context.Context, apiKey, model string) (*Embedder, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Gemini 클라이언트 생성 실패: %w", err)
	}

	// 저장용(문서)과 검색용(질문) 작업 유형을 나눠서 사용
	documentModel := client.EmbeddingModel(model)
	documentModel.TaskType = genai.TaskTypeRetrievalDocument
	queryModel := client.EmbeddingModel(model)
	queryModel.TaskType = genai.TaskTypeRetrievalQuery

	return &Embedder{
		client:        client,
		documentModel: documentModel,
		queryModel:    queryModel,
	}, nil
}

// EmbedDocument 섹션 본문을 임베딩 벡터로 변환합니다
func (e *Embedder) EmbedDocument(ctx context.Context, text string) ([]float32, error) {
	return embed(ctx, e.documentModel, text)
}

// EmbedQuery 질문을 임베딩 벡터로 변환합니다
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return embed(ctx, e.queryModel, text)
}

// Funcs chromem 컬렉션에 넘길 문서용, 질문용 임베딩 함수
func (e *Embedder) Funcs() (document, query chromem.EmbeddingFunc) {
	return e.EmbedDocument, e.EmbedQuery
}

func embed(ctx context.Context, model *genai.EmbeddingModel, text string) ([]float32, error) {
	resp, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("임베딩 생성 실패: %w", err)
	}

	if resp.Embedding == nil {
		return nil, fmt.Errorf("임베딩 응답이 비어있습니다")
	}

	values := resp.Embedding.Values
	result := make([]float32, len(values))
	for i, v := range values {
		result[i] = float32(v)
	}

	return result, nil
}

// Close 클라이언트를 닫습니다
func (e *Embedder) Close() error {
	return e.client.Close()
}
