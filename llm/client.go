// Package llm 언어 모델 API 공통 인터페이스.
// 요약, 번역, 질의응답은 모두 이 인터페이스를 통해 외부 API 에 위임합니다
package llm

import (
	"context"
	"errors"

	"goc-wiki-section/models"
)

// 기본 생성 옵션
const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.5
)

// ErrEmptyResponse API 가 답변 없이 응답했습니다
var ErrEmptyResponse = errors.New("언어 모델 응답이 비어있습니다")

// Client 역할이 붙은 메시지 목록을 받아 assistant 답변 하나를 돌려줍니다
type Client interface {
	// Chat 대화를 보내고 답변을 반환합니다. 재시도는 하지 않습니다
	Chat(ctx context.Context, messages []models.Message, opts Options) (string, error)

	// ModelName 사용 중인 모델 이름
	ModelName() string

	// Close 리소스를 정리합니다
	Close() error
}

// Options 생성 옵션
type Options struct {
	MaxTokens   int     // 최대 출력 토큰 수
	Temperature float64 // 샘플링 온도
}

// DefaultOptions 기본 옵션 (500 토큰, 온도 0.5)
func DefaultOptions() Options {
	return Options{
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
}
