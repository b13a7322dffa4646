// Package llmtest 테스트용 llm.Client
package llmtest

import (
	"context"

	"goc-wiki-section/llm"
	"goc-wiki-section/models"
)

var _ llm.Client = (*Fake)(nil)

// Fake 정해진 답을 순서대로 돌려주고 받은 요청을 기록합니다
type Fake struct {
	Answers []string // 비어 있으면 Answer 를 반복
	Answer  string
	Err     error

	Calls   [][]models.Message
	Options []llm.Options
	Closed  bool
}

// Chat 요청을 기록하고 다음 답을 반환합니다
func (f *Fake) Chat(_ context.Context, messages []models.Message, opts llm.Options) (string, error) {
	cp := make([]models.Message, len(messages))
	copy(cp, messages)
	f.Calls = append(f.Calls, cp)
	f.Options = append(f.Options, opts)

	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Answers) > 0 {
		answer := f.Answers[0]
		f.Answers = f.Answers[1:]
		return answer, nil
	}
	return f.Answer, nil
}

// ModelName 고정된 이름
func (f *Fake) ModelName() string {
	return "fake"
}

// Close 닫힘 여부만 기록합니다
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}

// LastCall 마지막 요청 (없으면 nil)
func (f *Fake) LastCall() []models.Message {
	if len(f.Calls) == 0 {
		return nil
	}
	return f.Calls[len(f.Calls)-1]
}
