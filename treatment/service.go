// Package treatment 섹션에 대한 세 가지 처리: 요약, 번역, 질의응답
package treatment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goc-wiki-section/chat"
	"goc-wiki-section/llm"
	"goc-wiki-section/logger"
	"goc-wiki-section/models"
	"goc-wiki-section/prompts"
)

var (
	// ErrNoLanguage 번역할 언어가 지정되지 않았습니다
	ErrNoLanguage = errors.New("번역할 언어를 입력해주세요")

	// ErrEmptyQuestion 질문이 비어있습니다
	ErrEmptyQuestion = errors.New("질문이 비어있습니다")
)

// Service 언어 모델 API 에 처리를 위임하는 구조체
type Service struct {
	client  llm.Client
	prompts prompts.Set
	opts    llm.Options
}

// NewService 새로운 처리 서비스를 생성합니다
func NewService(client llm.Client, set prompts.Set, opts llm.Options) *Service {
	return &Service{client: client, prompts: set, opts: opts}
}

// Summarize 텍스트를 간결하게 요약합니다
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	logger.Debug("요약 요청: %d자", len([]rune(text)))

	answer, err := s.client.Chat(ctx, []models.Message{
		{Role: models.RoleSystem, Content: s.prompts.SummarySystem},
		{Role: models.RoleUser, Content: prompts.Render(s.prompts.SummaryUser, text, "")},
	}, s.opts)
	if err != nil {
		return "", fmt.Errorf("요약 실패: %w", err)
	}
	return answer, nil
}

// Translate 텍스트를 지정한 언어로 번역합니다
func (s *Service) Translate(ctx context.Context, text, language string) (string, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return "", ErrNoLanguage
	}
	logger.Debug("번역 요청: %d자 -> %s", len([]rune(text)), language)

	answer, err := s.client.Chat(ctx, []models.Message{
		{Role: models.RoleSystem, Content: s.prompts.TranslationSystem},
		{Role: models.RoleUser, Content: prompts.Render(s.prompts.TranslationUser, text, language)},
	}, s.opts)
	if err != nil {
		return "", fmt.Errorf("번역 실패: %w", err)
	}
	return answer, nil
}

// NewTranscript 섹션 본문을 담은 system 메시지로 대화 기록을 시작합니다
func (s *Service) NewTranscript(sectionText string) *chat.Transcript {
	return chat.New(prompts.Render(s.prompts.ChatSystem, sectionText, ""))
}

// Ask 대화 기록과 새 질문을 보내 답을 받습니다.
// 성공하면 질문과 답을 기록에 추가하고, 실패하면 기록을 바꾸지 않습니다
func (s *Service) Ask(ctx context.Context, transcript *chat.Transcript, question string) (string, error) {
	question = strings.TrimSpace(question)
	answer, err := s.Reply(ctx, transcript.Messages(), question)
	if err != nil {
		return "", err
	}

	transcript.Append(models.RoleUser, question)
	transcript.Append(models.RoleAssistant, answer)
	return answer, nil
}

// Reply history 뒤에 질문을 붙여 보내고 답만 돌려줍니다. history 는 바꾸지 않습니다
func (s *Service) Reply(ctx context.Context, history []models.Message, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	messages := make([]models.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, models.Message{Role: models.RoleUser, Content: question})
	logger.Debug("질문 전송: 메시지 %d개", len(messages))

	answer, err := s.client.Chat(ctx, messages, s.opts)
	if err != nil {
		return "", fmt.Errorf("답변 생성 실패: %w", err)
	}
	return answer, nil
}

// ModelName 사용 중인 모델 이름
func (s *Service) ModelName() string {
	return s.client.ModelName()
}
