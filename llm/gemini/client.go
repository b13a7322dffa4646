// Package gemini Google Gemini (generative-ai-go) 를 사용하는 llm.Client
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"goc-wiki-section/llm"
	"goc-wiki-section/models"
)

var _ llm.Client = (*Client)(nil)

// DefaultModel 기본 생성 모델
const DefaultModel = "gemini-2.5-flash"

// ErrNoUserMessage 마지막 메시지가 user 가 아닐 때
var ErrNoUserMessage = errors.New("gemini: 마지막 메시지는 user 여야 합니다")

// Client Gemini 생성 모델 클라이언트
type Client struct {
	genaiClient *genai.Client
	model       string
}

// New 새로운 Gemini 클라이언트를 생성합니다
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API 키가 필요합니다")
	}
	if model == "" {
		model = DefaultModel
	}

	genaiClient, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Gemini 클라이언트 생성 실패: %w", err)
	}

	return &Client{genaiClient: genaiClient, model: model}, nil
}

// Chat system 메시지는 시스템 지시로, 나머지는 대화 기록으로 보내고 마지막 user 메시지에 대한 답을 받습니다
func (c *Client) Chat(ctx context.Context, messages []models.Message, opts llm.Options) (string, error) {
	system, history, last, err := toContents(messages)
	if err != nil {
		return "", err
	}

	model := c.genaiClient.GenerativeModel(c.model)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	model.SetTemperature(float32(opts.Temperature))
	model.SystemInstruction = system

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	var answerParts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				answerParts = append(answerParts, string(text))
			}
		}
	}
	if len(answerParts) == 0 {
		return "", llm.ErrEmptyResponse
	}

	return strings.Join(answerParts, "\n"), nil
}

// toContents 메시지를 시스템 지시, 이전 대화, 마지막 user 메시지로 나눕니다
func toContents(messages []models.Message) (*genai.Content, []*genai.Content, *genai.Content, error) {
	var systemParts []string
	var contents []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			systemParts = append(systemParts, m.Content)
		case models.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}

	if len(contents) == 0 || contents[len(contents)-1].Role != "user" {
		return nil, nil, nil, ErrNoUserMessage
	}

	var system *genai.Content
	if len(systemParts) > 0 {
		system = &genai.Content{Parts: []genai.Part{genai.Text(strings.Join(systemParts, "\n\n"))}}
	}

	return system, contents[:len(contents)-1], contents[len(contents)-1], nil
}

// ModelName 사용 중인 모델 이름
func (c *Client) ModelName() string {
	return c.model
}

// Close 클라이언트를 닫습니다
func (c *Client) Close() error {
	return c.genaiClient.Close()
}
