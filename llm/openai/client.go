// Package openai OpenAI 호환 /chat/completions API 를 사용하는 llm.Client
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"goc-wiki-section/llm"
	"goc-wiki-section/logger"
	"goc-wiki-section/models"
)

var _ llm.Client = (*Client)(nil)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-3.5-turbo-16k"
	DefaultTimeout = 120 * time.Second
)

// Config OpenAI 클라이언트 설정
type Config struct {
	APIKey  string // 필수
	BaseURL string // Azure 나 호환 서버를 쓸 때 변경
	Model   string
	Timeout time.Duration
}

// Client OpenAI Chat Completions 클라이언트
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// New 새로운 OpenAI 클라이언트를 생성합니다
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API 키가 필요합니다")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}, nil
}

// Chat 대화를 /chat/completions 로 보내고 첫 번째 답변을 반환합니다
func (c *Client) Chat(ctx context.Context, messages []models.Message, opts llm.Options) (string, error) {
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    make([]chatMessage, len(messages)),
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}
	for i, m := range messages {
		reqBody.Messages[i] = chatMessage{Role: string(m.Role), Content: m.Content}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("openai 오류 (status %d): %s", resp.StatusCode, string(respBody))
		}
		return "", fmt.Errorf("decode response: %w", err)
	}
	if chatResp.Error != nil {
		return "", fmt.Errorf("openai 오류: %s", chatResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai 오류 (status %d): %s", resp.StatusCode, string(respBody))
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", llm.ErrEmptyResponse
	}
	if chatResp.Choices[0].FinishReason == "length" {
		logger.Warn("응답이 max_tokens(%d) 에서 잘렸습니다", opts.MaxTokens)
	}

	return chatResp.Choices[0].Message.Content, nil
}

// ModelName 사용 중인 모델 이름
func (c *Client) ModelName() string {
	return c.model
}

// Close 유휴 연결을 닫습니다
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
