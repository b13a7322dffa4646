package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPath 기본 설정 파일 경로
const DefaultPath = "config.json"

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

var (
	// ErrConfigCreated 설정 파일이 없어 기본값으로 만들었습니다
	ErrConfigCreated = errors.New("config.json 파일이 생성되었습니다. API 키를 설정해주세요")

	// ErrMissingAPIKey 선택한 언어 모델의 API 키가 없습니다
	ErrMissingAPIKey = errors.New("언어 모델 API 키가 설정되지 않았습니다")
)

// Config 애플리케이션 설정 구조체
type Config struct {
	Provider      string  `json:"provider"`
	OpenAIAPIKey  string  `json:"openai_api_key"`
	OpenAIBaseURL string  `json:"openai_base_url,omitempty"`
	GeminiAPIKey  string  `json:"gemini_api_key"`
	Model         string  `json:"model,omitempty"`
	MaxTokens     int     `json:"max_tokens"`
	Temperature   float64 `json:"temperature"`

	Language   string `json:"language"`
	WikiAPIURL string `json:"wiki_api_url,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`

	NotionAPIKey       string `json:"notion_api_key,omitempty"`
	NotionParentPageID string `json:"notion_parent_page_id,omitempty"`

	OutputDir     string  `json:"output_dir"`
	PromptsPath   string  `json:"prompts_path"`
	TopK          int     `json:"top_k"`
	MinSimilarity float64 `json:"min_similarity"`
}

// Default 기본 설정
func Default() *Config {
	return &Config{
		Provider:      ProviderOpenAI,
		MaxTokens:     500,
		Temperature:   0.5,
		Language:      "fr",
		OutputDir:     ".",
		PromptsPath:   "prompts.toml",
		TopK:          3,
		MinSimilarity: 0.5,
	}
}

// LoadConfig .env, 설정 파일, 환경 변수 순서로 설정을 로드합니다.
// 파일이 없으면 기본 설정 파일을 만들고, 환경 변수에도 API 키가 없으면 ErrConfigCreated 를 반환합니다
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	_ = godotenv.Load()

	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := writeDefault(path); err != nil {
			return nil, err
		}
		config.applyEnv()
		config.normalize()
		if config.APIKey() == "" {
			return nil, ErrConfigCreated
		}
		return config, nil
	case err != nil:
		return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("설정 파일 파싱 실패: %w", err)
	}

	config.applyEnv()
	config.normalize()
	return config, nil
}

// writeDefault 기본 설정 파일 생성
func writeDefault(path string) error {
	data, err := json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("설정 파일 쓰기 실패: %w", err)
	}
	return nil
}

// applyEnv 환경 변수가 있으면 파일 값을 덮어씁니다
func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setString(&c.Provider, "LLM_PROVIDER")
	setString(&c.Model, "LLM_MODEL")
	setString(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.Language, "WIKI_LANG")
	setString(&c.NotionAPIKey, "NOTION_API_KEY")
	setString(&c.NotionParentPageID, "NOTION_PARENT_PAGE_ID")
	setString(&c.OutputDir, "OUTPUT_DIR")

	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = n
		}
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = f
		}
	}
}

// normalize 비어 있거나 잘못된 값에 기본값을 채웁니다
func (c *Config) normalize() {
	d := Default()
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = d.Provider
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
	if c.TopK <= 0 {
		c.TopK = d.TopK
	}
}

// APIKey 선택한 언어 모델의 API 키
func (c *Config) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}

// SetAPIKey 선택한 언어 모델의 API 키를 설정합니다 (실행 중 입력받은 키)
func (c *Config) SetAPIKey(key string) {
	if c.Provider == ProviderGemini {
		c.GeminiAPIKey = key
		return
	}
	c.OpenAIAPIKey = key
}

// NotionEnabled Notion 내보내기 설정 여부
func (c *Config) NotionEnabled() bool {
	return c.NotionAPIKey != "" && c.NotionParentPageID != ""
}

// Validate 언어 모델을 쓰는 명령 전에 필수 값을 검증합니다
func (c *Config) Validate() error {
	if c.Provider != ProviderOpenAI && c.Provider != ProviderGemini {
		return fmt.Errorf("지원하지 않는 provider입니다: %q (openai, gemini)", c.Provider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%w (%s)", ErrMissingAPIKey, c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature는 0과 2 사이여야 합니다: %v", c.Temperature)
	}
	return nil
}
