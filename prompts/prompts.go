// Package prompts 요약, 번역, 질의응답에 쓰는 프롬프트 템플릿.
// {text} 와 {language} 자리표시자를 사용하며 TOML 파일로 일부만 덮어쓸 수 있습니다
package prompts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Set 프롬프트 묶음
type Set struct {
	SummarySystem     string `toml:"summary_system"`
	SummaryUser       string `toml:"summary_user"`
	TranslationSystem string `toml:"translation_system"`
	TranslationUser   string `toml:"translation_user"`
	ChatSystem        string `toml:"chat_system"`
	ArticleSystem     string `toml:"article_system"`
}

// Default 기본 프롬프트
func Default() Set {
	return Set{
		SummarySystem:     "당신은 텍스트 요약을 전문으로 하는 도우미입니다.",
		SummaryUser:       "다음은 텍스트입니다. 간결하게 요약해 주세요: {text}",
		TranslationSystem: "당신은 텍스트 번역을 전문으로 하는 도우미입니다.",
		TranslationUser:   "다음은 텍스트입니다. {language}(으)로 번역해 주세요: {text}",
		ChatSystem:        "당신은 다음 섹션의 내용만을 바탕으로 질문에 답하는 도우미입니다: {text}",
		ArticleSystem: `당신은 위키백과 문서 도우미입니다. 아래 [Context]의 섹션들만을 바탕으로 질문에 답하세요.
모르는 내용은 지어내지 말고 모른다고 하세요.

[Context]
{text}`,
	}
}

// Load TOML 파일의 값으로 기본 프롬프트를 덮어씁니다. 파일이 없으면 기본값을 반환합니다
func Load(path string) (Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return set, nil
	}
	if err != nil {
		return set, fmt.Errorf("프롬프트 파일 읽기 실패: %w", err)
	}

	var override Set
	if err := toml.Unmarshal(data, &override); err != nil {
		return set, fmt.Errorf("프롬프트 파일 파싱 실패: %w", err)
	}

	set.merge(override)
	return set, nil
}

// Save 프롬프트를 TOML 파일로 저장합니다 (사용자 편집용 견본)
func Save(path string, set Set) error {
	data, err := toml.Marshal(set)
	if err != nil {
		return fmt.Errorf("프롬프트 직렬화 실패: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Set) merge(o Set) {
	pick := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	pick(&s.SummarySystem, o.SummarySystem)
	pick(&s.SummaryUser, o.SummaryUser)
	pick(&s.TranslationSystem, o.TranslationSystem)
	pick(&s.TranslationUser, o.TranslationUser)
	pick(&s.ChatSystem, o.ChatSystem)
	pick(&s.ArticleSystem, o.ArticleSystem)
}

// Render {text}, {language} 자리표시자를 채웁니다
func Render(template, text, language string) string {
	return strings.NewReplacer("{text}", text, "{language}", language).Replace(template)
}
