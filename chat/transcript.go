// Package chat 섹션 하나에 대한 질의응답 대화 기록
package chat

import (
	"fmt"
	"strings"

	"goc-wiki-section/models"
)

// Transcript 역할이 붙은 메시지의 순서 있는 기록.
// 첫 메시지는 항상 섹션 본문을 담은 system 메시지이며, 세션 동안은 뒤에 추가만 됩니다
type Transcript struct {
	seed     models.Message
	messages []models.Message
}

// New system 메시지 하나로 시작하는 대화 기록을 만듭니다
func New(systemPrompt string) *Transcript {
	seed := models.Message{Role: models.RoleSystem, Content: systemPrompt}
	return &Transcript{
		seed:     seed,
		messages: []models.Message{seed},
	}
}

// Append 메시지를 끝에 추가합니다
func (t *Transcript) Append(role models.Role, content string) {
	t.messages = append(t.messages, models.Message{Role: role, Content: content})
}

// Messages 전체 메시지의 복사본 (API 호출용)
func (t *Transcript) Messages() []models.Message {
	out := make([]models.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len system 메시지를 포함한 메시지 수
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Turns system 메시지를 뺀 user/assistant 메시지
func (t *Transcript) Turns() []models.Message {
	var turns []models.Message
	for _, m := range t.messages {
		if m.Role != models.RoleSystem {
			turns = append(turns, m)
		}
	}
	return turns
}

// Reset system 메시지만 남기고 대화를 지웁니다
func (t *Transcript) Reset() {
	t.messages = []models.Message{t.seed}
}

// Text 다운로드용 평문 ("User: ..." / "Assistant: ..." 한 줄씩)
func (t *Transcript) Text() string {
	var b strings.Builder
	for _, m := range t.Turns() {
		fmt.Fprintf(&b, "%s: %s\n", label(m.Role), m.Content)
	}
	return b.String()
}

// Markdown 화면 표시용 마크다운
func (t *Transcript) Markdown() string {
	var b strings.Builder
	for _, m := range t.Turns() {
		fmt.Fprintf(&b, "**%s**: %s\n\n", label(m.Role), m.Content)
	}
	return b.String()
}

func label(r models.Role) string {
	if r == models.RoleAssistant {
		return "Assistant"
	}
	return "User"
}
