package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"goc-wiki-section/wiki"
)

// View bubbletea 뷰 함수
func (m *Model) View() string {
	if m.quitting {
		return "\n👋 안녕히 가세요!\n\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("📚 위키백과 섹션 도우미"))
	if m.deps.Model != "" {
		b.WriteString(" " + statusStyle.Render(m.deps.Model))
	}
	b.WriteString("\n\n")

	switch m.step {
	case stepURL:
		b.WriteString(promptStyle.Render("위키백과 문서 URL을 입력하세요 (Enter: 가져오기, Esc: 종료):"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.urlInput.View()))
		b.WriteString("\n")

	case stepCandidates, stepSections:
		b.WriteString(m.list.View())
		b.WriteString("\n")

	case stepSection:
		b.WriteString(headingStyle.Render("§ " + m.sectionLabel()))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")

	case stepLanguage:
		b.WriteString(headingStyle.Render("§ " + m.sectionLabel()))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("번역할 언어를 입력하세요 (Enter: 번역, Esc: 취소):"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.langInput.View()))
		b.WriteString("\n")

	case stepChat:
		b.WriteString(headingStyle.Render("💬 " + m.sectionLabel()))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(m.chatInput.View()))
		b.WriteString("\n")
	}

	switch {
	case m.busy != "":
		b.WriteString(loadingStyle.Render(m.spinner.View() + " " + m.busy))
	case m.err != nil:
		b.WriteString(errorStyle.Render("❌ 오류: " + errorText(m.err)))
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")

	if bindings := m.bindings(); len(bindings) > 0 {
		b.WriteString(m.help.ShortHelpView(bindings))
	}

	return b.String()
}

// errorText 알려진 오류는 사용자용 문장으로 바꿉니다
func errorText(err error) string {
	switch {
	case errors.Is(err, wiki.ErrInvalidURL):
		return "올바른 위키백과 문서 URL이 아닙니다."
	case errors.Is(err, wiki.ErrPageNotFound):
		var pe *wiki.PageError
		if errors.As(err, &pe) {
			return pe.Error()
		}
		return "문서가 존재하지 않습니다."
	}
	return err.Error()
}

// bindings 현재 단계의 도움말 키
func (m *Model) bindings() []key.Binding {
	switch m.step {
	case stepSection:
		keys := []key.Binding{m.keys.Summary, m.keys.Translate, m.keys.Chat, m.keys.Write}
		if m.deps.Notion != nil {
			keys = append(keys, m.keys.Notion)
		}
		return append(keys, m.keys.Back, m.keys.Quit)
	case stepLanguage:
		return []key.Binding{m.keys.Enter, m.keys.Back}
	case stepChat:
		return []key.Binding{m.keys.Enter, m.keys.Clear, m.keys.SaveChat, m.keys.Back}
	}
	return nil
}
