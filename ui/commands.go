package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"goc-wiki-section/export"
	"goc-wiki-section/models"
)

// articleMsg 문서 로드 결과
type articleMsg struct {
	article *models.Article
	err     error
}

// resultMsg 요약 또는 번역 결과
type resultMsg struct {
	doc export.Document
	err error
}

// answerMsg 대화 답변 결과. 기록에는 Update 에서 추가합니다
type answerMsg struct {
	question string
	answer   string
	err      error
}

// exportMsg 내보내기 결과
type exportMsg struct {
	location string
	err      error
}

func fetchArticle(f Fetcher, rawURL string) tea.Cmd {
	return func() tea.Msg {
		article, err := f.FetchURL(context.Background(), rawURL)
		return articleMsg{article: article, err: err}
	}
}

// summarize doc.Content 를 요약으로 바꾼 결과를 돌려줍니다
func summarize(t Treater, text string, doc export.Document) tea.Cmd {
	return func() tea.Msg {
		out, err := t.Summarize(context.Background(), text)
		doc.Kind = export.KindSummary
		doc.Content = out
		return resultMsg{doc: doc, err: err}
	}
}

func translate(t Treater, text, language string, doc export.Document) tea.Cmd {
	return func() tea.Msg {
		out, err := t.Translate(context.Background(), text, language)
		doc.Kind = export.KindTranslation
		doc.Language = language
		doc.Content = out
		return resultMsg{doc: doc, err: err}
	}
}

// ask 대화 기록은 건드리지 않고, 미리 복사한 history 로 답을 받아옵니다
func ask(t Treater, history []models.Message, question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := t.Reply(context.Background(), history, question)
		return answerMsg{question: question, answer: answer, err: err}
	}
}

func exportDocument(e export.Exporter, doc export.Document) tea.Cmd {
	return func() tea.Msg {
		location, err := e.Export(context.Background(), doc)
		return exportMsg{location: location, err: err}
	}
}
