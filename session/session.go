// Package session 사용자 한 명의 대화형 세션: 현재 문서, 선택한 섹션, 대화 기록
package session

import (
	"strings"

	"github.com/google/uuid"

	"goc-wiki-section/chat"
	"goc-wiki-section/models"
	"goc-wiki-section/section"
)

// TranscriptFactory 섹션 본문으로 대화 기록을 만드는 함수 (treatment.Service.NewTranscript)
type TranscriptFactory func(sectionText string) *chat.Transcript

// Session 문서 하나를 탐색하는 동안의 상태.
// 대화 기록은 선택한 섹션에 묶여 있으며 다른 섹션을 고르면 버려집니다
type Session struct {
	ID      string
	Article *models.Article

	newTranscript TranscriptFactory
	section       string
	sectionText   string
	whole         bool
	transcript    *chat.Transcript
}

// New 문서에 대한 새 세션을 시작합니다
func New(article *models.Article, newTranscript TranscriptFactory) *Session {
	return &Session{
		ID:            uuid.NewString(),
		Article:       article,
		newTranscript: newTranscript,
	}
}

// Titles 문서의 최상위 섹션 제목
func (s *Session) Titles() []string {
	return section.Titles(s.Article.Content)
}

// Select 섹션을 선택합니다. 없는 제목이면 section.ErrNotFound
func (s *Session) Select(title string) error {
	title = strings.TrimSpace(title)
	body, err := section.Lookup(s.Article.Content, title)
	if err != nil {
		return err
	}
	if s.whole || title != s.section {
		s.transcript = nil
	}
	s.whole = false
	s.section = title
	s.sectionText = body
	return nil
}

// SelectPage 문서 전체를 선택합니다. Section 은 "" 가 됩니다
func (s *Session) SelectPage() {
	if !s.whole {
		s.transcript = nil
	}
	s.whole = true
	s.section = ""
	s.sectionText = s.Article.Content
}

// WholePage 문서 전체를 선택했는지 여부
func (s *Session) WholePage() bool {
	return s.whole
}

// Section 선택한 섹션 제목 (없으면 "")
func (s *Session) Section() string {
	return s.section
}

// SectionText 선택한 섹션 본문
func (s *Session) SectionText() string {
	return s.sectionText
}

// Transcript 선택한 섹션의 대화 기록. 처음 호출할 때 만듭니다
func (s *Session) Transcript() *chat.Transcript {
	if s.transcript == nil {
		s.transcript = s.newTranscript(s.sectionText)
	}
	return s.transcript
}

// ClearChat 대화 기록을 system 메시지만 남기고 지웁니다
func (s *Session) ClearChat() {
	if s.transcript != nil {
		s.transcript.Reset()
	}
}
