// Package export 처리 결과를 파일이나 외부 서비스로 내보냅니다
package export

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Kind 내보낼 결과의 종류
type Kind string

const (
	KindSummary     Kind = "summary"
	KindTranslation Kind = "translation"
	KindChat        Kind = "chat"
	KindSection     Kind = "section"
)

// Document 내보낼 결과 하나
type Document struct {
	Kind     Kind
	Article  string // 문서 제목
	Section  string // 섹션 제목
	Language string // 번역 대상 언어 (번역일 때만)
	Content  string
}

// Title 내보낸 결과의 제목
func (d Document) Title() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s", d.Article, d.Section)
	switch d.Kind {
	case KindSummary:
		b.WriteString(" (요약)")
	case KindTranslation:
		fmt.Fprintf(&b, " (번역: %s)", d.Language)
	case KindChat:
		b.WriteString(" (대화)")
	}
	return b.String()
}

// Exporter 결과를 내보내고 위치(파일 경로, URL)를 반환합니다
type Exporter interface {
	Export(ctx context.Context, doc Document) (string, error)
}

// FileName "<kind>_<섹션>.txt" 형식의 안전한 파일 이름
func FileName(doc Document) string {
	name := sanitize(doc.Section)
	if name == "" {
		name = sanitize(doc.Article)
	}
	if name == "" {
		name = "page"
	}
	return fmt.Sprintf("%s_%s.txt", doc.Kind, name)
}

// sanitize 글자, 숫자, '-', '_' 외의 문자는 '_' 로 바꿉니다
func sanitize(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
