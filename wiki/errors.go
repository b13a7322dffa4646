package wiki

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidURL URL 에서 문서 제목을 찾을 수 없습니다
	ErrInvalidURL = errors.New("URL이 올바르지 않거나 문서 제목이 없습니다")

	// ErrPageNotFound 문서가 존재하지 않습니다
	ErrPageNotFound = errors.New("문서가 존재하지 않습니다")
)

// PageError 존재하지 않는 문서를 요청했을 때의 오류
type PageError struct {
	Title string
}

func (e *PageError) Error() string {
	return fmt.Sprintf("'%s' 문서가 존재하지 않습니다", e.Title)
}

// Unwrap errors.Is(err, ErrPageNotFound) 를 지원합니다
func (e *PageError) Unwrap() error {
	return ErrPageNotFound
}

// DisambiguationError 제목이 동음이의 문서를 가리킬 때의 오류, 후보 제목을 담습니다
type DisambiguationError struct {
	Title   string
	Options []string
}

func (e *DisambiguationError) Error() string {
	return fmt.Sprintf("'%s' 은(는) 동음이의 문서입니다. 후보: %s", e.Title, strings.Join(e.Options, ", "))
}
