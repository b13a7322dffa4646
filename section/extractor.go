package section

import (
	"errors"
	"regexp"
	"strings"

	"goc-wiki-section/models"
)

// ErrNotFound 요청한 제목의 섹션이 없습니다
var ErrNotFound = errors.New("섹션을 찾을 수 없습니다")

// headingPattern 최상위 제목 줄 "== 제목 ==" ("===" 이상은 하위 제목이라 제외)
var headingPattern = regexp.MustCompile(`(?m)^==[ \t](.*?)[ \t]==\r?$`)

// heading 본문 안에서 찾은 제목 줄의 위치
type heading struct {
	title string
	start int // 제목 줄 시작
	end   int // 제목 줄 끝 (줄바꿈 제외)
}

// findHeadings 모든 최상위 제목 줄을 문서 순서대로 찾습니다
func findHeadings(text string) []heading {
	matches := headingPattern.FindAllStringSubmatchIndex(text, -1)
	headings := make([]heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, heading{
			title: strings.TrimSpace(text[m[2]:m[3]]),
			start: m[0],
			end:   m[1],
		})
	}
	return headings
}

// Titles 최상위 섹션 제목을 순서대로 반환합니다 (없으면 nil)
func Titles(text string) []string {
	var titles []string
	for _, h := range findHeadings(text) {
		titles = append(titles, h.title)
	}
	return titles
}

// Extract 주어진 제목의 첫 번째 섹션 본문을 반환합니다.
// 제목 줄 끝부터 다음 최상위 제목 줄 직전(없으면 문서 끝)까지이며, 없으면 false
func Extract(text, title string) (string, bool) {
	title = strings.TrimSpace(title)
	headings := findHeadings(text)

	for i, h := range headings {
		if h.title != title {
			continue
		}
		if i+1 < len(headings) {
			return text[h.end:headings[i+1].start], true
		}
		return text[h.end:], true
	}

	return "", false
}

// Split 문서를 첫 제목 앞 머리말과 섹션 목록으로 나눕니다.
// 머리말 + 각 섹션의 Heading + Body 를 이어 붙이면 원문과 같습니다
func Split(text string) (string, []models.Section) {
	headings := findHeadings(text)
	if len(headings) == 0 {
		return text, nil
	}

	sections := make([]models.Section, 0, len(headings))
	for i, h := range headings {
		bodyEnd := len(text)
		if i+1 < len(headings) {
			bodyEnd = headings[i+1].start
		}
		sections = append(sections, models.Section{
			Title:   h.title,
			Heading: text[h.start:h.end],
			Body:    text[h.end:bodyEnd],
		})
	}

	return text[:headings[0].start], sections
}

// Lookup Extract 와 같지만 찾지 못하면 ErrNotFound 를 반환합니다
func Lookup(text, title string) (string, error) {
	body, ok := Extract(text, title)
	if !ok {
		return "", ErrNotFound
	}
	return body, nil
}
