package wiki

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	titlePattern = regexp.MustCompile(`/wiki/([^#?]+)`)
	hostPattern  = regexp.MustCompile(`^([a-z][a-z0-9-]*)\.(?:m\.)?wikipedia\.org$`)
)

// TitleFromURL 위키백과 URL 에서 문서 제목을 추출합니다 ("_" 는 공백으로)
func TitleFromURL(rawURL string) (string, error) {
	m := titlePattern.FindStringSubmatch(strings.TrimSpace(rawURL))
	if m == nil {
		return "", ErrInvalidURL
	}

	title := m[1]
	if unescaped, err := url.PathUnescape(title); err == nil {
		title = unescaped
	}
	title = strings.TrimSpace(strings.ReplaceAll(title, "_", " "))
	if title == "" {
		return "", ErrInvalidURL
	}

	return title, nil
}

// LanguageFromURL 호스트 이름(fr.wikipedia.org)에서 언어 코드를 구합니다. 알 수 없으면 fallback
func LanguageFromURL(rawURL, fallback string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return fallback
	}
	m := hostPattern.FindStringSubmatch(strings.ToLower(u.Hostname()))
	if m == nil || m[1] == "www" {
		return fallback
	}
	return m[1]
}
