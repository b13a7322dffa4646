package wiki

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *apiError `json:"error"`
}

// disambiguationOptions 동음이의 문서의 HTML 에서 후보 제목을 가져옵니다
func (l *Loader) disambiguationOptions(ctx context.Context, lang, title string) ([]string, error) {
	params := url.Values{
		"action":        {"parse"},
		"format":        {"json"},
		"formatversion": {"2"},
		"prop":          {"text"},
		"redirects":     {"1"},
		"page":          {title},
	}

	var resp parseResponse
	if err := l.get(ctx, lang, params, &resp); err != nil {
		return nil, fmt.Errorf("동음이의 문서 조회 실패: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("MediaWiki 오류: %s: %s", resp.Error.Code, resp.Error.Info)
	}

	return ParseOptions(resp.Parse.Text)
}

// ParseOptions 목록 항목마다 첫 번째 링크의 제목을 후보로 모읍니다 (목차 항목 제외, 중복 제거)
func ParseOptions(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var options []string
	seen := make(map[string]bool)

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		if class, _ := li.Attr("class"); strings.Contains(class, "tocsection") {
			return
		}

		link := li.Find("a").First()
		if link.Length() == 0 {
			return
		}

		option, ok := link.Attr("title")
		if !ok || strings.TrimSpace(option) == "" {
			option = link.Text()
		}
		option = strings.TrimSpace(option)
		if option == "" || seen[option] {
			return
		}

		seen[option] = true
		options = append(options, option)
	})

	return options, nil
}
