package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"goc-wiki-section/logger"
	"goc-wiki-section/models"
)

const (
	// DefaultAPIURL 언어 코드가 %s 자리에 들어갑니다
	DefaultAPIURL    = "https://%s.wikipedia.org/w/api.php"
	DefaultLanguage  = "fr"
	DefaultUserAgent = "goc-wiki-section/1.0 (https://github.com/goc-wiki-section)"
	requestTimeout   = 30 * time.Second
	maxResponseBytes = 32 << 20
)

// Options Loader 설정
type Options struct {
	APIURL     string // MediaWiki api.php 주소, %s 가 있으면 언어 코드로 치환
	Language   string // URL 에 언어가 없을 때 사용할 기본 언어
	UserAgent  string
	HTTPClient *http.Client
}

// Loader MediaWiki API 를 사용하여 문서를 로드하는 구조체
type Loader struct {
	apiURL     string
	language   string
	userAgent  string
	httpClient *http.Client
}

// NewLoader 새로운 위키백과 로더를 생성합니다
func NewLoader(opts Options) *Loader {
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: requestTimeout}
	}

	return &Loader{
		apiURL:     opts.APIURL,
		language:   opts.Language,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
	}
}

// Language 기본 언어 코드
func (l *Loader) Language() string {
	return l.language
}

// FetchURL URL 에서 제목과 언어를 구해 문서를 가져옵니다
func (l *Loader) FetchURL(ctx context.Context, rawURL string) (*models.Article, error) {
	title, err := TitleFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	article, err := l.fetch(ctx, LanguageFromURL(rawURL, l.language), title)
	if err != nil {
		return nil, err
	}
	article.URL = strings.TrimSpace(rawURL)
	return article, nil
}

// FetchPage 기본 언어로 제목에 해당하는 문서를 가져옵니다
func (l *Loader) FetchPage(ctx context.Context, title string) (*models.Article, error) {
	return l.fetch(ctx, l.language, title)
}

// queryResponse action=query&formatversion=2 응답 중 필요한 부분
type queryResponse struct {
	Query struct {
		Pages []struct {
			PageID    int               `json:"pageid"`
			Title     string            `json:"title"`
			Missing   bool              `json:"missing"`
			Invalid   bool              `json:"invalid"`
			Extract   string            `json:"extract"`
			FullURL   string            `json:"fullurl"`
			PageProps map[string]string `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// fetch 본문(평문, "== 제목 ==" 섹션 표시)과 동음이의 여부를 한 번에 조회합니다
func (l *Loader) fetch(ctx context.Context, lang, title string) (*models.Article, error) {
	logger.Debug("위키백과 조회: lang=%s title=%q", lang, title)

	params := url.Values{
		"action":          {"query"},
		"format":          {"json"},
		"formatversion":   {"2"},
		"prop":            {"extracts|info|pageprops"},
		"explaintext":     {"1"},
		"exsectionformat": {"wiki"},
		"ppprop":          {"disambiguation"},
		"inprop":          {"url"},
		"redirects":       {"1"},
		"titles":          {title},
	}

	var resp queryResponse
	if err := l.get(ctx, lang, params, &resp); err != nil {
		return nil, fmt.Errorf("문서 조회 실패: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("MediaWiki 오류: %s: %s", resp.Error.Code, resp.Error.Info)
	}
	if len(resp.Query.Pages) == 0 {
		return nil, &PageError{Title: title}
	}

	page := resp.Query.Pages[0]
	if page.Missing || page.Invalid {
		return nil, &PageError{Title: title}
	}

	if _, ok := page.PageProps["disambiguation"]; ok {
		options, err := l.disambiguationOptions(ctx, lang, page.Title)
		if err != nil {
			return nil, err
		}
		return nil, &DisambiguationError{Title: page.Title, Options: options}
	}

	logger.Debug("문서 %q: %d자", page.Title, len([]rune(page.Extract)))

	return &models.Article{
		Title:    page.Title,
		URL:      page.FullURL,
		Language: lang,
		Content:  page.Extract,
	}, nil
}

// get api.php 를 호출하고 JSON 응답을 디코딩합니다
func (l *Loader) get(ctx context.Context, lang string, params url.Values, out any) error {
	endpoint := l.apiURL
	if strings.Contains(endpoint, "%s") {
		endpoint = fmt.Sprintf(endpoint, lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
