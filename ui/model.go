// Package ui 위키백과 섹션을 고르고 요약, 번역, 대화를 하는 터미널 UI
package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"goc-wiki-section/chat"
	"goc-wiki-section/export"
	"goc-wiki-section/models"
	"goc-wiki-section/notion"
	"goc-wiki-section/section"
	"goc-wiki-section/session"
	"goc-wiki-section/wiki"
)

// Fetcher URL 로 문서를 가져옵니다 (*wiki.Loader)
type Fetcher interface {
	FetchURL(ctx context.Context, rawURL string) (*models.Article, error)
}

// Treater 섹션 처리 서비스 (*treatment.Service)
type Treater interface {
	Summarize(ctx context.Context, text string) (string, error)
	Translate(ctx context.Context, text, language string) (string, error)
	NewTranscript(sectionText string) *chat.Transcript
	Reply(ctx context.Context, history []models.Message, question string) (string, error)
}

// Deps UI 가 사용하는 서비스
type Deps struct {
	Fetcher  Fetcher
	Treater  Treater
	Files    export.Exporter
	Notion   export.Exporter // nil 이면 n 키 비활성
	Language string          // 후보 문서 URL 을 만들 때 쓰는 기본 언어
	Model    string          // 제목 줄에 표시할 모델 이름
}

type step int

const (
	stepURL step = iota
	stepCandidates
	stepSections
	stepSection
	stepLanguage
	stepChat
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// item 섹션 또는 동음이의 후보 목록의 항목
type item struct {
	title string
	desc  string
	whole bool
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// Model TUI 애플리케이션 모델
type Model struct {
	deps    Deps
	keys    keyMap
	step    step
	session *session.Session
	url     string
	lang    string // 후보 문서의 언어

	urlInput  textinput.Model
	langInput textinput.Model
	chatInput textinput.Model
	list      list.Model
	viewport  viewport.Model
	spinner   spinner.Model
	help      help.Model
	renderer  *glamour.TermRenderer

	busy     string // 진행 중인 작업, "" 이면 대기
	status   string
	err      error
	result   *export.Document // 마지막 요약 또는 번역
	width    int
	height   int
	quitting bool
}

// NewModel 새로운 TUI 모델을 생성합니다. initialURL 이 있으면 바로 가져옵니다
func NewModel(deps Deps, initialURL string) *Model {
	if deps.Language == "" {
		deps.Language = wiki.DefaultLanguage
	}

	urlInput := textinput.New()
	urlInput.Placeholder = "https://fr.wikipedia.org/wiki/Victor_Hugo"
	urlInput.Prompt = "🔗 "
	urlInput.Focus()

	langInput := textinput.New()
	langInput.Placeholder = "English"
	langInput.Prompt = "🌐 "
	langInput.CharLimit = 64

	chatInput := textinput.New()
	chatInput.Placeholder = "섹션에 대해 질문하세요"
	chatInput.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = loadingStyle

	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight-4)
	l.DisableQuitKeybindings()

	m := &Model{
		deps:      deps,
		keys:      newKeyMap(),
		urlInput:  urlInput,
		langInput: langInput,
		chatInput: chatInput,
		list:      l,
		viewport:  viewport.New(defaultWidth, defaultHeight-6),
		spinner:   sp,
		help:      help.New(),
	}
	m.resize(defaultWidth, defaultHeight)

	if u := strings.TrimSpace(initialURL); u != "" {
		m.urlInput.SetValue(u)
		m.url = u
		m.busy = "문서를 가져오는 중..."
	}
	return m
}

// Init bubbletea 초기화 함수
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick}
	if m.busy != "" {
		cmds = append(cmds, fetchArticle(m.deps.Fetcher, m.url))
	}
	return tea.Batch(cmds...)
}

// Update bubbletea 업데이트 함수
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case articleMsg:
		return m.onArticle(msg)

	case resultMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		doc := msg.doc
		m.result = &doc
		m.status = "w: 파일로 저장, n: Notion 으로 내보내기, esc: 섹션 본문"
		m.showText()
		return m, nil

	case answerMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		transcript := m.session.Transcript()
		transcript.Append(models.RoleUser, msg.question)
		transcript.Append(models.RoleAssistant, msg.answer)
		m.chatInput.Reset()
		m.showChat()
		return m, nil

	case exportMsg:
		m.busy = ""
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "💾 저장됨: " + msg.location
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.busy != "" {
			return m, nil
		}
		switch m.step {
		case stepURL:
			return m.updateURL(msg)
		case stepCandidates, stepSections:
			return m.updateList(msg)
		case stepSection:
			return m.updateSection(msg)
		case stepLanguage:
			return m.updateLanguage(msg)
		case stepChat:
			return m.updateChat(msg)
		}
	}

	return m.updateFocused(msg)
}

// updateFocused 현재 단계의 입력 컴포넌트에 메시지를 넘깁니다
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.step {
	case stepURL:
		m.urlInput, cmd = m.urlInput.Update(msg)
	case stepCandidates, stepSections:
		m.list, cmd = m.list.Update(msg)
	case stepSection:
		m.viewport, cmd = m.viewport.Update(msg)
	case stepLanguage:
		m.langInput, cmd = m.langInput.Update(msg)
	case stepChat:
		m.chatInput, cmd = m.chatInput.Update(msg)
		// 입력 중인 글자로 스크롤하지 않도록 방향키만 넘깁니다
		if k, ok := msg.(tea.KeyMsg); !ok || isScrollKey(k) {
			var vcmd tea.Cmd
			m.viewport, vcmd = m.viewport.Update(msg)
			cmd = tea.Batch(cmd, vcmd)
		}
	}
	return m, cmd
}

func isScrollKey(k tea.KeyMsg) bool {
	switch k.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		return true
	}
	return false
}

func (m *Model) updateURL(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		u := strings.TrimSpace(m.urlInput.Value())
		if u == "" {
			return m, nil
		}
		return m, m.startFetch(u)
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return m, tea.Quit
	}
	return m.updateFocused(msg)
}

func (m *Model) startFetch(rawURL string) tea.Cmd {
	m.url = rawURL
	m.err = nil
	m.status = ""
	m.busy = "문서를 가져오는 중..."
	return fetchArticle(m.deps.Fetcher, rawURL)
}

func (m *Model) onArticle(msg articleMsg) (tea.Model, tea.Cmd) {
	m.busy = ""
	if msg.err != nil {
		var disambig *wiki.DisambiguationError
		if errors.As(msg.err, &disambig) && len(disambig.Options) > 0 {
			m.lang = wiki.LanguageFromURL(m.url, m.deps.Language)
			items := make([]list.Item, len(disambig.Options))
			for i, opt := range disambig.Options {
				items[i] = item{title: opt, desc: "동음이의 후보"}
			}
			m.setList(fmt.Sprintf("'%s' 은(는) 여러 문서를 가리킵니다", disambig.Title), items)
			m.step = stepCandidates
			return m, nil
		}
		m.err = msg.err
		m.step = stepURL
		m.urlInput.Focus()
		return m, nil
	}

	m.session = session.New(msg.article, m.deps.Treater.NewTranscript)
	m.result = nil
	m.setList("📄 "+msg.article.Title, sectionItems(msg.article))
	m.step = stepSections
	if len(m.session.Titles()) == 0 {
		m.status = "이 문서에는 섹션이 없습니다. 전체 문서를 사용할 수 있습니다."
	}
	return m, nil
}

// sectionItems "전체 문서" 항목과 최상위 섹션들
func sectionItems(article *models.Article) []list.Item {
	_, sections := section.Split(article.Content)
	items := make([]list.Item, 0, len(sections)+1)
	items = append(items, item{
		title: "전체 문서",
		desc:  fmt.Sprintf("%d자", len([]rune(article.Content))),
		whole: true,
	})
	for _, sec := range sections {
		items = append(items, item{
			title: sec.Title,
			desc:  fmt.Sprintf("%d자", len([]rune(strings.TrimSpace(sec.Body)))),
		})
	}
	return items
}

func (m *Model) setList(title string, items []list.Item) {
	m.list.ResetFilter()
	m.list.SetItems(items)
	m.list.ResetSelected()
	m.list.Title = title
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		return m.updateFocused(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.list.FilterState() == list.FilterApplied {
			m.list.ResetFilter()
			return m, nil
		}
		m.step = stepURL
		m.err = nil
		m.status = ""
		return m, m.urlInput.Focus()

	case key.Matches(msg, m.keys.Enter):
		selected, ok := m.list.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		if m.step == stepCandidates {
			return m, m.startFetch(candidateURL(m.lang, selected.title))
		}
		return m.openSection(selected)
	}
	return m.updateFocused(msg)
}

// candidateURL 동음이의 후보 제목의 문서 URL
func candidateURL(lang, title string) string {
	return fmt.Sprintf("https://%s.wikipedia.org/wiki/%s", lang, url.PathEscape(strings.ReplaceAll(title, " ", "_")))
}

func (m *Model) openSection(selected item) (tea.Model, tea.Cmd) {
	if selected.whole {
		m.session.SelectPage()
	} else if err := m.session.Select(selected.title); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.status = ""
	m.result = nil
	m.step = stepSection
	m.showText()
	return m, nil
}

// sectionLabel 선택한 섹션의 표시 이름
func (m *Model) sectionLabel() string {
	if m.session == nil {
		return ""
	}
	if m.session.WholePage() {
		return m.session.Article.Title + " (전체 문서)"
	}
	return m.session.Section()
}

// document 현재 보고 있는 내용 (결과가 있으면 결과, 없으면 섹션 본문)
func (m *Model) document() export.Document {
	if m.result != nil {
		return *m.result
	}
	return export.Document{
		Kind:    export.KindSection,
		Article: m.session.Article.Title,
		Section: m.session.Section(),
		Content: strings.TrimSpace(m.session.SectionText()),
	}
}

func (m *Model) chatDocument() export.Document {
	return export.Document{
		Kind:    export.KindChat,
		Article: m.session.Article.Title,
		Section: m.session.Section(),
		Content: m.session.Transcript().Text(),
	}
}

func (m *Model) updateSection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.result != nil {
			m.result = nil
			m.status = ""
			m.showText()
			return m, nil
		}
		m.step = stepSections
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Summary):
		m.busy = "요약하는 중..."
		m.status = ""
		return m, summarize(m.deps.Treater, m.session.SectionText(), m.baseDocument())

	case key.Matches(msg, m.keys.Translate):
		m.step = stepLanguage
		m.status = ""
		return m, m.langInput.Focus()

	case key.Matches(msg, m.keys.Chat):
		m.step = stepChat
		m.status = ""
		m.showChat()
		return m, m.chatInput.Focus()

	case key.Matches(msg, m.keys.Write):
		return m, m.startExport(m.deps.Files, m.document())

	case key.Matches(msg, m.keys.Notion):
		if m.deps.Notion == nil {
			m.err = notion.ErrNotConfigured
			return m, nil
		}
		return m, m.startExport(m.deps.Notion, m.document())
	}
	return m.updateFocused(msg)
}

// baseDocument 처리 결과가 채워질 문서 정보
func (m *Model) baseDocument() export.Document {
	return export.Document{
		Article: m.session.Article.Title,
		Section: m.session.Section(),
	}
}

func (m *Model) startExport(e export.Exporter, doc export.Document) tea.Cmd {
	m.busy = "저장하는 중..."
	m.status = ""
	return exportDocument(e, doc)
}

func (m *Model) updateLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.langInput.Blur()
		m.step = stepSection
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		language := strings.TrimSpace(m.langInput.Value())
		if language == "" {
			return m, nil
		}
		m.langInput.Blur()
		m.step = stepSection
		m.err = nil
		m.busy = fmt.Sprintf("%s(으)로 번역하는 중...", language)
		return m, translate(m.deps.Treater, m.session.SectionText(), language, m.baseDocument())
	}
	return m.updateFocused(msg)
}

func (m *Model) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.chatInput.Blur()
		m.step = stepSection
		m.err = nil
		m.showText()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.session.ClearChat()
		m.err = nil
		m.status = "🧹 대화를 지웠습니다."
		m.showChat()
		return m, nil

	case key.Matches(msg, m.keys.SaveChat):
		return m, m.startExport(m.deps.Files, m.chatDocument())

	case key.Matches(msg, m.keys.Enter):
		question := strings.TrimSpace(m.chatInput.Value())
		if question == "" {
			return m, nil
		}
		m.err = nil
		m.status = ""
		m.busy = "답변을 기다리는 중..."
		return m, ask(m.deps.Treater, m.session.Transcript().Messages(), question)
	}
	return m.updateFocused(msg)
}

// showText 섹션 본문 또는 마지막 결과를 뷰포트에 표시합니다
func (m *Model) showText() {
	if m.result != nil {
		title := "📝 요약"
		if m.result.Kind == export.KindTranslation {
			title = "🌐 번역 (" + m.result.Language + ")"
		}
		m.viewport.SetContent(headingStyle.Render(title) + "\n\n" + resultStyle.Width(m.width-4).Render(m.result.Content))
	} else {
		m.viewport.SetContent(strings.TrimSpace(m.session.SectionText()))
	}
	m.viewport.GotoTop()
}

// showChat 대화 기록을 마크다운으로 렌더링해 표시합니다
func (m *Model) showChat() {
	md := m.session.Transcript().Markdown()
	if strings.TrimSpace(md) == "" {
		md = "_아직 대화가 없습니다. 질문을 입력하세요._"
	}
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			md = out
		}
	}
	m.viewport.SetContent(md)
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.list.SetSize(width, height-4)
	m.viewport.Width = width
	m.viewport.Height = max(height-7, 3)
	m.urlInput.Width = width - 6
	m.chatInput.Width = width - 6
	m.help.Width = width

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err == nil {
		m.renderer = renderer
	}
	if m.step == stepChat && m.session != nil {
		m.showChat()
	}
}

// Run TUI 애플리케이션을 실행합니다
func Run(deps Deps, initialURL string) error {
	model := NewModel(deps, initialURL)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
