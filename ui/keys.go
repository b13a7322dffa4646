package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Enter     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Summary   key.Binding
	Translate key.Binding
	Chat      key.Binding
	Write     key.Binding
	Notion    key.Binding
	Clear     key.Binding
	SaveChat  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "확인")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "뒤로")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "종료")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Summary:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "요약")),
		Translate: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "번역")),
		Chat:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "대화")),
		Write:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "파일 저장")),
		Notion:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Notion")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "대화 지우기")),
		SaveChat:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "대화 저장")),
	}
}
