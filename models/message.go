package models

// Role 대화 메시지의 역할
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message 역할이 붙은 대화 메시지
type Message struct {
	Role    Role
	Content string
}
