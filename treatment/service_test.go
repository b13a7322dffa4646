package treatment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goc-wiki-section/llm"
	"goc-wiki-section/llm/llmtest"
	"goc-wiki-section/models"
	"goc-wiki-section/prompts"
)

func newService(fake *llmtest.Fake) *Service {
	return NewService(fake, prompts.Default(), llm.DefaultOptions())
}

func TestSummarize_SendsSystemAndUserPrompt(t *testing.T) {
	fake := &llmtest.Fake{Answer: "short"}
	svc := newService(fake)

	summary, err := svc.Summarize(context.Background(), "Long section text")

	require.NoError(t, err)
	assert.Equal(t, "short", summary)
	call := fake.LastCall()
	require.Len(t, call, 2)
	assert.Equal(t, models.RoleSystem, call[0].Role)
	assert.Equal(t, prompts.Default().SummarySystem, call[0].Content)
	assert.Equal(t, models.RoleUser, call[1].Role)
	assert.Contains(t, call[1].Content, "Long section text")
	assert.Equal(t, llm.DefaultOptions(), fake.Options[0])
}

func TestSummarize_PropagatesError(t *testing.T) {
	apiErr := errors.New("quota exceeded")
	svc := newService(&llmtest.Fake{Err: apiErr})

	_, err := svc.Summarize(context.Background(), "x")

	assert.ErrorIs(t, err, apiErr)
}

func TestTranslate_IncludesLanguage(t *testing.T) {
	fake := &llmtest.Fake{Answer: "Hello"}
	svc := newService(fake)

	out, err := svc.Translate(context.Background(), "Bonjour", " anglais ")

	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
	user := fake.LastCall()[1].Content
	assert.Contains(t, user, "Bonjour")
	assert.Contains(t, user, "anglais")
}

func TestTranslate_RequiresLanguage(t *testing.T) {
	fake := &llmtest.Fake{Answer: "x"}
	svc := newService(fake)

	_, err := svc.Translate(context.Background(), "Bonjour", "  ")

	assert.ErrorIs(t, err, ErrNoLanguage)
	assert.Empty(t, fake.Calls)
}

func TestNewTranscript_SeedsSectionText(t *testing.T) {
	svc := newService(&llmtest.Fake{})

	tr := svc.NewTranscript("Section body")

	require.Equal(t, 1, tr.Len())
	assert.Equal(t, models.RoleSystem, tr.Messages()[0].Role)
	assert.Contains(t, tr.Messages()[0].Content, "Section body")
}

func TestAsk_AppendsQuestionAndAnswer(t *testing.T) {
	fake := &llmtest.Fake{Answers: []string{"a1", "a2"}}
	svc := newService(fake)
	tr := svc.NewTranscript("body")

	answer, err := svc.Ask(context.Background(), tr, "q1")
	require.NoError(t, err)
	assert.Equal(t, "a1", answer)
	assert.Equal(t, 3, tr.Len())

	_, err = svc.Ask(context.Background(), tr, "q2")
	require.NoError(t, err)
	assert.Equal(t, 5, tr.Len())

	// 두 번째 요청은 이전 대화 전체와 새 질문을 포함합니다
	second := fake.Calls[1]
	require.Len(t, second, 4)
	assert.Equal(t, "q1", second[1].Content)
	assert.Equal(t, "a1", second[2].Content)
	assert.Equal(t, models.Message{Role: models.RoleUser, Content: "q2"}, second[3])
}

func TestAsk_FailureLeavesTranscriptUnchanged(t *testing.T) {
	svc := newService(&llmtest.Fake{Err: errors.New("boom")})
	tr := svc.NewTranscript("body")

	_, err := svc.Ask(context.Background(), tr, "q")

	assert.Error(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestAsk_EmptyQuestion(t *testing.T) {
	fake := &llmtest.Fake{}
	svc := newService(fake)
	tr := svc.NewTranscript("body")

	_, err := svc.Ask(context.Background(), tr, "   ")

	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, fake.Calls)
	assert.Equal(t, 1, tr.Len())
}

func TestReply_LeavesHistoryUntouched(t *testing.T) {
	fake := &llmtest.Fake{Answer: "En 1802."}
	svc := newService(fake)
	history := svc.NewTranscript("Né en 1802.").Messages()

	answer, err := svc.Reply(context.Background(), history, "  Quand ?  ")

	require.NoError(t, err)
	assert.Equal(t, "En 1802.", answer)
	assert.Len(t, history, 1)
	call := fake.LastCall()
	require.Len(t, call, 2)
	assert.Equal(t, models.Message{Role: models.RoleUser, Content: "Quand ?"}, call[1])
}

func TestReply_EmptyQuestion(t *testing.T) {
	fake := &llmtest.Fake{}
	svc := newService(fake)

	_, err := svc.Reply(context.Background(), nil, " ")

	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Empty(t, fake.Calls)
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "fake", newService(&llmtest.Fake{}).ModelName())
}
