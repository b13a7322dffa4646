package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goc-wiki-section/models"
)

func TestToContents_SplitsSystemHistoryAndLast(t *testing.T) {
	system, history, last, err := toContents([]models.Message{
		{Role: models.RoleSystem, Content: "only this section"},
		{Role: models.RoleUser, Content: "q1"},
		{Role: models.RoleAssistant, Content: "a1"},
		{Role: models.RoleUser, Content: "q2"},
	})

	require.NoError(t, err)
	require.NotNil(t, system)
	assert.Equal(t, []genai.Part{genai.Text("only this section")}, system.Parts)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, []genai.Part{genai.Text("q2")}, last.Parts)
}

func TestToContents_NoSystem(t *testing.T) {
	system, history, last, err := toContents([]models.Message{{Role: models.RoleUser, Content: "q"}})

	require.NoError(t, err)
	assert.Nil(t, system)
	assert.Empty(t, history)
	assert.Equal(t, "user", last.Role)
}

func TestToContents_RequiresTrailingUser(t *testing.T) {
	_, _, _, err := toContents([]models.Message{{Role: models.RoleSystem, Content: "s"}})
	assert.ErrorIs(t, err, ErrNoUserMessage)

	_, _, _, err = toContents([]models.Message{
		{Role: models.RoleUser, Content: "q"},
		{Role: models.RoleAssistant, Content: "a"},
	})
	assert.ErrorIs(t, err, ErrNoUserMessage)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	c, err := New(context.Background(), "", "")

	assert.Error(t, err)
	assert.Nil(t, c)
}
