package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"briefly/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompletion struct {
	mock.Mock
}

func (m *mockCompletion) GenerateChatCompletion(ctx context.Context, messages []ChatMessage) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *mockCompletion) Status() ProviderStatus { return ProviderStatusActive }
func (m *mockCompletion) Name() string           { return "mock" }
func (m *mockCompletion) ModelName() string      { return "mock-1" }

// promptContains matches a single user message whose content contains all parts.
func promptContains(parts ...string) interface{} {
	return mock.MatchedBy(func(msgs []ChatMessage) bool {
		if len(msgs) != 1 || msgs[0].Role != ChatMessageRoleUser {
			return false
		}
		for _, p := range parts {
			if !strings.Contains(msgs[0].Content, p) {
				return false
			}
		}
		return true
	})
}

func TestNoteService_Summarize(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, promptContains("key decisions, action items", "Alice owns QA")).
		Return("  ## Decisions\n- QA: Alice\n", nil).Once()

	svc := NewNoteService(m, Prompts{})
	got, err := svc.Summarize(context.Background(), "Alice owns QA")
	require.NoError(t, err)
	assert.Equal(t, "## Decisions\n- QA: Alice", got)
	m.AssertExpectations(t)
}

func TestNoteService_SummarizeEmpty(t *testing.T) {
	m := new(mockCompletion)
	svc := NewNoteService(m, Prompts{})
	_, err := svc.Summarize(context.Background(), "  ")
	assert.ErrorIs(t, err, models.ErrValidation)
	m.AssertNotCalled(t, "GenerateChatCompletion", mock.Anything, mock.Anything)
}

func TestNoteService_SummarizeProviderError(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	_, err := NewNoteService(m, Prompts{}).Summarize(context.Background(), "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestNoteService_GenerateNotes(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, promptContains("NOTES", "Chemistry", "covalent bonds")).Return("notes out", nil).Once()
	m.On("GenerateChatCompletion", mock.Anything, promptContains("QUIZ", "Chemistry", "covalent bonds")).Return("quiz out", nil).Once()

	svc := NewNoteService(m, Prompts{Notes: "NOTES {{SUBJECT}}: {{TEXT}}", Quiz: "QUIZ {{SUBJECT}}: {{TEXT}}"})
	notes, quiz, err := svc.GenerateNotes(context.Background(), "covalent bonds", "Chemistry")
	require.NoError(t, err)
	assert.Equal(t, "notes out", notes)
	require.NotNil(t, quiz)
	assert.Equal(t, "quiz out", *quiz)
	m.AssertExpectations(t)
}

func TestNoteService_GenerateNotesDefaultSubject(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, promptContains("study assistant for General")).Return("n", nil).Once()
	m.On("GenerateChatCompletion", mock.Anything, promptContains("following General lecture")).Return("q", nil).Once()

	_, _, err := NewNoteService(m, Prompts{}).GenerateNotes(context.Background(), "text", "")
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func TestNoteService_GenerateNotesQuizFailureKeepsNotes(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, promptContains("NOTES")).Return("notes out", nil).Once()
	m.On("GenerateChatCompletion", mock.Anything, promptContains("QUIZ")).Return("", errors.New("timeout")).Once()

	svc := NewNoteService(m, Prompts{Notes: "NOTES {{TEXT}}", Quiz: "QUIZ {{TEXT}}"})
	notes, quiz, err := svc.GenerateNotes(context.Background(), "text", "Math")
	require.NoError(t, err)
	assert.Equal(t, "notes out", notes)
	assert.Nil(t, quiz)
}

func TestNoteService_GenerateNotesFailure(t *testing.T) {
	m := new(mockCompletion)
	m.On("GenerateChatCompletion", mock.Anything, mock.Anything).Return("", errors.New("model overloaded")).Once()

	_, _, err := NewNoteService(m, Prompts{}).GenerateNotes(context.Background(), "text", "Math")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
	m.AssertNumberOfCalls(t, "GenerateChatCompletion", 1)
}

func TestRenderPrompt(t *testing.T) {
	assert.Equal(t, "History: the war {{ok}}", RenderPrompt("{{SUBJECT}}: {{TEXT}}", "the war {{ok}}", "History"))
}
