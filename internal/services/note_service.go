package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"briefly/internal/models"

	log "github.com/sirupsen/logrus"
)

// NoteService produces meeting summaries and study notes from a completion provider.
type NoteService struct {
	completion    CompletionService
	summaryPrompt string
	notesPrompt   string
	quizPrompt    string
}

// Prompts holds the templates a NoteService renders. Empty fields use the built-in defaults.
type Prompts struct {
	Summary string
	Notes   string
	Quiz    string
}

func NewNoteService(completion CompletionService, prompts Prompts) *NoteService {
	s := &NoteService{
		completion:    completion,
		summaryPrompt: prompts.Summary,
		notesPrompt:   prompts.Notes,
		quizPrompt:    prompts.Quiz,
	}
	if s.summaryPrompt == "" {
		s.summaryPrompt = DefaultSummaryPrompt
	}
	if s.notesPrompt == "" {
		s.notesPrompt = DefaultNotesPrompt
	}
	if s.quizPrompt == "" {
		s.quizPrompt = DefaultQuizPrompt
	}
	return s
}

// Summarize turns raw meeting notes into a structured summary.
func (s *NoteService) Summarize(ctx context.Context, meetingNotes string) (string, error) {
	if strings.TrimSpace(meetingNotes) == "" {
		return "", fmt.Errorf("%w: meeting notes are empty", models.ErrValidation)
	}
	return s.complete(ctx, RenderPrompt(s.summaryPrompt, meetingNotes, ""))
}

// GenerateNotes turns lecture text into study notes and quiz questions.
// A failed quiz does not fail the notes; quiz is nil in that case.
func (s *NoteService) GenerateNotes(ctx context.Context, lectureNotes, subject string) (notes string, quiz *string, err error) {
	if strings.TrimSpace(lectureNotes) == "" {
		return "", nil, fmt.Errorf("%w: lecture notes are empty", models.ErrValidation)
	}
	if subject == "" {
		subject = models.DefaultSubject
	}

	notes, err = s.complete(ctx, RenderPrompt(s.notesPrompt, lectureNotes, subject))
	if err != nil {
		return "", nil, err
	}

	q, err := s.complete(ctx, RenderPrompt(s.quizPrompt, lectureNotes, subject))
	if err != nil {
		log.Warnf("Quiz generation failed for subject %s: %v", subject, err)
		return notes, nil, nil
	}
	return notes, &q, nil
}

func (s *NoteService) complete(ctx context.Context, prompt string) (string, error) {
	if s.completion == nil {
		return "", errors.New("no completion provider configured")
	}
	out, err := s.completion.GenerateChatCompletion(ctx, []ChatMessage{
		{Role: ChatMessageRoleUser, Content: prompt},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
