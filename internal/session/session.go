// Package session holds the state a front end renders for one tool window:
// the input, the chosen subject, the last result and whether a request is in flight.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"briefly/internal/apiclient"
	"briefly/internal/fileio"
	"briefly/internal/models"
	"briefly/internal/task"

	log "github.com/sirupsen/logrus"
)

// Client is the part of the API client a session needs.
type Client interface {
	Summarize(ctx context.Context, meetingNotes string) (models.SummaryResult, error)
	GenerateNotes(ctx context.Context, lectureNotes, subject string) (models.StudyNotesResult, error)
}

// State is a snapshot of a session.
type State struct {
	Kind      models.Kind
	Input     string
	Subject   string
	Output    string
	Quiz      string
	Pending   bool
	LastError error
}

// Session is safe for use from the presentation goroutine and the completion goroutine.
type Session struct {
	mu     sync.Mutex
	client Client
	state  State
}

// New creates an empty session for the given tool.
func New(kind models.Kind, client Client) *Session {
	return &Session{
		client: client,
		state:  State{Kind: kind, Subject: models.DefaultSubject},
	}
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Input = text
}

// SetSubject selects the study subject. Only models.Subjects are accepted.
func (s *Session) SetSubject(subject string) error {
	if !models.IsSubject(subject) {
		return fmt.Errorf("%w: %q (choose one of %s)", models.ErrUnknownSubject, subject, strings.Join(models.Subjects, ", "))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Subject = subject
	return nil
}

// Submit validates the input and starts the request in the background.
// Empty input returns models.ErrEmptyInput without touching the network, and a
// second Submit before Apply returns models.ErrRequestPending.
func (s *Session) Submit(ctx context.Context) (*task.Future[models.Display], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.TrimSpace(s.state.Input)
	if text == "" {
		return nil, models.ErrEmptyInput
	}
	if s.state.Pending {
		return nil, models.ErrRequestPending
	}

	s.state.Pending = true
	s.state.Output = models.ProgressText(s.state.Kind)
	s.state.Quiz = ""
	s.state.LastError = nil

	kind, subject, client := s.state.Kind, s.state.Subject, s.client
	log.Debugf("Submitting %s request (%d chars)", kind, len(text))

	return task.Go(ctx, func(ctx context.Context) (models.Display, error) {
		return call(ctx, client, kind, text, subject)
	}), nil
}

// Apply records a completed request. It is the only way Pending is cleared.
func (s *Session) Apply(c task.Completion[models.Display]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Pending = false
	s.state.Output = c.Result.Primary
	s.state.Quiz = c.Result.Secondary
	s.state.LastError = c.Err
	if c.Err != nil && s.state.Output == "" {
		s.state.Output = Render(s.state.Kind, c.Err).Primary
	}
	if c.Err != nil {
		log.Debugf("%s request failed: %v", s.state.Kind, c.Err)
	}
}

// Upload replaces the input with the contents of path.
// On error the input is left as it was.
func (s *Session) Upload(path string) error {
	content, err := fileio.ReadInput(path)
	if err != nil {
		return err
	}
	s.SetInput(content)
	return nil
}

// Export writes the current output to path exactly as displayed.
func (s *Session) Export(path string) error {
	st := s.Snapshot()
	if st.Pending {
		return models.ErrRequestPending
	}
	if st.Output == "" {
		return models.ErrNothingToExport
	}
	return fileio.WriteOutput(path, st.Output)
}

// Clear resets the input and result areas. The subject and any in-flight request are kept.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Input = ""
	s.state.Output = ""
	s.state.Quiz = ""
	s.state.LastError = nil
}

// call runs one request and converts its outcome into display strings.
func call(ctx context.Context, client Client, kind models.Kind, text, subject string) (models.Display, error) {
	switch kind {
	case models.KindStudy:
		res, err := client.GenerateNotes(ctx, text, subject)
		if err != nil {
			return Render(kind, err), err
		}
		return models.Display{Primary: res.Notes, Secondary: res.Quiz}, nil
	default:
		res, err := client.Summarize(ctx, text)
		if err != nil {
			return Render(kind, err), err
		}
		return models.Display{Primary: res.Summary}, nil
	}
}

// Render turns a failure into the text shown in the output area.
func Render(kind models.Kind, err error) models.Display {
	return models.Display{Primary: errorPrefix(kind, err) + err.Error()}
}

// errorPrefix picks "API Error: " for errors the service reported and "Error: "
// for everything else. The study tool only counts error statuses as service
// errors; a 2xx body with "success": false gets the plain prefix.
func errorPrefix(kind models.Kind, err error) string {
	var apiErr *apiclient.APIError
	if !errors.As(err, &apiErr) {
		return models.ErrorPrefix
	}
	if kind == models.KindStudy && apiErr.StatusCode >= 200 && apiErr.StatusCode < 300 {
		return models.ErrorPrefix
	}
	return models.APIErrorPrefix
}
