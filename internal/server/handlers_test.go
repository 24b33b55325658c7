package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNotes struct {
	mock.Mock
}

func (m *mockNotes) Summarize(ctx context.Context, meetingNotes string) (string, error) {
	args := m.Called(ctx, meetingNotes)
	return args.String(0), args.Error(1)
}

func (m *mockNotes) GenerateNotes(ctx context.Context, lectureNotes, subject string) (string, *string, error) {
	args := m.Called(ctx, lectureNotes, subject)
	quiz, _ := args.Get(1).(*string)
	return args.String(0), quiz, args.Error(2)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func do(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "body: %s", w.Body.String())
	return w, decoded
}

func TestSummarizeHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *mockNotes)
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name: "success",
			body: `{"meetingNotes":"we agreed"}`,
			setup: func(m *mockNotes) {
				m.On("Summarize", mock.Anything, "we agreed").Return("Agreed.", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"success": true, "summary": "Agreed."},
		},
		{
			name:       "missing field",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "No meeting notes provided"},
		},
		{
			name:       "empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "No meeting notes provided"},
		},
		{
			name:       "blank notes",
			body:       `{"meetingNotes":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "No meeting notes provided"},
		},
		{
			name: "provider failure",
			body: `{"meetingNotes":"we agreed"}`,
			setup: func(m *mockNotes) {
				m.On("Summarize", mock.Anything, "we agreed").Return("", errors.New("quota exceeded")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"success": false, "error": "quota exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(mockNotes)
			if tt.setup != nil {
				tt.setup(m)
			}
			router := NewRouter(NewAPIHandler(m), nil)

			w, body := do(t, router, http.MethodPost, "/summarize", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody, body)
			m.AssertExpectations(t)
		})
	}
}

func TestSummarizeHandler_BadJSON(t *testing.T) {
	router := NewRouter(NewAPIHandler(new(mockNotes)), nil)
	w, body := do(t, router, http.MethodPost, "/summarize", `{"meetingNotes":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["error"], "Invalid request body")
}

func TestGenerateNotesHandler(t *testing.T) {
	quiz := "1. What is a cell?"

	t.Run("notes and quiz", func(t *testing.T) {
		m := new(mockNotes)
		m.On("GenerateNotes", mock.Anything, "cells", "Biology").Return("Cells are units.", &quiz, nil).Once()

		w, body := do(t, NewRouter(NewAPIHandler(m), nil), http.MethodPost, "/generate_notes", `{"lectureNotes":"cells","subject":"Biology"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]any{"success": true, "notes": "Cells are units.", "quiz": quiz}, body)
	})

	t.Run("quiz omitted", func(t *testing.T) {
		m := new(mockNotes)
		m.On("GenerateNotes", mock.Anything, "cells", "").Return("Cells are units.", nil, nil).Once()

		w, body := do(t, NewRouter(NewAPIHandler(m), nil), http.MethodPost, "/generate_notes", `{"lectureNotes":"cells"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		_, hasQuiz := body["quiz"]
		assert.False(t, hasQuiz)
	})

	t.Run("missing lecture notes", func(t *testing.T) {
		w, body := do(t, NewRouter(NewAPIHandler(new(mockNotes)), nil), http.MethodPost, "/generate_notes", `{"subject":"Math"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string]any{"error": "No lecture notes provided"}, body)
	})

	t.Run("provider failure", func(t *testing.T) {
		m := new(mockNotes)
		m.On("GenerateNotes", mock.Anything, "cells", "Math").Return("", nil, errors.New("model overloaded")).Once()

		w, body := do(t, NewRouter(NewAPIHandler(m), nil), http.MethodPost, "/generate_notes", `{"lectureNotes":"cells","subject":"Math"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]any{"success": false, "error": "model overloaded"}, body)
	})
}

func TestHealthAndRequestID(t *testing.T) {
	router := NewRouter(NewAPIHandler(new(mockNotes)), nil)

	w, body := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", NewRouter(NewAPIHandler(new(mockNotes)), nil))
	}()
	cancel()
	assert.NoError(t, <-done)
}
