package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"briefly/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NoteGenerator is what the handlers need from the note service.
type NoteGenerator interface {
	Summarize(ctx context.Context, meetingNotes string) (string, error)
	GenerateNotes(ctx context.Context, lectureNotes, subject string) (notes string, quiz *string, err error)
}

type APIHandler struct {
	Notes NoteGenerator
}

func NewAPIHandler(notes NoteGenerator) *APIHandler {
	return &APIHandler{Notes: notes}
}

// SummarizeHandler handles POST /summarize.
func (h *APIHandler) SummarizeHandler(c *gin.Context) {
	var req models.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.MeetingNotes) == "" {
		BadRequest(c, "No meeting notes provided")
		return
	}

	summary, err := h.Notes.Summarize(c.Request.Context(), req.MeetingNotes)
	if err != nil {
		log.Errorf("Summarize failed: %v", err)
		GenerationFailed(c, err.Error())
		return
	}

	success := true
	c.JSON(http.StatusOK, models.SummarizeResponse{Success: &success, Summary: &summary})
}

// GenerateNotesHandler handles POST /generate_notes.
func (h *APIHandler) GenerateNotesHandler(c *gin.Context) {
	var req models.GenerateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.LectureNotes) == "" {
		BadRequest(c, "No lecture notes provided")
		return
	}

	notes, quiz, err := h.Notes.GenerateNotes(c.Request.Context(), req.LectureNotes, req.Subject)
	if err != nil {
		log.Errorf("GenerateNotes failed (subject=%q): %v", req.Subject, err)
		GenerationFailed(c, err.Error())
		return
	}

	success := true
	c.JSON(http.StatusOK, models.GenerateNotesResponse{Success: &success, Notes: &notes, Quiz: quiz})
}

func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
