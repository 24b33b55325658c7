package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"

	"briefly/internal/models"
)

// BuildSummarizeRequest serializes the /summarize payload.
// The caller is expected to have rejected empty input already.
func BuildSummarizeRequest(meetingNotes string) ([]byte, error) {
	return marshalPayload(models.SummarizeRequest{MeetingNotes: meetingNotes})
}

// BuildGenerateNotesRequest serializes the /generate_notes payload.
func BuildGenerateNotesRequest(lectureNotes, subject string) ([]byte, error) {
	return marshalPayload(models.GenerateNotesRequest{LectureNotes: lectureNotes, Subject: subject})
}

// marshalPayload encodes v without HTML escaping so the server sees the text as typed.
func marshalPayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
