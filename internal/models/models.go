package models

// SummarizeRequest is the payload sent to /summarize.
type SummarizeRequest struct {
	MeetingNotes string `json:"meetingNotes"`
}

// GenerateNotesRequest is the payload sent to /generate_notes.
type GenerateNotesRequest struct {
	LectureNotes string `json:"lectureNotes"`
	Subject      string `json:"subject"`
}

// SummarizeResponse is the body returned by /summarize.
// Success is a pointer so an absent field can be told apart from false.
type SummarizeResponse struct {
	Success *bool   `json:"success,omitempty"`
	Summary *string `json:"summary,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// GenerateNotesResponse is the body returned by /generate_notes.
type GenerateNotesResponse struct {
	Success *bool   `json:"success,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Quiz    *string `json:"quiz,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// SummaryResult is a successful /summarize outcome.
type SummaryResult struct {
	Summary string
}

// StudyNotesResult is a successful /generate_notes outcome.
type StudyNotesResult struct {
	Notes string
	Quiz  string
}

// Display holds the strings a front end shows for one outcome.
type Display struct {
	Primary   string
	Secondary string
}
