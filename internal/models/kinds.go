package models

/*
Tool kinds, subjects and user-facing texts shared by the client, the session
and the CLI.
*/

// Kind identifies which of the two tools a session drives.
type Kind string

const (
	KindMeeting Kind = "meeting"
	KindStudy   Kind = "study"
)

// Endpoint paths, relative to the configured base URL.
const (
	PathSummarize     = "/summarize"
	PathGenerateNotes = "/generate_notes"
	PathHealth        = "/health"
)

const (
	UnknownErrorMessage = "Unknown error"
	DefaultQuizText     = "No quiz questions available."
	DefaultSubject      = "General"
)

// Subjects lists the subjects accepted by the study notes generator, in display order.
var Subjects = []string{"General", "Math", "Science", "History", "Biology", "Physics", "Chemistry"}

// IsSubject reports whether s is one of Subjects.
func IsSubject(s string) bool {
	for _, subject := range Subjects {
		if subject == s {
			return true
		}
	}
	return false
}

// ProgressText is shown in the output area while a request is in flight.
func ProgressText(k Kind) string {
	if k == KindStudy {
		return "Generating study notes..."
	}
	return "Generating summary..."
}

// Prefixes for failure messages in the output area. Which one applies depends
// on the tool and on whether the service itself reported the error.
const (
	APIErrorPrefix = "API Error: "
	ErrorPrefix    = "Error: "
)

// EmptyInputText is the warning shown when the user submits nothing.
func EmptyInputText(k Kind) string {
	if k == KindStudy {
		return "Please enter or upload lecture text first."
	}
	return "Please enter or upload meeting notes first."
}

// NothingToExportText is the warning shown when export is requested with no output.
func NothingToExportText(k Kind) string {
	if k == KindStudy {
		return "No study notes to export."
	}
	return "No summary to export."
}
