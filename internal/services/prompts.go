package services

import "strings"

// Built-in prompt templates. {{TEXT}} and {{SUBJECT}} are substituted before sending.
const (
	DefaultSummaryPrompt = `Please summarize the following meeting notes into a structured, concise format.
Include key decisions, action items, and important discussion points:

{{TEXT}}`

	DefaultNotesPrompt = `You are a study assistant for {{SUBJECT}}.
Turn the following lecture text into clear, well-organized study notes.
Use headings, bullet points, key definitions and a short recap at the end:

{{TEXT}}`

	DefaultQuizPrompt = `Write five short quiz questions, with answers, that test understanding of
the following {{SUBJECT}} lecture material. Number each question:

{{TEXT}}`
)

// RenderPrompt fills a template with the input text and subject.
func RenderPrompt(template, text, subject string) string {
	out := strings.ReplaceAll(template, "{{SUBJECT}}", subject)
	return strings.ReplaceAll(out, "{{TEXT}}", text)
}
