package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/easyhired/resumer/pkg/resume"
	"github.com/tidwall/gjson"
)

//nolint:gochecknoglobals // Compiled once
var fenceRe = regexp.MustCompile("(?s)```(?:markdown|md)?\\s*(.*?)```")

// ExtractJSON recovers the JSON payload from raw model output. The model
// is instructed via prose to return bare JSON, but frequently wraps it in
// a fenced code block anyway; both forms are accepted, falling back to the
// whole text.
func ExtractJSON(raw string) (payload string) {
	payload = raw

	if idx := strings.Index(raw, "```json"); idx != -1 {
		rest := raw[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			payload = strings.TrimSpace(rest[:end])
			return payload
		}
	}

	if idx := strings.Index(raw, "```"); idx != -1 {
		rest := raw[idx+len("```"):]
		if end := strings.Index(rest, "```"); end != -1 {
			payload = strings.TrimSpace(rest[:end])
			return payload
		}
	}

	payload = strings.TrimSpace(payload)
	return payload
}

// StripFences unwraps prose responses (cover letters, answers) that the
// model wrapped in a fenced code block. Text without fences passes
// through trimmed.
func StripFences(raw string) (text string) {
	text = strings.TrimSpace(raw)

	if !strings.Contains(text, "```") {
		return text
	}

	matches := fenceRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		text = strings.TrimSpace(matches[1])
	}

	return text
}

// ExtractResume parses a tailored resume record out of raw model output.
// ok is false when no recoverable JSON was found; the caller keeps the raw
// text for diagnostics instead of failing the request.
func ExtractResume(raw string) (record resume.Resume, ok bool) {
	payload := ExtractJSON(raw)

	if !gjson.Valid(payload) {
		return record, ok
	}

	err := json.Unmarshal([]byte(payload), &record)
	if err != nil {
		return record, ok
	}

	// A record without a name or experience is an answer to some other
	// question, not a resume
	if record.Name == "" && len(record.Experience) == 0 {
		return record, ok
	}

	ok = true
	return record, ok
}

// ExtractAnalysis parses job description insights out of raw model
// output. Parse failures degrade to a fallback shape carrying the raw
// text; this never fails.
func ExtractAnalysis(raw string) (analysis Analysis) {
	payload := ExtractJSON(raw)

	if gjson.Valid(payload) {
		err := json.Unmarshal([]byte(payload), &analysis)
		if err == nil {
			if analysis.RequiredSkills == nil {
				analysis.RequiredSkills = []string{}
			}
			if analysis.Keywords == nil {
				analysis.Keywords = []string{}
			}
			return analysis
		}
	}

	analysis = Analysis{
		RawAnalysis:    raw,
		JobTitle:       "Unknown",
		RequiredSkills: []string{},
		Keywords:       []string{},
	}
	return analysis
}
