package resume

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestToText(t *testing.T) {
	var record Resume
	err := json.Unmarshal([]byte(sampleRecord), &record)
	if err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}

	text := ToText(record)
	lines := strings.Split(text, "\n")

	if lines[0] != "Jane Doe" {
		t.Errorf("Expected name on the first line, got %q", lines[0])
	}

	// Contact lines follow the name, in source order.
	if lines[1] != "email: mailto:jane@example.com" {
		t.Errorf("Expected email contact line second, got %q", lines[1])
	}
	if lines[3] != "location: Berlin" {
		t.Errorf("Expected location contact line fourth, got %q", lines[3])
	}

	for _, heading := range []string{"SUMMARY", "EXPERIENCE", "SKILLS", "EDUCATION"} {
		if !strings.Contains(text, heading) {
			t.Errorf("Expected text to contain heading %q", heading)
		}
	}

	if !strings.Contains(text, "Engineer at Acme Corp (Remote)") {
		t.Error("Expected experience header line with title and company")
	}

	if !strings.Contains(text, "Skills: Go, AWS") {
		t.Error("Expected flattened per-experience skills line")
	}

	if !strings.Contains(text, "• Did X") {
		t.Error("Expected bulleted highlight line")
	}

	if !strings.Contains(text, "Languages: Go, Python") {
		t.Error("Expected categorized skills line")
	}

	if !strings.Contains(text, "BSc Computer Science - TU Berlin") {
		t.Error("Expected education line")
	}

	// Section order: summary before experience before skills before education.
	summaryIdx := strings.Index(text, "SUMMARY")
	expIdx := strings.Index(text, "EXPERIENCE")
	skillsIdx := strings.Index(text, "\nSKILLS")
	eduIdx := strings.Index(text, "EDUCATION")
	if !(summaryIdx < expIdx && expIdx < skillsIdx && skillsIdx < eduIdx) {
		t.Error("Expected sections in order SUMMARY, EXPERIENCE, SKILLS, EDUCATION")
	}
}

func TestToTextReferences(t *testing.T) {
	record := Resume{
		Name: "Jane Doe",
		References: []Reference{
			{Name: "John Smith", Link: "https://linkedin.com/in/jsmith"},
		},
	}

	text := ToText(record)
	if !strings.Contains(text, "PROFESSIONAL REFERENCES") {
		t.Error("Expected references heading when references are present")
	}
	if !strings.Contains(text, "John Smith - Link: https://linkedin.com/in/jsmith") {
		t.Error("Expected reference line with name and link")
	}

	bare := ToText(Resume{Name: "Jane Doe"})
	if strings.Contains(bare, "PROFESSIONAL REFERENCES") {
		t.Error("Expected no references heading when references are absent")
	}
}
