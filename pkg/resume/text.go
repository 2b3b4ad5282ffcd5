package resume

import (
	"fmt"
	"strings"
)

// ToText renders the record as plain text. Name is always the first line,
// followed by contact lines, a separator, then SUMMARY, optional
// PROFESSIONAL REFERENCES, EXPERIENCE, SKILLS, and EDUCATION.
func ToText(record Resume) (text string) {
	lines := make([]string, 0)

	lines = append(lines, record.Name)

	for _, field := range record.Contact {
		lines = append(lines, fmt.Sprintf("%s: %s", field.Label, field.Value))
	}

	lines = append(lines, "----")

	lines = append(lines, "SUMMARY")
	lines = append(lines, record.Summary)
	lines = append(lines, "")

	if len(record.References) > 0 {
		lines = append(lines, "PROFESSIONAL REFERENCES")
		for _, ref := range record.References {
			lines = append(lines, fmt.Sprintf("%s - Link: %s", ref.Name, ref.Link))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "EXPERIENCE")
	for _, exp := range record.Experience {
		lines = append(lines, fmt.Sprintf("%s at %s", exp.Title, exp.Company))

		if exp.Period != "" {
			lines = append(lines, exp.Period)
		}

		if !exp.Skills.IsZero() {
			lines = append(lines, "Skills: "+exp.Skills.Flatten())
		}

		if exp.Summary != "" {
			lines = append(lines, exp.Summary)
		}

		for _, highlight := range exp.Highlights {
			lines = append(lines, "• "+highlight)
		}

		lines = append(lines, "")
	}

	lines = append(lines, "SKILLS")
	switch {
	case record.Skills.IsCategorized():
		for _, category := range record.Skills.Categories {
			lines = append(lines, fmt.Sprintf("%s: %s", category.Name, category.Items.Flatten()))
		}
	case len(record.Skills.List) > 0:
		lines = append(lines, strings.Join(record.Skills.List, ", "))
	default:
		lines = append(lines, record.Skills.Text)
	}
	lines = append(lines, "")

	lines = append(lines, "EDUCATION")
	for _, edu := range record.Education.Entries {
		lines = append(lines, fmt.Sprintf("%s - %s", edu.Degree, edu.University))
		if edu.Period != "" {
			lines = append(lines, edu.Period)
		}
		if edu.Description != "" {
			lines = append(lines, edu.Description)
		}
	}

	text = strings.Join(lines, "\n")
	return text
}
