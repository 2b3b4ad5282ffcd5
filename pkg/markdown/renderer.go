package markdown

import (
	"fmt"
	"strings"

	"github.com/easyhired/resumer/pkg/resume"
)

// Render assembles a markdown document from a resume record and a
// fragment set. Sections are produced by substituting named placeholders
// into their fragments, then splicing the sections into the document
// template. Missing optional sections substitute to the empty string, so
// a rendered document never carries dangling placeholders.
func Render(record resume.Resume, fragments FragmentSet) (doc string) {
	doc = fragments.Document
	doc = sub(doc, "top_section", renderTop(record, fragments))
	doc = sub(doc, "summary_section", sub(fragments.SummarySection, "summary", record.Summary))
	doc = sub(doc, "references_section", renderReferences(record, fragments))
	doc = sub(doc, "experiences_section", renderExperiences(record, fragments))
	doc = sub(doc, "skills_section", renderSkills(record, fragments))
	doc = sub(doc, "education_section", renderEducation(record, fragments))
	return doc
}

// renderTop produces the name/contact header section.
func renderTop(record resume.Resume, fragments FragmentSet) (section string) {
	// Contact entries become inline links; location is displayed
	// separately below the name
	links := make([]string, 0, len(record.Contact))
	for _, field := range record.Contact {
		if field.Label == "location" {
			continue
		}
		links = append(links, fmt.Sprintf(
			`<a href="%s" style="margin: 0 0.5em; color: #0366d6; text-decoration: underline;">%s</a>`,
			field.Value, field.Label))
	}

	locationSection := ""
	if location := record.Contact.Get("location"); location != "" {
		locationSection = sub(fragments.LocationSection, "location", location)
	}

	section = fragments.TopSection
	section = sub(section, "name", record.Name)
	section = sub(section, "location_section", locationSection)
	section = sub(section, "contacts", strings.Join(links, " | "))
	return section
}

// renderReferences produces the references section, or empty string when
// the record carries none.
func renderReferences(record resume.Resume, fragments FragmentSet) (section string) {
	if len(record.References) == 0 {
		return section
	}

	var items strings.Builder
	for _, ref := range record.References {
		item := fragments.ReferenceItem
		item = sub(item, "name", ref.Name)
		item = sub(item, "text", ref.Text)
		link := ref.Link
		if link == "" {
			link = "#"
		}
		item = sub(item, "link", link)
		items.WriteString(item)
	}

	section = sub(fragments.ReferencesSection, "references", items.String())
	return section
}

// renderExperiences produces the work history section.
func renderExperiences(record resume.Resume, fragments FragmentSet) (section string) {
	var entries strings.Builder
	for _, exp := range record.Experience {
		company, location := resume.SplitCompany(exp.Company)
		from, to := resume.SplitPeriod(exp.Period)

		highlights := ""
		if hasContent(exp.Highlights) {
			var items strings.Builder
			for _, highlight := range exp.Highlights {
				if strings.TrimSpace(highlight) == "" {
					continue
				}
				items.WriteString(sub(fragments.HighlightItem, "highlight", highlight))
			}
			highlights = sub(fragments.ExperienceHighlights, "highlights", items.String())
		}

		entry := fragments.ExperienceItem
		entry = sub(entry, "position", exp.Title)
		entry = sub(entry, "company_name", company)
		entry = sub(entry, "location", location)
		entry = sub(entry, "from", from)
		entry = sub(entry, "to", to)
		entry = sub(entry, "description", exp.Summary)
		entry = sub(entry, "skills", exp.Skills.Flatten())
		entry = sub(entry, "highlights", highlights)

		entries.WriteString(entry)
		entries.WriteString("\n")
	}

	section = sub(fragments.ExperiencesSection, "experiences", entries.String())
	return section
}

// renderSkills produces the skills section. Flat lists and bare text
// render as a single unnamed category.
func renderSkills(record resume.Resume, fragments FragmentSet) (section string) {
	var items strings.Builder

	switch {
	case record.Skills.IsCategorized():
		for _, category := range record.Skills.Categories {
			item := fragments.SkillItem
			item = sub(item, "category", category.Name)
			item = sub(item, "skills", category.Items.Flatten())
			items.WriteString(item)
			items.WriteString("\n")
		}
	case len(record.Skills.List) > 0:
		item := fragments.SkillItem
		item = sub(item, "category", "Skills")
		item = sub(item, "skills", strings.Join(record.Skills.List, ", "))
		items.WriteString(item)
		items.WriteString("\n")
	case record.Skills.Text != "":
		item := fragments.SkillItem
		item = sub(item, "category", "Skills")
		item = sub(item, "skills", record.Skills.Text)
		items.WriteString(item)
		items.WriteString("\n")
	}

	section = sub(fragments.SkillsSection, "skills", items.String())
	return section
}

// renderEducation produces one education block per degree.
func renderEducation(record resume.Resume, fragments FragmentSet) (section string) {
	if len(record.Education.Entries) == 0 {
		return section
	}

	blocks := make([]string, 0, len(record.Education.Entries))
	for _, edu := range record.Education.Entries {
		block := fragments.EducationSection
		block = sub(block, "degree", edu.Degree)
		block = sub(block, "university", edu.University)
		block = sub(block, "period", edu.Period)
		block = sub(block, "description", edu.Description)
		blocks = append(blocks, block)
	}

	section = strings.Join(blocks, "\n")
	return section
}

// sub replaces one named {{placeholder}} with a value. Delimiter-like
// substrings inside values are backslash-escaped so substitution is
// idempotent even when a resume field contains template syntax.
func sub(template, name, value string) (result string) {
	value = strings.ReplaceAll(value, "{{", `\{\{`)
	result = strings.ReplaceAll(template, "{{"+name+"}}", value)
	return result
}

// hasContent reports whether any highlight is non-blank.
func hasContent(highlights []string) (found bool) {
	for _, h := range highlights {
		if strings.TrimSpace(h) != "" {
			found = true
			return found
		}
	}
	return found
}
