package markdown

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrTemplateNotFound indicates a required fragment template is missing.
var ErrTemplateNotFound = errors.New("fragment template not found")

// FragmentSet holds the markdown fragment templates a rendered resume is
// assembled from. Every fragment is required; a missing file fails the
// load rather than the render.
type FragmentSet struct {
	Document             string
	TopSection           string
	LocationSection      string
	SummarySection       string
	ReferencesSection    string
	ReferenceItem        string
	ExperiencesSection   string
	ExperienceItem       string
	ExperienceHighlights string
	HighlightItem        string
	SkillsSection        string
	SkillItem            string
	EducationSection     string
}

// LoadFragments reads the full fragment set from a directory.
func LoadFragments(dir string) (fragments FragmentSet, err error) {
	load := func(name string) (content string) {
		if err != nil {
			return content
		}
		var data []byte
		data, err = os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				err = errors.Wrapf(ErrTemplateNotFound, "%s", name)
				return content
			}
			err = errors.Wrapf(err, "failed to read fragment: %s", name)
			return content
		}
		content = string(data)
		return content
	}

	fragments.Document = load("document.md")
	fragments.TopSection = load("top_section.md")
	fragments.LocationSection = load("location_section.md")
	fragments.SummarySection = load("summary_section.md")
	fragments.ReferencesSection = load("references_section.md")
	fragments.ReferenceItem = load("reference_item.md")
	fragments.ExperiencesSection = load("experiences_section.md")
	fragments.ExperienceItem = load("experience_item.md")
	fragments.ExperienceHighlights = load("experience_highlights.md")
	fragments.HighlightItem = load("experience_highlight_item.md")
	fragments.SkillsSection = load("skills_section.md")
	fragments.SkillItem = load("skill_section_item.md")
	fragments.EducationSection = load("education_section.md")

	return fragments, err
}
