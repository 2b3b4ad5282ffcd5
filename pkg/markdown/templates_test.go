package markdown

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

//nolint:gochecknoglobals // Shared fixture file list
var fragmentFiles = []string{
	"document.md",
	"top_section.md",
	"location_section.md",
	"summary_section.md",
	"references_section.md",
	"reference_item.md",
	"experiences_section.md",
	"experience_item.md",
	"experience_highlights.md",
	"experience_highlight_item.md",
	"skills_section.md",
	"skill_section_item.md",
	"education_section.md",
}

func TestLoadFragments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range fragmentFiles {
		err := os.WriteFile(filepath.Join(dir, name), []byte("content of "+name), 0o644)
		if err != nil {
			t.Fatalf("Failed to write fragment: %v", err)
		}
	}

	fragments, err := LoadFragments(dir)
	if err != nil {
		t.Fatalf("Failed to load fragments: %v", err)
	}

	if fragments.Document != "content of document.md" {
		t.Errorf("Expected document fragment content, got %q", fragments.Document)
	}
	if fragments.SkillItem != "content of skill_section_item.md" {
		t.Errorf("Expected skill item fragment content, got %q", fragments.SkillItem)
	}
}

func TestLoadFragmentsMissingFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range fragmentFiles {
		if name == "summary_section.md" {
			continue
		}
		err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644)
		if err != nil {
			t.Fatalf("Failed to write fragment: %v", err)
		}
	}

	_, err := LoadFragments(dir)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}
