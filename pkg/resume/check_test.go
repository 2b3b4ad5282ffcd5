package resume

import (
	"strings"
	"testing"
)

func TestCheckPreserved(t *testing.T) {
	base := Resume{
		Name: "Jane Doe",
		Contact: FieldList{
			{Label: "email", Value: "jane@example.com"},
		},
		Experience: []Experience{
			{Title: "Engineer", Company: "Acme Corp", Period: "2020 - 2022"},
			{Title: "Senior Engineer", Company: "Globex", Period: "2022 - Present"},
		},
	}

	t.Run("identical records pass", func(t *testing.T) {
		violations := CheckPreserved(base, base)
		if len(violations) != 0 {
			t.Errorf("Expected no violations, got %d: %v", len(violations), violations)
		}
	})

	t.Run("changed name and contact flagged", func(t *testing.T) {
		tailored := base
		tailored.Name = "J. Doe"
		tailored.Contact = FieldList{{Label: "email", Value: "other@example.com"}}

		violations := CheckPreserved(base, tailored)
		if len(violations) != 2 {
			t.Fatalf("Expected 2 violations, got %d: %v", len(violations), violations)
		}
		if violations[0].Field != "name" {
			t.Errorf("Expected first violation on name, got %q", violations[0].Field)
		}
		if violations[1].Field != "contact.email" {
			t.Errorf("Expected second violation on contact.email, got %q", violations[1].Field)
		}
	})

	t.Run("dropped experience entry flagged", func(t *testing.T) {
		tailored := base
		tailored.Experience = base.Experience[:1]

		violations := CheckPreserved(base, tailored)
		if len(violations) != 1 {
			t.Fatalf("Expected 1 violation, got %d: %v", len(violations), violations)
		}
		if !strings.Contains(violations[0].Field, "experience[1]") {
			t.Errorf("Expected violation on experience[1], got %q", violations[0].Field)
		}
	})

	t.Run("changed period flagged", func(t *testing.T) {
		tailored := Resume{
			Name:    base.Name,
			Contact: base.Contact,
			Experience: []Experience{
				base.Experience[0],
				{Title: "Senior Engineer", Company: "Globex", Period: "2021 - Present"},
			},
		}

		violations := CheckPreserved(base, tailored)
		if len(violations) != 1 {
			t.Fatalf("Expected 1 violation, got %d: %v", len(violations), violations)
		}
		if violations[0].Field != "experience[1].period" {
			t.Errorf("Expected violation on experience[1].period, got %q", violations[0].Field)
		}
	})
}

func TestViolationString(t *testing.T) {
	v := Violation{Field: "name", Expected: "Jane", Actual: "John"}
	s := v.String()
	if !strings.Contains(s, "name") || !strings.Contains(s, "Jane") || !strings.Contains(s, "John") {
		t.Errorf("Expected violation string to carry field and both values, got %q", s)
	}
}
