package resume

import "fmt"

// Violation represents a field the tailoring step was instructed to
// preserve but changed anyway.
type Violation struct {
	Field    string
	Expected string
	Actual   string
}

// String renders a violation for logs.
func (v Violation) String() (s string) {
	s = fmt.Sprintf("%s: expected %q, got %q", v.Field, v.Expected, v.Actual)
	return s
}

// CheckPreserved cross-checks the invariant fields of a tailored record
// against the base template: name, contact values, company names, and
// employment periods must survive verbatim. The model is only instructed
// to preserve them, so the check is advisory; callers log violations
// rather than rejecting the result.
func CheckPreserved(base Resume, tailored Resume) (violations []Violation) {
	violations = make([]Violation, 0)

	if tailored.Name != base.Name {
		violations = append(violations, Violation{
			Field:    "name",
			Expected: base.Name,
			Actual:   tailored.Name,
		})
	}

	for _, field := range base.Contact {
		actual := tailored.Contact.Get(field.Label)
		if actual != field.Value {
			violations = append(violations, Violation{
				Field:    "contact." + field.Label,
				Expected: field.Value,
				Actual:   actual,
			})
		}
	}

	// Experience entries are matched positionally; the prompt forbids
	// adding or removing entries
	for i, baseExp := range base.Experience {
		if i >= len(tailored.Experience) {
			violations = append(violations, Violation{
				Field:    fmt.Sprintf("experience[%d]", i),
				Expected: baseExp.Company,
				Actual:   "",
			})
			continue
		}

		tailoredExp := tailored.Experience[i]
		if tailoredExp.Company != baseExp.Company {
			violations = append(violations, Violation{
				Field:    fmt.Sprintf("experience[%d].company", i),
				Expected: baseExp.Company,
				Actual:   tailoredExp.Company,
			})
		}
		if tailoredExp.Period != baseExp.Period {
			violations = append(violations, Violation{
				Field:    fmt.Sprintf("experience[%d].period", i),
				Expected: baseExp.Period,
				Actual:   tailoredExp.Period,
			})
		}
	}

	return violations
}
