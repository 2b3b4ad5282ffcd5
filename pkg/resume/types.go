package resume

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Resume represents a complete resume record as stored in a template file
// or returned by the tailoring step.
type Resume struct {
	Name       string       `json:"name"`
	Contact    FieldList    `json:"contact"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Skills     Skills       `json:"skills"`
	Education  Education    `json:"education"`
	References []Reference  `json:"references,omitempty"`
}

// Experience represents a single work history entry.
type Experience struct {
	Title      string      `json:"title"`
	Company    string      `json:"company"`
	Period     string      `json:"period"`
	Summary    string      `json:"summary,omitempty"`
	Highlights []string    `json:"highlights,omitempty"`
	Skills     FlexStrings `json:"skills,omitempty"`
}

// Reference represents a professional reference.
type Reference struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
	Link string `json:"link,omitempty"`
}

// EducationEntry represents a single degree.
type EducationEntry struct {
	Degree      string `json:"degree"`
	University  string `json:"university"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// Field is one ordered contact label/value pair.
type Field struct {
	Label string
	Value string
}

// FieldList holds contact entries in the order they appear in the source
// JSON object. Plain maps would randomize rendering order.
type FieldList []Field

// Get returns the value for a label, or empty string if absent.
func (f FieldList) Get(label string) (value string) {
	for _, field := range f {
		if field.Label == label {
			value = field.Value
			return value
		}
	}
	return value
}

// UnmarshalJSON decodes a JSON object while preserving key order.
func (f *FieldList) UnmarshalJSON(data []byte) (err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var tok json.Token
	tok, err = dec.Token()
	if err != nil {
		err = errors.Wrap(err, "failed to read contact object")
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		err = errors.New("contact must be a JSON object")
		return err
	}

	fields := make(FieldList, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			err = errors.Wrap(err, "failed to read contact key")
			return err
		}

		label, keyOK := tok.(string)
		if !keyOK {
			err = errors.New("contact keys must be strings")
			return err
		}

		// Values are normally strings; tolerate anything else by keeping
		// the raw JSON text
		var raw json.RawMessage
		err = dec.Decode(&raw)
		if err != nil {
			err = errors.Wrapf(err, "failed to read contact value for %q", label)
			return err
		}

		var value string
		if json.Unmarshal(raw, &value) != nil {
			value = string(raw)
		}

		fields = append(fields, Field{Label: label, Value: value})
	}

	*f = fields
	return err
}

// MarshalJSON encodes the list back to a JSON object in original order.
func (f FieldList) MarshalJSON() (data []byte, err error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range f {
		if i > 0 {
			buf.WriteByte(',')
		}
		var key []byte
		key, err = json.Marshal(field.Label)
		if err != nil {
			return data, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		var val []byte
		val, err = json.Marshal(field.Value)
		if err != nil {
			return data, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	data = buf.Bytes()
	return data, err
}

// FlexStrings holds a value that may arrive as a JSON array of strings or a
// single bare string.
type FlexStrings struct {
	Items []string
	Text  string
}

// IsZero reports whether the value is entirely absent.
func (s FlexStrings) IsZero() (zero bool) {
	zero = len(s.Items) == 0 && s.Text == ""
	return zero
}

// Flatten renders the value as a single comma-joined line.
func (s FlexStrings) Flatten() (flat string) {
	if len(s.Items) > 0 {
		flat = strings.Join(s.Items, ", ")
		return flat
	}
	flat = s.Text
	return flat
}

// UnmarshalJSON accepts either a string array or a bare string.
func (s *FlexStrings) UnmarshalJSON(data []byte) (err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = FlexStrings{}
		return err
	}

	switch trimmed[0] {
	case '[':
		var items []string
		err = json.Unmarshal(trimmed, &items)
		if err != nil {
			err = errors.Wrap(err, "failed to parse string list")
			return err
		}
		*s = FlexStrings{Items: items}
	case '"':
		var text string
		err = json.Unmarshal(trimmed, &text)
		if err != nil {
			err = errors.Wrap(err, "failed to parse string value")
			return err
		}
		*s = FlexStrings{Text: text}
	default:
		err = errors.Errorf("unsupported value shape: %s", string(trimmed))
	}

	return err
}

// MarshalJSON re-emits the original shape.
func (s FlexStrings) MarshalJSON() (data []byte, err error) {
	if len(s.Items) > 0 {
		data, err = json.Marshal(s.Items)
		return data, err
	}
	if s.Text != "" {
		data, err = json.Marshal(s.Text)
		return data, err
	}
	data = []byte("[]")
	return data, err
}

// SkillCategory represents one named skill group.
type SkillCategory struct {
	Name  string
	Items FlexStrings
}

// Skills is a tagged variant: a categorized mapping, a flat list, or bare
// text, depending on the template author.
type Skills struct {
	Categories []SkillCategory
	List       []string
	Text       string
}

// IsCategorized reports whether the skills arrived as a category mapping.
func (s Skills) IsCategorized() (categorized bool) {
	categorized = len(s.Categories) > 0
	return categorized
}

// UnmarshalJSON accepts an object, an array, or a bare string.
func (s *Skills) UnmarshalJSON(data []byte) (err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = Skills{}
		return err
	}

	switch trimmed[0] {
	case '{':
		err = s.unmarshalCategories(trimmed)
	case '[':
		var list []string
		err = json.Unmarshal(trimmed, &list)
		if err != nil {
			err = errors.Wrap(err, "failed to parse skills list")
			return err
		}
		*s = Skills{List: list}
	case '"':
		var text string
		err = json.Unmarshal(trimmed, &text)
		if err != nil {
			err = errors.Wrap(err, "failed to parse skills text")
			return err
		}
		*s = Skills{Text: text}
	default:
		err = errors.Errorf("unsupported skills shape: %s", string(trimmed))
	}

	return err
}

// unmarshalCategories decodes a category object preserving key order.
func (s *Skills) unmarshalCategories(data []byte) (err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Consume the opening brace
	_, err = dec.Token()
	if err != nil {
		err = errors.Wrap(err, "failed to read skills object")
		return err
	}

	categories := make([]SkillCategory, 0)
	for dec.More() {
		var tok json.Token
		tok, err = dec.Token()
		if err != nil {
			err = errors.Wrap(err, "failed to read skills category name")
			return err
		}

		name, ok := tok.(string)
		if !ok {
			err = errors.New("skills category names must be strings")
			return err
		}

		var items FlexStrings
		err = dec.Decode(&items)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse skills for category %q", name)
			return err
		}

		categories = append(categories, SkillCategory{Name: name, Items: items})
	}

	*s = Skills{Categories: categories}
	return err
}

// MarshalJSON re-emits the variant in its original shape.
func (s Skills) MarshalJSON() (data []byte, err error) {
	if len(s.Categories) > 0 {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, category := range s.Categories {
			if i > 0 {
				buf.WriteByte(',')
			}
			var key []byte
			key, err = json.Marshal(category.Name)
			if err != nil {
				return data, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			var val []byte
			val, err = category.Items.MarshalJSON()
			if err != nil {
				return data, err
			}
			buf.Write(val)
		}
		buf.WriteByte('}')
		data = buf.Bytes()
		return data, err
	}

	if len(s.List) > 0 {
		data, err = json.Marshal(s.List)
		return data, err
	}

	if s.Text != "" {
		data, err = json.Marshal(s.Text)
		return data, err
	}

	data = []byte("{}")
	return data, err
}

// Education holds one or more degrees. Templates store either a single
// object or an array; the original shape is preserved on re-marshal.
type Education struct {
	Entries []EducationEntry
	single  bool
}

// UnmarshalJSON accepts a single education object or an array of them.
func (e *Education) UnmarshalJSON(data []byte) (err error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = Education{}
		return err
	}

	switch trimmed[0] {
	case '{':
		var entry EducationEntry
		err = json.Unmarshal(trimmed, &entry)
		if err != nil {
			err = errors.Wrap(err, "failed to parse education entry")
			return err
		}
		*e = Education{Entries: []EducationEntry{entry}, single: true}
	case '[':
		var entries []EducationEntry
		err = json.Unmarshal(trimmed, &entries)
		if err != nil {
			err = errors.Wrap(err, "failed to parse education list")
			return err
		}
		*e = Education{Entries: entries}
	default:
		err = errors.Errorf("unsupported education shape: %s", string(trimmed))
	}

	return err
}

// MarshalJSON re-emits the original shape.
func (e Education) MarshalJSON() (data []byte, err error) {
	if e.single && len(e.Entries) == 1 {
		data, err = json.Marshal(e.Entries[0])
		return data, err
	}
	data, err = json.Marshal(e.Entries)
	return data, err
}
