package llm

// Analysis represents structured insights extracted from a job
// description. Every field is best-effort; when the model's output cannot
// be parsed at all, RawAnalysis carries the verbatim response instead.
type Analysis struct {
	JobTitle              string   `json:"job_title"`
	CompanyName           string   `json:"company_name,omitempty"`
	KeyResponsibilities   []string `json:"key_responsibilities,omitempty"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills,omitempty"`
	RequiredExperience    string   `json:"required_experience,omitempty"`
	EducationRequirements string   `json:"education_requirements,omitempty"`
	Keywords              []string `json:"keywords"`
	Industry              string   `json:"industry,omitempty"`
	CompanyValues         string   `json:"company_values,omitempty"`
	RawAnalysis           string   `json:"raw_analysis,omitempty"`
}
