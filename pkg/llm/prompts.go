package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/easyhired/resumer/pkg/resume"
)

// BuildTailoringPrompt creates the resume tailoring prompt. It never
// fails; fields that cannot be serialized render as empty strings.
func BuildTailoringPrompt(record resume.Resume, jobDescription string) (prompt string) {
	resumeJSON, _ := json.MarshalIndent(record, "", "  ")

	prompt = fmt.Sprintf(`I need to tailor my resume for a specific job. I'll provide my current resume structure in JSON format and the job description.

JOB DESCRIPTION:
%s

MY CURRENT RESUME (in JSON format):
%s

Based on the job description, please create a tailored version of my resume by modifying the following sections:

1. Summary: Rewrite to emphasize skills and experiences relevant to this specific job
   - Use <strong>bold</strong> formatting for technical skills (e.g. <strong>JavaScript</strong>, <strong>Python</strong>, <strong>AWS</strong>, etc)
   - Make the summary concise and focused on the job requirements

2. Experience: For each experience entry:
   - Keep the company name and period the same
   - Adjust the job title to match the job description
   - Tailor the summary to match the job description, to highlight relevant achievements, using markdown for technical terms
   - The 'highlights' section is optional
   - If you include highlights, use markdown to bold important technical terms
   - re-write and tailor each highlight to better match the job requirements
   - Adjust the skills to better match the job requirements (add or remove skills as needed)

3. Skills: Reorganize and emphasize skills relevant to the job
   - Prioritize skills mentioned in the job description
   - Filter out unrelevant skills
   - Keep the same structure but adjust the content

Do NOT modify:
- Name and contact information
- Company names and dates
- Education section structure

Important: Use <strong>bold</strong> syntax directly in your text for all technical terms and skills (like <strong>JavaScript</strong>, <strong>Python</strong>, <strong>AWS</strong>, etc). And convert all markdown syntax(**bold**) to <strong>bold</strong> format. And NEVER use junior for any title.

Return ONLY a JSON object with the same structure as the input but with tailored content.
Do not include any explanations or additional text outside the JSON.`, jobDescription, string(resumeJSON))

	return prompt
}

// BuildCoverLetterPrompt creates the cover letter generation prompt.
func BuildCoverLetterPrompt(record resume.Resume, jobDescription string) (prompt string) {
	contactJSON, _ := json.Marshal(record.Contact)
	highlightsJSON, _ := json.MarshalIndent(collectHighlights(record), "", "  ")

	prompt = fmt.Sprintf(`I need to create a professional cover letter for a job application. I'll provide my resume information and the job description.

CANDIDATE INFORMATION:
Name: %s
Contact: %s
Professional Summary: %s
Key Skills: %s
Experience Highlights:
%s

JOB DESCRIPTION:
%s

Please write a professional, personalized cover letter that:
1. Addresses the hiring manager respectfully (use "Dear Hiring Manager" if no specific name)
2. Introduces myself and states the position I'm applying for
3. Explains why I'm interested in the role and company
4. Highlights 2-3 of my most relevant skills/experiences for this specific job
5. Connects my experience to the job requirements
6. Includes a strong closing paragraph with a call to action
7. Uses a professional sign-off with my name

The cover letter should be 3-4 paragraphs, concise but persuasive, and demonstrate that I'm the right fit for this role.

FORMAT REQUIREMENTS:
- Use proper Markdown syntax throughout
- Put the date in the top-right corner in italics
- Bold all technical skills and important terms (like **React**, **AWS**, **Python**, **project management**, etc.)
- Use a clean, professional layout with appropriate spacing
- Format my name at the bottom with my title underneath

Return ONLY the cover letter text with Markdown formatting.`,
		record.Name, string(contactJSON), record.Summary, flattenSkills(record.Skills), string(highlightsJSON), jobDescription)

	return prompt
}

// BuildAnswerPrompt creates the prompt for one application question.
func BuildAnswerPrompt(record resume.Resume, jobDescription, question string) (prompt string) {
	experienceJSON, _ := json.MarshalIndent(describeExperience(record), "", "  ")

	prompt = fmt.Sprintf(`I'm applying for a job and need to answer an application question. I'll provide my resume information, the job description, and the question.

RESUME INFORMATION:
Name: %s
Professional Summary: %s
Skills: %s

Experience:
%s

JOB DESCRIPTION:
%s

APPLICATION QUESTION:
%s

Please provide a well-crafted answer to this question based on my resume and the job description. The answer should:
1. Be concise but comprehensive (100-200 words)
2. Highlight relevant experience, skills, and achievements
3. Demonstrate how my background makes me a good fit for this role
4. Use specific examples whenever possible
5. Be professional in tone and language
6. Use markdown formatting with **bold** for technical skills and important terms (like **JavaScript**, **team management**, etc.)
7. Use proper paragraph spacing for readability

Return ONLY the answer to the question, with no explanations or additional text.`,
		record.Name, record.Summary, flattenSkills(record.Skills), string(experienceJSON), jobDescription, question)

	return prompt
}

// BuildAnalysisPrompt creates the job description analysis prompt.
func BuildAnalysisPrompt(jobDescription string) (prompt string) {
	prompt = fmt.Sprintf(`Analyze the following job description and extract key information in a structured JSON format:

JOB DESCRIPTION:
%s

Please identify and return a JSON object with the following elements:
1. job_title: The title of the job
2. company_name: The name of the company (if available)
3. key_responsibilities: A list of the main job responsibilities
4. required_skills: A list of technical skills required for the job
5. preferred_skills: A list of skills mentioned as preferred or a plus
6. required_experience: Details about years of experience or specific experience required
7. education_requirements: Any educational requirements mentioned
8. keywords: A list of important keywords from the job description that should be included in a resume
9. industry: The industry this job belongs to
10. company_values: Any mentions of company culture or values

Format your response as a valid JSON object without any additional text.`, jobDescription)

	return prompt
}

// flattenSkills renders a skills variant as "category: a, b" lines.
func flattenSkills(skills resume.Skills) (flat string) {
	switch {
	case skills.IsCategorized():
		lines := make([]string, 0, len(skills.Categories))
		for _, category := range skills.Categories {
			lines = append(lines, fmt.Sprintf("%s: %s", category.Name, category.Items.Flatten()))
		}
		flat = strings.Join(lines, "\n")
	case len(skills.List) > 0:
		flat = strings.Join(skills.List, ", ")
	default:
		flat = skills.Text
	}
	return flat
}

// collectHighlights gathers experience highlights and summaries for the
// cover letter prompt.
func collectHighlights(record resume.Resume) (highlights []string) {
	highlights = make([]string, 0)
	for _, exp := range record.Experience {
		highlights = append(highlights, exp.Highlights...)
		if exp.Summary != "" {
			highlights = append(highlights, exp.Summary)
		}
	}
	return highlights
}

// describeExperience renders each experience entry as a text block for the
// question answering prompt.
func describeExperience(record resume.Resume) (blocks []string) {
	blocks = make([]string, 0, len(record.Experience))
	for _, exp := range record.Experience {
		lines := make([]string, 0)
		lines = append(lines, "Position: "+exp.Title)
		lines = append(lines, "Company: "+exp.Company)
		lines = append(lines, "Period: "+exp.Period)

		if exp.Summary != "" {
			lines = append(lines, "Summary: "+exp.Summary)
		}

		if len(exp.Highlights) > 0 {
			lines = append(lines, "Highlights:")
			for _, highlight := range exp.Highlights {
				lines = append(lines, "- "+highlight)
			}
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return blocks
}
