package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/easyhired/resumer/pkg/llm"
	"github.com/easyhired/resumer/pkg/markdown"
	"github.com/easyhired/resumer/pkg/renderer"
	"github.com/easyhired/resumer/pkg/resume"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOracleUnavailable indicates the text-generation call failed.
var ErrOracleUnavailable = errors.New("oracle unavailable")

const timestampLayout = "20060102_150405"

// Submission represents one job application request.
type Submission struct {
	JobDescription string   `json:"job_description"`
	Questions      []string `json:"questions,omitempty"`
	Template       string   `json:"template,omitempty"`
	ReturnJSON     bool     `json:"return_json,omitempty"`
}

// Artifacts describes the files produced for one tailoring request.
// Generated files are never rewritten in place; every request produces a
// fresh set under a new base name.
type Artifacts struct {
	BaseName       string
	Record         resume.Resume
	Degraded       bool
	RawPath        string
	JSONPath       string
	TextPath       string
	MarkdownPath   string
	PDFPath        string
	CoverLetterMD  string
	CoverLetterPDF string
	Violations     []resume.Violation
}

// Service orchestrates resume tailoring, cover letter generation, and
// question answering. It holds no cross-request state beyond the
// filesystem, so a single instance serves concurrent requests.
type Service struct {
	store     *resume.Store
	fragments markdown.FragmentSet
	oracle    llm.Oracle
	outputDir string
	resumeCSS string
	coverCSS  string
	skipPDF   bool
	logger    *slog.Logger
}

// Options configures a Service.
type Options struct {
	Store     *resume.Store
	Fragments markdown.FragmentSet
	Oracle    llm.Oracle
	OutputDir string
	ResumeCSS string
	CoverCSS  string
	SkipPDF   bool
	Logger    *slog.Logger
}

// New creates a Service.
func New(opts Options) (svc *Service) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	svc = &Service{
		store:     opts.Store,
		fragments: opts.Fragments,
		oracle:    opts.Oracle,
		outputDir: opts.OutputDir,
		resumeCSS: opts.ResumeCSS,
		coverCSS:  opts.CoverCSS,
		skipPDF:   opts.SkipPDF,
		logger:    logger,
	}
	return svc
}

// Tailor runs the full pipeline for a submission: load template, build
// prompt, call the oracle, extract the tailored record, and render the
// text, markdown, JSON, and PDF artifacts.
func (s *Service) Tailor(ctx context.Context, sub Submission) (artifacts Artifacts, err error) {
	// Load the base template
	var base resume.Resume
	base, err = s.store.Load(sub.Template)
	if err != nil {
		return artifacts, err
	}

	artifacts.BaseName = s.baseName(sub.Template)

	// Build prompt and call the oracle
	prompt := llm.BuildTailoringPrompt(base, sub.JobDescription)

	var responseText string
	responseText, err = s.oracle.Generate(ctx, prompt)
	if err != nil {
		err = errors.Wrapf(ErrOracleUnavailable, "tailoring call failed: %v", err)
		return artifacts, err
	}

	// Extract the tailored record; parse failure is non-fatal and keeps
	// the raw text on disk for inspection
	record, ok := llm.ExtractResume(responseText)
	if !ok {
		rawPath := filepath.Join(s.outputDir, "tailored_resume_raw_"+time.Now().Format(timestampLayout)+".txt")
		writeErr := renderer.WriteMarkdown(responseText, rawPath)
		if writeErr != nil {
			s.logger.Warn("failed to persist raw oracle output", "error", writeErr)
		}

		artifacts.Degraded = true
		artifacts.RawPath = rawPath
		artifacts.Record = base
		s.logger.Warn("oracle response was not parsable as a resume", "raw_path", rawPath)
		return artifacts, err
	}

	artifacts.Record = record

	// The prompt only instructs the model to preserve identity fields;
	// cross-check and log what it changed anyway
	artifacts.Violations = resume.CheckPreserved(base, record)
	for _, violation := range artifacts.Violations {
		s.logger.Warn("tailored resume changed a preserved field", "violation", violation.String())
	}

	// Persist the structured record
	artifacts.JSONPath = filepath.Join(s.outputDir, artifacts.BaseName+".json")
	var recordJSON []byte
	recordJSON, err = json.MarshalIndent(record, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal tailored resume")
		return artifacts, err
	}
	err = renderer.WriteMarkdown(string(recordJSON), artifacts.JSONPath)
	if err != nil {
		return artifacts, err
	}

	// Plain text rendition
	artifacts.TextPath = filepath.Join(s.outputDir, artifacts.BaseName+".txt")
	err = renderer.WriteMarkdown(resume.ToText(record), artifacts.TextPath)
	if err != nil {
		return artifacts, err
	}

	// Markdown rendition
	artifacts.MarkdownPath = filepath.Join(s.outputDir, artifacts.BaseName+"_resume.md")
	err = renderer.WriteMarkdown(markdown.Render(record, s.fragments), artifacts.MarkdownPath)
	if err != nil {
		return artifacts, err
	}

	// PDF rendition; the markdown stays on disk either way
	artifacts.PDFPath = filepath.Join(s.outputDir, artifacts.BaseName+"_resume.pdf")
	if !s.skipPDF {
		err = renderer.RenderPDF(artifacts.MarkdownPath, s.resumeCSS, artifacts.PDFPath)
		if err != nil {
			return artifacts, err
		}
	}

	return artifacts, err
}

// CoverLetter generates a cover letter for a tailored record and renders
// it to markdown and PDF under the given base name.
func (s *Service) CoverLetter(ctx context.Context, record resume.Resume, jobDescription, baseName string) (markdownPath string, pdfPath string, err error) {
	prompt := llm.BuildCoverLetterPrompt(record, jobDescription)

	var responseText string
	responseText, err = s.oracle.Generate(ctx, prompt)
	if err != nil {
		err = errors.Wrapf(ErrOracleUnavailable, "cover letter call failed: %v", err)
		return markdownPath, pdfPath, err
	}

	content := llm.StripFences(responseText)

	markdownPath = filepath.Join(s.outputDir, baseName+"_cover_letter.md")
	err = renderer.WriteMarkdown(content, markdownPath)
	if err != nil {
		return markdownPath, pdfPath, err
	}

	pdfPath = filepath.Join(s.outputDir, baseName+"_cover_letter.pdf")
	if !s.skipPDF {
		err = renderer.RenderPDF(markdownPath, s.coverCSS, pdfPath)
		if err != nil {
			return markdownPath, pdfPath, err
		}
	}

	return markdownPath, pdfPath, err
}

// AnswerQuestions generates an answer for each application question.
// answers[i] always corresponds to questions[i]. A failure on one
// question does not abort the rest; the failed slot carries an empty
// string and the failure is logged.
func (s *Service) AnswerQuestions(ctx context.Context, record resume.Resume, jobDescription string, questions []string) (answers []string) {
	answers = make([]string, len(questions))

	for i, question := range questions {
		prompt := llm.BuildAnswerPrompt(record, jobDescription, question)

		responseText, genErr := s.oracle.Generate(ctx, prompt)
		if genErr != nil {
			s.logger.Warn("question answering call failed", "question_index", i, "error", genErr)
			continue
		}

		answers[i] = strings.TrimSpace(responseText)
	}

	return answers
}

// AnalyzeJob extracts structured insights from a job description. The
// result degrades to a raw-text fallback rather than failing on
// unparsable output.
func (s *Service) AnalyzeJob(ctx context.Context, jobDescription string) (analysis llm.Analysis, err error) {
	prompt := llm.BuildAnalysisPrompt(jobDescription)

	var responseText string
	responseText, err = s.oracle.Generate(ctx, prompt)
	if err != nil {
		err = errors.Wrapf(ErrOracleUnavailable, "analysis call failed: %v", err)
		return analysis, err
	}

	analysis = llm.ExtractAnalysis(responseText)
	return analysis, err
}

// baseName derives the output file base name for a request. Named
// templates keep their name so regenerations are easy to find; anonymous
// requests get a timestamped name with a short unique suffix so
// concurrent requests cannot collide.
func (s *Service) baseName(template string) (base string) {
	if template != "" {
		base = strings.TrimSuffix(filepath.Base(template), ".json")
		return base
	}

	base = "tailored_" + time.Now().Format(timestampLayout) + "_" + uuid.NewString()[:8]
	return base
}
