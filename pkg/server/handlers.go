package server

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/easyhired/resumer/pkg/auth"
	"github.com/easyhired/resumer/pkg/jd"
	"github.com/easyhired/resumer/pkg/renderer"
	"github.com/easyhired/resumer/pkg/resume"
	"github.com/easyhired/resumer/pkg/service"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	svc       *service.Service
	users     *auth.UserStore
	issuer    *auth.TokenIssuer
	store     *resume.Store
	outputDir string
	logger    *slog.Logger
}

// NewHandlers creates the handler set.
func NewHandlers(svc *service.Service, users *auth.UserStore, issuer *auth.TokenIssuer, store *resume.Store, outputDir string, logger *slog.Logger) (h *Handlers) {
	if logger == nil {
		logger = slog.Default()
	}
	h = &Handlers{
		svc:       svc,
		users:     users,
		issuer:    issuer,
		store:     store,
		outputDir: outputDir,
		logger:    logger,
	}
	return h
}

// Root reports liveness.
func (h *Handlers) Root(c *fiber.Ctx) (err error) {
	err = respondJSON(c, http.StatusOK, fiber.Map{"message": "Resumer API is running"})
	return err
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinResponse struct {
	Token string `json:"token"`
	User  struct {
		Username string `json:"username"`
	} `json:"user"`
}

// SignIn exchanges a username/password pair for a bearer token.
func (h *Handlers) SignIn(c *fiber.Ctx) (err error) {
	var req signinRequest
	err = c.BodyParser(&req)
	if err != nil {
		err = respondError(c, http.StatusBadRequest, "invalid JSON payload")
		return err
	}

	_, authErr := h.users.Authenticate(req.Username, req.Password)
	if authErr != nil {
		if errors.Is(authErr, auth.ErrInvalidCredentials) {
			c.Set("WWW-Authenticate", "Bearer")
			err = respondError(c, http.StatusUnauthorized, "Incorrect username or password")
			return err
		}
		h.logger.Error("sign-in failed", "error", authErr)
		err = respondError(c, http.StatusInternalServerError, "failed to sign in")
		return err
	}

	var token string
	token, err = h.issuer.Generate(req.Username)
	if err != nil {
		h.logger.Error("token generation failed", "error", err)
		err = respondError(c, http.StatusInternalServerError, "failed to sign in")
		return err
	}

	var resp signinResponse
	resp.Token = token
	resp.User.Username = req.Username
	err = respondJSON(c, http.StatusOK, resp)
	return err
}

type tailorResponse struct {
	ResumeURL      string   `json:"resume_url"`
	CoverLetterURL string   `json:"cover_letter_url,omitempty"`
	Answers        []string `json:"answers,omitempty"`
	JSONPath       string   `json:"json_path,omitempty"`
	TextPath       string   `json:"text_path,omitempty"`
	Degraded       bool     `json:"degraded,omitempty"`
	RawPath        string   `json:"raw_path,omitempty"`
}

// TailorResume runs the full pipeline for a job submission.
func (h *Handlers) TailorResume(c *fiber.Ctx) (err error) {
	var sub service.Submission
	err = c.BodyParser(&sub)
	if err != nil {
		err = respondError(c, http.StatusBadRequest, "invalid JSON payload")
		return err
	}

	if strings.TrimSpace(sub.JobDescription) == "" {
		err = respondError(c, http.StatusBadRequest, "job_description is required")
		return err
	}

	ctx := c.Context()

	// The job description may be a posting URL
	jobDescription, fetchErr := jd.Resolve(ctx, sub.JobDescription)
	if fetchErr != nil {
		err = respondError(c, http.StatusBadGateway, "failed to fetch job description: "+fetchErr.Error())
		return err
	}
	sub.JobDescription = jobDescription

	started := time.Now()
	artifacts, tailorErr := h.svc.Tailor(ctx, sub)
	if tailorErr != nil {
		err = h.tailorError(c, tailorErr)
		return err
	}
	h.logger.Info("tailored resume", "base_name", artifacts.BaseName, "degraded", artifacts.Degraded, "duration", time.Since(started))

	var resp tailorResponse

	if artifacts.Degraded {
		// The oracle answered, but not with a parsable resume; hand the
		// caller the raw output location instead of failing
		resp.Degraded = true
		resp.RawPath = artifacts.RawPath
		err = respondJSON(c, http.StatusOK, resp)
		return err
	}

	resp.ResumeURL = "/download/resume/" + filepath.Base(artifacts.PDFPath)

	// Cover letter rides along with every successful tailoring
	_, coverPDF, coverErr := h.svc.CoverLetter(ctx, artifacts.Record, sub.JobDescription, artifacts.BaseName)
	if coverErr != nil {
		h.logger.Warn("cover letter generation failed", "base_name", artifacts.BaseName, "error", coverErr)
	} else {
		resp.CoverLetterURL = "/download/cover_letter/" + filepath.Base(coverPDF)
	}

	if len(sub.Questions) > 0 {
		resp.Answers = h.svc.AnswerQuestions(ctx, artifacts.Record, sub.JobDescription, sub.Questions)
	}

	if sub.ReturnJSON {
		resp.JSONPath = artifacts.JSONPath
		resp.TextPath = artifacts.TextPath
	}

	err = respondJSON(c, http.StatusOK, resp)
	return err
}

// tailorError maps pipeline failures to status codes.
func (h *Handlers) tailorError(c *fiber.Ctx, tailorErr error) (err error) {
	switch {
	case errors.Is(tailorErr, resume.ErrTemplateNotFound):
		err = respondError(c, http.StatusNotFound, "template not found")
	case errors.Is(tailorErr, service.ErrOracleUnavailable):
		h.logger.Error("oracle unavailable", "error", tailorErr)
		err = respondError(c, http.StatusBadGateway, "generation service unavailable")
	case errors.Is(tailorErr, renderer.ErrRenderFailure):
		h.logger.Error("render failure", "error", tailorErr)
		err = respondError(c, http.StatusInternalServerError, "failed to render resume")
	default:
		h.logger.Error("tailoring failed", "error", tailorErr)
		err = respondError(c, http.StatusInternalServerError, "Error tailoring resume: "+tailorErr.Error())
	}
	return err
}

// DownloadResume serves a generated resume PDF.
func (h *Handlers) DownloadResume(c *fiber.Ctx) (err error) {
	err = h.download(c, "Resume not found")
	return err
}

// DownloadCoverLetter serves a generated cover letter PDF.
func (h *Handlers) DownloadCoverLetter(c *fiber.Ctx) (err error) {
	err = h.download(c, "Cover letter not found")
	return err
}

// download serves a PDF from the output directory, inline by default or
// as an attachment with ?mode=download. Filenames are reduced to their
// base name so requests cannot reach outside the output directory.
func (h *Handlers) download(c *fiber.Ctx, missingMessage string) (err error) {
	filename := filepath.Base(c.Params("filename"))
	path := filepath.Join(h.outputDir, filename)

	_, statErr := os.Stat(path)
	if statErr != nil {
		err = respondError(c, http.StatusNotFound, missingMessage)
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	if c.Query("mode") == "download" {
		err = c.Download(path, filename)
		return err
	}

	c.Set(fiber.HeaderContentDisposition, "inline")
	err = c.SendFile(path)
	return err
}

// Templates lists the available resume templates.
func (h *Handlers) Templates(c *fiber.Ctx) (err error) {
	names, listErr := h.store.List()
	if listErr != nil {
		h.logger.Error("failed to list templates", "error", listErr)
		err = respondError(c, http.StatusInternalServerError, "failed to list templates")
		return err
	}

	err = respondJSON(c, http.StatusOK, names)
	return err
}

// CoverLetterContent returns the markdown source of a generated cover
// letter, addressed by its PDF filename.
func (h *Handlers) CoverLetterContent(c *fiber.Ctx) (err error) {
	filename := filepath.Base(c.Params("filename"))
	mdFilename := strings.TrimSuffix(filename, ".pdf") + ".md"
	path := filepath.Join(h.outputDir, mdFilename)

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			err = respondError(c, http.StatusNotFound, "Cover letter markdown not found")
			return err
		}
		h.logger.Error("failed to read cover letter content", "error", readErr)
		err = respondError(c, http.StatusInternalServerError, "Error reading cover letter content")
		return err
	}

	err = respondJSON(c, http.StatusOK, fiber.Map{"content": string(data)})
	return err
}

type analyzeRequest struct {
	JobDescription string `json:"job_description"`
}

// AnalyzeJob extracts structured insights from a job description.
func (h *Handlers) AnalyzeJob(c *fiber.Ctx) (err error) {
	var req analyzeRequest
	err = c.BodyParser(&req)
	if err != nil {
		err = respondError(c, http.StatusBadRequest, "invalid JSON payload")
		return err
	}

	if strings.TrimSpace(req.JobDescription) == "" {
		err = respondError(c, http.StatusBadRequest, "job_description is required")
		return err
	}

	analysis, analyzeErr := h.svc.AnalyzeJob(c.Context(), req.JobDescription)
	if analyzeErr != nil {
		h.logger.Error("job analysis failed", "error", analyzeErr)
		err = respondError(c, http.StatusBadGateway, "generation service unavailable")
		return err
	}

	err = respondJSON(c, http.StatusOK, analysis)
	return err
}
