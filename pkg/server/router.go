package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/easyhired/resumer/pkg/auth"
)

// New builds the Fiber application with all routes registered.
// Downloads stay public so generated links work in a browser without a
// token; everything that spends oracle calls requires one.
func New(h *Handlers, issuer *auth.TokenIssuer, users *auth.UserStore, environment string, allowedOrigins []string) (app *fiber.App) {
	app = fiber.New(fiber.Config{
		AppName: "resumer",
	})

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(corsConfig(environment, allowedOrigins)))

	app.Get("/", h.Root)
	app.Post("/signin", h.SignIn)
	app.Get("/download/resume/:filename", h.DownloadResume)
	app.Get("/download/cover_letter/:filename", h.DownloadCoverLetter)

	protected := auth.Middleware(issuer, users)
	app.Post("/tailor-resume", protected, h.TailorResume)
	app.Get("/templates", protected, h.Templates)
	app.Get("/cover_letter/content/:filename", protected, h.CoverLetterContent)
	app.Post("/analyze-job", protected, h.AnalyzeJob)

	return app
}

// corsConfig allows everything in development and only the configured
// origins in production.
func corsConfig(environment string, allowedOrigins []string) (cfg cors.Config) {
	if environment == "production" && len(allowedOrigins) > 0 {
		cfg = cors.Config{
			AllowOrigins: strings.Join(allowedOrigins, ","),
		}
		return cfg
	}

	cfg = cors.Config{
		AllowOrigins: "*",
	}
	return cfg
}
