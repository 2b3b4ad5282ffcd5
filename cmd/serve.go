package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/easyhired/resumer/pkg/auth"
	"github.com/easyhired/resumer/pkg/config"
	"github.com/easyhired/resumer/pkg/llm"
	"github.com/easyhired/resumer/pkg/markdown"
	"github.com/easyhired/resumer/pkg/resume"
	"github.com/easyhired/resumer/pkg/server"
	"github.com/easyhired/resumer/pkg/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the resume tailoring HTTP server.

Example:
  resumer serve
  resumer serve --config ./config.json --skip-pdf`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Skip PDF generation (markdown and text outputs only)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	ctx := context.Background()

	var oracle *llm.GeminiClient
	oracle, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GetModel())
	if err != nil {
		err = errors.Wrap(err, "failed to create oracle client")
		return err
	}

	var fragments markdown.FragmentSet
	fragments, err = markdown.LoadFragments(cfg.FragmentDir)
	if err != nil {
		err = errors.Wrap(err, "failed to load fragment templates")
		return err
	}

	store := resume.NewStore(cfg.TemplateDir)
	users := auth.NewUserStore(cfg.UsersFile)
	issuer := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.GetTTLMinutes())*time.Minute)

	svc := service.New(service.Options{
		Store:     store,
		Fragments: fragments,
		Oracle:    oracle,
		OutputDir: cfg.OutputDir,
		ResumeCSS: cfg.Styles.Resume,
		CoverCSS:  cfg.Styles.CoverLetter,
		SkipPDF:   skipPDF,
		Logger:    logger,
	})

	handlers := server.NewHandlers(svc, users, issuer, store, cfg.OutputDir, logger)
	app := server.New(handlers, issuer, users, cfg.Environment, cfg.AllowedOrigins)

	logger.Info("HTTP server listening", "port", cfg.Port, "environment", cfg.Environment)
	err = app.Listen(":" + cfg.Port)
	if err != nil {
		err = errors.Wrap(err, "server stopped")
		return err
	}

	return err
}
