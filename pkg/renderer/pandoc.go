package renderer

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrRenderFailure indicates the PDF engine failed.
var ErrRenderFailure = errors.New("render failure")

// RenderPDF converts a markdown file to PDF using pandoc with CSS
// styling. The markdown file is left on disk afterwards for diagnostics.
func RenderPDF(markdownPath, cssPath, outputPath string) (err error) {
	// Validate pandoc exists
	err = checkPandocExists()
	if err != nil {
		return err
	}

	// Validate input files exist
	err = validateFiles(markdownPath, cssPath)
	if err != nil {
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	// Build pandoc command
	//nolint:noctx // Context not available for exec.Command - pandoc is a long-running subprocess
	cmd := exec.Command(
		"pandoc",
		"-f", "markdown",
		"--standalone",
		"--css", cssPath,
		"--pdf-engine", "weasyprint",
		"-o", outputPath,
		markdownPath,
	)

	// Capture output
	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(ErrRenderFailure, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	//nolint:noctx // Context not available for version check
	cmd := exec.Command("pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.Wrapf(ErrRenderFailure, "pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	// Write file
	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}
