package jd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrFetchFailure indicates a job posting could not be retrieved.
var ErrFetchFailure = errors.New("fetch failure")

// Resolve returns the job description text for a submission. A URL is
// fetched and stripped of HTML; anything else is treated as the job
// description itself.
func Resolve(ctx context.Context, input string) (content string, err error) {
	parsedURL, urlErr := url.Parse(strings.TrimSpace(input))
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		content, err = fetchFromURL(ctx, strings.TrimSpace(input))
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch job description from URL: %s", input)
			return content, err
		}
		return content, err
	}

	content = strings.TrimSpace(input)
	if content == "" {
		err = errors.Wrap(ErrFetchFailure, "empty job description")
		return content, err
	}

	return content, err
}

// fetchFromURL retrieves a job posting page and strips it to text.
func fetchFromURL(ctx context.Context, urlStr string) (content string, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return content, err
	}

	// Job boards reject requests without a browser-ish user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; resumer/1.0)")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrapf(ErrFetchFailure, "HTTP request failed: %v", err)
		return content, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Wrapf(ErrFetchFailure, "HTTP request failed with status: %d", resp.StatusCode)
		return content, err
	}

	// Read response body
	var bodyBytes []byte
	bodyBytes, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return content, err
	}

	content = stripBasicHTML(string(bodyBytes))
	if content == "" {
		err = errors.Wrap(ErrFetchFailure, "fetched content is empty after processing")
		return content, err
	}

	return content, err
}

// stripBasicHTML removes basic HTML tags (simple implementation).
func stripBasicHTML(html string) (text string) {
	text = html

	// Remove script and style tags with their content
	text = removeTagAndContent(text, "script")
	text = removeTagAndContent(text, "style")

	// Remove HTML tags
	inTag := false
	result := strings.Builder{}
	for _, char := range text {
		if char == '<' {
			inTag = true
			continue
		}
		if char == '>' {
			inTag = false
			continue
		}
		if !inTag {
			result.WriteRune(char)
		}
	}

	text = result.String()

	// Clean up whitespace
	text = strings.TrimSpace(text)

	return text
}

// removeTagAndContent removes a specific HTML tag and its content.
func removeTagAndContent(html, tag string) (result string) {
	result = html
	openTag := "<" + tag
	closeTag := "</" + tag + ">"

	for {
		startIdx := strings.Index(result, openTag)
		if startIdx == -1 {
			break
		}

		endIdx := strings.Index(result[startIdx:], closeTag)
		if endIdx == -1 {
			break
		}

		endIdx += startIdx + len(closeTag)
		result = result[:startIdx] + result[endIdx:]
	}

	return result
}
