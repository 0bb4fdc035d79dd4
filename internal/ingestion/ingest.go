// Package ingestion loads job-description text from files or URLs. HTML
// content is reduced to readable text before it enters the analysis pipeline.
package ingestion

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const fetchTimeout = 30 * time.Second

// noiseSelectors are stripped from fetched pages before text extraction.
var noiseSelectors = []string{
	"script", "style", "nav", "header", "footer", "iframe", "noscript",
	"form", "button", "aside",
}

// contentSelectors are tried in order; the first non-trivial match wins.
var contentSelectors = []string{
	"main", "article", "[class*=job-description]", "[class*=description]", "body",
}

// FromFile reads a document from disk and normalizes its text.
func FromFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", types.NewValidationError("reading document %s: %v", path, err)
	}
	text := CleanText(string(raw))
	if text == "" {
		return "", types.NewValidationError("document %s is empty", path)
	}
	return text, nil
}

// FromURL fetches a job posting page and extracts its readable text.
func FromURL(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", types.NewValidationError("invalid URL %q", rawURL)
	}

	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", types.NewExternalServiceError(err, "building request for %s", rawURL)
	}
	req.Header.Set("User-Agent", "resume-analyzer/1.0")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", types.NewExternalServiceError(err, "fetching %s", rawURL)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", types.NewExternalServiceError(
			fmt.Errorf("status %d", resp.StatusCode), "fetching %s", rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", types.NewDocumentParsingError("parsing HTML from %s: %v", rawURL, err)
	}

	text := CleanText(ExtractMainText(doc))
	if text == "" {
		return "", types.NewDocumentParsingError("no readable text extracted from %s", rawURL)
	}
	return text, nil
}

// ExtractMainText strips noise elements and returns the text of the most
// specific content region found.
func ExtractMainText(doc *goquery.Document) string {
	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}
	for _, selector := range contentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		text := sel.First().Text()
		if len(strings.TrimSpace(text)) > 100 {
			return text
		}
	}
	return doc.Text()
}

// CleanText normalizes line endings, trims per-line whitespace, and collapses
// excessive blank lines while preserving the document's line structure, which
// section-heading detection depends on.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			cleaned = append(cleaned, "")
			continue
		}
		blanks = 0
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
