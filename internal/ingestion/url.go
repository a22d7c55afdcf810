package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hirelens/hirelens/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// browserRenderTimeout bounds the headless-browser fallback.
const browserRenderTimeout = 30 * time.Second

// FromURL fetches a job posting from a URL and returns its cleaned text.
// When useBrowser is true and the plain HTTP fetch yields too little text
// (a client-rendered SPA page), the page is re-rendered in a headless
// browser before extraction.
func FromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		log.Printf("Content too short (%d chars), falling back to headless browser for %s", len(text), urlStr)
		html, err := fetch.WithBrowser(ctx, urlStr, browserRenderTimeout)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
		text, err = fetch.ExtractMainText(html, fetch.JobPostingSelectors())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
		}
	}

	return CleanText(text), nil
}
