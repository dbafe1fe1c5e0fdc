package remote

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/amonks/focusstation/session"
)

// OpenOptions configures Open.
type OpenOptions struct {
	Timeout time.Duration

	// DefaultPath is the local log used when the URL is empty.
	DefaultPath string
}

// Open returns the repository addressed by rawURL: an HTTP client for
// http(s) URLs, otherwise a local file log for file:// URLs and plain paths.
func Open(rawURL string, opts OpenOptions) (session.Repository, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		if opts.DefaultPath == "" {
			return nil, fmt.Errorf("no session log configured")
		}
		return NewLog(NewFileBackend(opts.DefaultPath)), nil
	}

	lower := strings.ToLower(rawURL)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		if _, err := url.Parse(rawURL); err != nil {
			return nil, fmt.Errorf("parse session log url: %w", err)
		}
		return NewClient(rawURL, opts.Timeout), nil
	case strings.HasPrefix(lower, "file://"):
		parsed, err := url.Parse(rawURL)
		if err != nil {
			return nil, fmt.Errorf("parse session log url: %w", err)
		}
		if parsed.Path == "" {
			return nil, fmt.Errorf("file url %q has no path", rawURL)
		}
		return NewLog(NewFileBackend(parsed.Path)), nil
	case strings.Contains(rawURL, "://"):
		return nil, fmt.Errorf("unsupported session log url %q", rawURL)
	default:
		return NewLog(NewFileBackend(rawURL)), nil
	}
}
