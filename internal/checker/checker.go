package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookmarks/marklint/internal/config"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// ProgressSink receives one event per probed URL, in probe order. It replaces
// any process-wide progress state so callers and tests can observe the
// success/failure signal directly.
type ProgressSink interface {
	Probe(url string, ok bool)
}

// Checker probes bookmark URLs for reachability.
type Checker interface {
	// Verify issues one GET per URL, sequentially and without retries.
	// At most limit URLs are probed when limit >= 0; javascript: URIs are
	// skipped and count neither as checked nor as failed. The returned map
	// holds a human-readable failure reason per unreachable URL; probed
	// URLs absent from the map were reached successfully.
	Verify(ctx context.Context, urls []string, limit int) map[string]string
}

type linkChecker struct {
	httpClient *resty.Client
	progress   ProgressSink
}

// New builds a Checker from the configured timeout and user agent. The
// progress sink may be nil when no feedback is wanted.
func New(cfg config.CheckerConfig, progress ProgressSink) Checker {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent)

	return &linkChecker{
		httpClient: client,
		progress:   progress,
	}
}

func (c *linkChecker) Verify(ctx context.Context, urls []string, limit int) map[string]string {
	if limit >= 0 && limit < len(urls) {
		urls = urls[:limit]
	}

	badURLs := make(map[string]string)
	for _, u := range urls {
		if strings.HasPrefix(u, "javascript:") {
			log.Debugf("Skipping javascript URI %s", u)
			continue
		}

		reason, ok := c.probe(ctx, u)
		if !ok {
			badURLs[u] = reason
		}
		if c.progress != nil {
			c.progress.Probe(u, ok)
		}
	}

	return badURLs
}

func (c *linkChecker) probe(ctx context.Context, rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "Not a valid URL!!", false
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(rawURL)

	if err != nil {
		if isTimeout(err) {
			return "Timeout", false
		}
		log.Debugf("Connection failure for %s: %v", rawURL, err)
		return "Connection failure", false
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Sprintf("Status Code %d (%s)", resp.StatusCode(), http.StatusText(resp.StatusCode())), false
	}

	return "", true
}

func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
