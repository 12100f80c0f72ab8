package catalog

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/erraggy/oascatalog"
	"github.com/erraggy/oascatalog/oaserrors"
)

const (
	// defaultRetryAttempts is how many times a URL fetch is attempted
	// before giving up.
	defaultRetryAttempts = 5
	// defaultFetchTimeout bounds each fetch attempt when no HTTPClient is
	// configured.
	defaultFetchTimeout = 30 * time.Second
	// MaxFetchSize is the maximum size in bytes accepted for a fetched
	// document (10MB).
	MaxFetchSize = 10 * 1024 * 1024
)

// isURL reports whether the spec path should be fetched over HTTP.
func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// baseEndpoint derives the endpoint prefix from a source URL: the URL with
// its last path segment removed and query/fragment dropped. For example
// https://api.example.com/v1/openapi.json yields https://api.example.com/v1.
func baseEndpoint(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "/" || u.Path == "." {
		u.Path = ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// httpClient returns the configured client, or a default one with a
// 30-second timeout.
func (e *Extractor) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	client := &http.Client{Timeout: defaultFetchTimeout}
	if e.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return client
}

// fetchURL fetches the document body with retries and returns it along with
// the response Content-Type. Non-200 responses and transport failures are
// retried; malformed requests and oversized bodies are not.
func (e *Extractor) fetchURL(rawURL string) ([]byte, string, error) {
	attempts := e.RetryAttempts
	if attempts <= 0 {
		attempts = defaultRetryAttempts
	}
	client := e.httpClient()

	ua := e.UserAgent
	if ua == "" {
		ua = oascatalog.UserAgent()
	}

	var data []byte
	var contentType string

	err := retry.Do(
		func() error {
			req, err := http.NewRequest(http.MethodGet, rawURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("User-Agent", ua)

			resp, err := client.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %s", resp.Status)
			}

			body, err := io.ReadAll(io.LimitReader(resp.Body, MaxFetchSize+1))
			if err != nil {
				return err
			}
			if int64(len(body)) > MaxFetchSize {
				return retry.Unrecoverable(&oaserrors.ResourceLimitError{
					ResourceType: "file_size",
					Limit:        MaxFetchSize,
					Actual:       int64(len(body)),
					Message:      "fetched document exceeds size limit",
				})
			}

			data = body
			contentType = resp.Header.Get("Content-Type")
			return nil
		},
		retry.Attempts(uint(attempts)),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			e.log().Warn("retrying fetch", "url", rawURL, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, "", &oaserrors.ParseError{
			Path:    rawURL,
			Message: fmt.Sprintf("failed to fetch after %d attempts", attempts),
			Cause:   err,
		}
	}

	e.log().Info("fetched document", "url", rawURL, "bytes", len(data))
	return data, contentType, nil
}
