package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/haukened/dogo/internal/dns/common/log"
)

const dnsMessageContentType = "application/dns-message"

// HTTPSTransport is DNS-over-HTTPS (RFC 8484): a POST of the raw wire
// request body, returning the raw wire response body. net/http already
// handles chunked/length-prefixed framing correctly, so this is the one
// transport that needs no hand-rolled framing logic.
type HTTPSTransport struct {
	logger log.Logger
	client *http.Client
}

// NewHTTPSTransport builds an HTTPSTransport whose client times out after
// DefaultTimeout unless the caller's context carries its own deadline.
func NewHTTPSTransport(logger log.Logger) *HTTPSTransport {
	return &HTTPSTransport{
		logger: logger,
		client: &http.Client{},
	}
}

func (t *HTTPSTransport) Send(ctx context.Context, request []byte, endpoint Endpoint) ([]byte, error) {
	ctx, cancel := withDeadline(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, bytes.NewReader(request))
	if err != nil {
		return nil, fmt.Errorf("build doh request %s: %w", endpoint.URL, err)
	}
	req.Header.Set("Content-Type", dnsMessageContentType)
	req.Header.Set("Accept", dnsMessageContentType)

	t.logger.Debug(map[string]any{"url": endpoint.URL, "bytes": len(request)}, "sent doh query")

	resp, err := t.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &TimeoutError{Op: "https request"}
		}
		return nil, fmt.Errorf("doh request %s: %w", endpoint.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read doh response %s: %w", endpoint.URL, err)
	}
	t.logger.Debug(map[string]any{"url": endpoint.URL, "bytes": len(body)}, "received doh response")

	return body, nil
}
