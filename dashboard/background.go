// SPDX-License-Identifier: MIT

package dashboard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Background fetch defaults.
const (
	DefaultBackgroundOpacity  = 0.25
	DefaultBackgroundMaxBytes = 8 << 20
	fallbackContentType       = "image/jpeg"
)

// ErrBackgroundFetch wraps every failure of FetchBackground.
var ErrBackgroundFetch = errors.New("dashboard: background fetch failed")

// FetchBackground downloads decorative art from url. It is best-effort:
// callers log a returned error and render without a background. The body is
// capped at maxBytes (DefaultBackgroundMaxBytes when <= 0) and must carry an
// image content type, or none at all (then assumed JPEG).
// A nil client means http.DefaultClient; cancellation follows ctx.
func FetchBackground(ctx context.Context, client *http.Client, url string, maxBytes int64) (*Background, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if maxBytes <= 0 {
		maxBytes = DefaultBackgroundMaxBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrBackgroundFetch, url, resp.Status)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = fallbackContentType
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s is %q, not an image", ErrBackgroundFetch, url, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackgroundFetch, err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrBackgroundFetch, url, maxBytes)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: %s returned an empty body", ErrBackgroundFetch, url)
	}

	return &Background{
		Source:      url,
		ContentType: contentType,
		Data:        base64.StdEncoding.EncodeToString(body),
		Opacity:     DefaultBackgroundOpacity,
	}, nil
}
