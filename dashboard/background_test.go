package dashboard_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradstats/dashboard"
)

func TestFetchBackground_OK(t *testing.T) {
	t.Parallel()

	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	bg, err := dashboard.FetchBackground(context.Background(), srv.Client(), srv.URL, 0)
	require.NoError(t, err)
	assert.Equal(t, srv.URL, bg.Source)
	assert.Equal(t, "image/jpeg", bg.ContentType)
	assert.Equal(t, dashboard.DefaultBackgroundOpacity, bg.Opacity)

	decoded, err := base64.StdEncoding.DecodeString(bg.Data)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestFetchBackground_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		handler  http.HandlerFunc
		maxBytes int64
	}{
		{"status", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}, 0},
		{"not an image", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}, 0},
		{"too large", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(make([]byte, 64))
		}, 16},
		{"empty", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/png")
		}, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			bg, err := dashboard.FetchBackground(context.Background(), srv.Client(), srv.URL, tc.maxBytes)
			assert.ErrorIs(t, err, dashboard.ErrBackgroundFetch)
			assert.Nil(t, bg)
		})
	}
}

func TestFetchBackground_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := dashboard.FetchBackground(ctx, srv.Client(), srv.URL, 0)
	assert.ErrorIs(t, err, dashboard.ErrBackgroundFetch)
}

func TestFetchBackground_BadURL(t *testing.T) {
	t.Parallel()

	_, err := dashboard.FetchBackground(context.Background(), nil, "://bad", 0)
	assert.ErrorIs(t, err, dashboard.ErrBackgroundFetch)
}
