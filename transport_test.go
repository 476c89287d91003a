package bffsdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceTransport(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: traceTransport{http.DefaultTransport}}

	t.Run("generates-id", func(t *testing.T) {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.NotEmpty(t, got.Get("X-Request-Id"))
	})

	t.Run("preserves-caller-id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-Id", "caller-id")

		resp, err := client.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, "caller-id", got.Get("X-Request-Id"))
	})
}

func TestCookieTransport(t *testing.T) {
	var got []*http.Cookie
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Cookies()
	}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: cookieTransport{
		cookies:      []*http.Cookie{{Name: "session", Value: "abc"}},
		RoundTripper: http.DefaultTransport,
	}}

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	require.Len(t, got, 1)
	assert.Equal(t, "session", got[0].Name)
	assert.Equal(t, "abc", got[0].Value)
}

func TestWithCookies(t *testing.T) {
	ctx := context.Background()

	cookieNames := func(cookies []*http.Cookie) []string {
		names := make([]string, 0, len(cookies))
		for _, c := range cookies {
			names = append(names, c.Name)
		}
		return names
	}

	t.Run("default-client-keeps-jar", func(t *testing.T) {
		var got []*http.Cookie
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Cookies()
			// The jar should pick this up for the next request.
			http.SetCookie(w, &http.Cookie{Name: "srvsess", Value: "1"})
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
		t.Cleanup(srv.Close)

		c := NewClient(srv.URL+DefaultEndpoint,
			WithCookies([]*http.Cookie{{Name: "handoff", Value: "abc"}}),
		)

		_, err := c.Do(ctx, "op", "query { x }", nil)
		require.NoError(t, err)
		assert.Contains(t, cookieNames(got), "handoff")

		_, err = c.Do(ctx, "op", "query { x }", nil)
		require.NoError(t, err)
		assert.Contains(t, cookieNames(got), "handoff")
		assert.Contains(t, cookieNames(got), "srvsess")
	})

	t.Run("order-independent", func(t *testing.T) {
		var got []*http.Cookie
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Cookies()
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
		t.Cleanup(srv.Close)

		orders := map[string][]Option{
			"cookies-first": {
				WithCookies([]*http.Cookie{{Name: "handoff", Value: "abc"}}),
				WithHTTPClient(srv.Client()),
			},
			"cookies-last": {
				WithHTTPClient(srv.Client()),
				WithCookies([]*http.Cookie{{Name: "handoff", Value: "abc"}}),
			},
		}
		for name, opts := range orders {
			t.Run(name, func(t *testing.T) {
				got = nil
				c := NewClient(srv.URL+DefaultEndpoint, opts...)

				_, err := c.Do(ctx, "op", "query { x }", nil)
				require.NoError(t, err)
				assert.Contains(t, cookieNames(got), "handoff")
			})
		}
	})
}

func TestThrottled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	client := &http.Client{Transport: Throttled(nil, 1000)}

	for range 3 {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		_ = resp.Body.Close()
	}
}
