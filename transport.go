package bffsdk

import (
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// traceTransport tags outgoing requests with an X-Request-Id so they can be
// correlated with BFF access logs. Caller-set IDs are preserved.
type traceTransport struct {
	http.RoundTripper
}

func (t traceTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if r.Header.Get("X-Request-Id") == "" {
		r = r.Clone(r.Context())
		r.Header.Set("X-Request-Id", uuid.NewString())
	}
	return t.RoundTripper.RoundTrip(r)
}

// throttledTransport rate limits requests, for SDK consumers doing bulk
// work against a shared BFF.
type throttledTransport struct {
	http.RoundTripper
	*rate.Limiter
}

func (t throttledTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(r.Context()); err != nil {
		return nil, err
	}
	return t.RoundTripper.RoundTrip(r)
}

// cookieTransport adds fixed cookies to all requests, for sessions handed
// over from outside the SDK.
type cookieTransport struct {
	cookies []*http.Cookie
	http.RoundTripper
}

func (t cookieTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	for _, c := range t.cookies {
		r.AddCookie(c)
	}
	return t.RoundTripper.RoundTrip(r)
}

// Throttled caps the client at rps requests per second.
func Throttled(rt http.RoundTripper, rps float64) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return throttledTransport{
		RoundTripper: rt,
		Limiter:      rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// WithCookies sends the given cookies on every request, in addition to the
// client's jar. The transport wrapping happens after all options resolve,
// so the order relative to WithHTTPClient doesn't matter.
func WithCookies(cookies []*http.Cookie) Option {
	return func(c *config) {
		c.cookies = append(c.cookies, cookies...)
	}
}
