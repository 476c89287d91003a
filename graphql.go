package bffsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/Khan/genqlient/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// DefaultEndpoint is the fixed BFF path. Historically there were separate
// dev and prod endpoints; they have been identical for a long time, so the
// split is gone.
const DefaultEndpoint = "/kubeagi-apis/bff"

// Response is the standard GraphQL response envelope.
type Response struct {
	Data       json.RawMessage `json:"data,omitempty"`
	Errors     gqlerror.List   `json:"errors,omitempty"`
	Extensions map[string]any  `json:"extensions,omitempty"`
}

// ClientError is returned when the server responds with GraphQL errors or a
// non-2xx status. The response stays attached so callers (and the fetch
// layer) can still reach data returned alongside errors.
type ClientError struct {
	Response   *Response
	StatusCode int
}

// Error implements error.
func (e *ClientError) Error() string {
	if e.Response != nil && len(e.Response.Errors) > 0 {
		return e.Response.Errors.Error()
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Unwrap exposes the underlying GraphQL errors for errors.As/Is.
func (e *ClientError) Unwrap() error {
	if e.Response != nil && len(e.Response.Errors) > 0 {
		return e.Response.Errors
	}
	return nil
}

// Client executes GraphQL operations against the BFF. It satisfies
// graphql.Client so the generated bindings consume it directly, and it runs
// every call through the configured request and response middleware.
type Client struct {
	endpoint string
	http     *http.Client
	request  RequestMiddleware
	response ResponseMiddleware
}

var _ graphql.Client = (*Client)(nil)

type config struct {
	httpClient *http.Client
	cookies    []*http.Cookie
	tokens     TokenProvider
	request    RequestMiddleware
	response   ResponseMiddleware
	reactor    *Reactor
}

// Option configures a Client.
type Option func(*config)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) { c.httpClient = httpClient }
}

// WithTokenProvider sets the credential source used by the built-in request
// middleware.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *config) { c.tokens = tokens }
}

// WithRequestMiddleware layers additional request middleware. The supplied
// stage always runs first; operation tagging and auth injection run on its
// output so they can't be bypassed.
func WithRequestMiddleware(m RequestMiddleware) Option {
	return func(c *config) { c.request = m }
}

// WithResponseMiddleware replaces the built-in error classifier entirely.
// Classification is opt-out, not stacked.
func WithResponseMiddleware(m ResponseMiddleware) Option {
	return func(c *config) { c.response = m }
}

// WithReactor keeps the built-in classifier but routes its reactions
// through the given Reactor.
func WithReactor(r *Reactor) Option {
	return func(c *config) { c.reactor = r }
}

// NewClient returns a Client for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		jar, _ := cookiejar.New(nil)
		httpClient = &http.Client{
			Jar:       jar,
			Transport: traceTransport{http.DefaultTransport},
		}
	}
	if len(cfg.cookies) > 0 {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		clone := *httpClient
		clone.Transport = cookieTransport{cookies: cfg.cookies, RoundTripper: base}
		httpClient = &clone
	}

	builtin := AuthMiddleware(cfg.tokens)
	request := builtin
	if outer := cfg.request; outer != nil {
		request = func(ctx context.Context, req *Request) *Request {
			return builtin(ctx, outer(ctx, req))
		}
	}

	response := cfg.response
	if response == nil {
		reactor := cfg.reactor
		if reactor == nil {
			reactor = NewReactor(ReactorConfig{})
		}
		response = reactor.OnResponse
	}

	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		request:  request,
		response: response,
	}
}

// payload is the GraphQL-over-HTTP request body.
type payload struct {
	OperationName string `json:"operationName,omitempty"`
	Query         string `json:"query"`
	Variables     any    `json:"variables,omitempty"`
}

// MakeRequest implements graphql.Client.
func (c *Client) MakeRequest(ctx context.Context, req *graphql.Request, resp *graphql.Response) error {
	wire, err := c.do(ctx, req.OpName, req.Query, req.Variables)
	if wire == nil || resp == nil {
		return err
	}
	resp.Errors = wire.Errors
	resp.Extensions = wire.Extensions
	if len(wire.Data) > 0 && resp.Data != nil {
		if uerr := json.Unmarshal(wire.Data, resp.Data); uerr != nil && err == nil {
			err = fmt.Errorf("decoding response: %w", uerr)
		}
	}
	return err
}

// Do executes an operation and returns the raw data payload. The cached
// fetch wrappers use this path so they can normalize partial payloads
// before decoding.
func (c *Client) Do(ctx context.Context, operationName, query string, variables any) (json.RawMessage, error) {
	wire, err := c.do(ctx, operationName, query, variables)
	if wire == nil {
		return nil, err
	}
	return wire.Data, err
}

func (c *Client) do(ctx context.Context, opName, query string, variables any) (*Response, error) {
	if opName == "" {
		opName = operationName(query)
	}

	req := c.request(ctx, &Request{
		URL:           c.endpoint,
		OperationName: opName,
		Query:         query,
		Variables:     variables,
		Header: http.Header{
			"Content-Type": []string{"application/json"},
			"Accept":       []string{"application/json"},
		},
	})

	body, err := json.Marshal(payload{
		OperationName: req.OperationName,
		Query:         req.Query,
		Variables:     req.Variables,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for name, values := range req.Header {
		hreq.Header[name] = values
	}

	httpClient := c.http
	if req.Credentials == CredentialsOmit && httpClient.Jar != nil {
		clone := *httpClient
		clone.Jar = nil
		httpClient = &clone
	}

	hresp, err := httpClient.Do(hreq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = hresp.Body.Close() }()

	byt, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	wire := &Response{}
	if jerr := json.Unmarshal(byt, wire); jerr != nil {
		if hresp.StatusCode != http.StatusOK {
			return nil, &ClientError{Response: &Response{}, StatusCode: hresp.StatusCode}
		}
		return nil, fmt.Errorf("decoding response: %w", jerr)
	}

	// Classification is a side channel: reactions fire here, but the
	// errors still flow back to the caller unmodified.
	c.response(wire)

	if len(wire.Errors) > 0 || hresp.StatusCode != http.StatusOK {
		return wire, &ClientError{Response: wire, StatusCode: hresp.StatusCode}
	}
	return wire, nil
}

// operationName extracts the first named operation from a document so URL
// tagging still works when the caller didn't supply a name.
func operationName(query string) string {
	src := source.NewSource(&source.Source{Body: []byte(query)})
	doc, err := parser.Parse(parser.ParseParams{Source: src})
	if err != nil {
		return ""
	}
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok || op.Name == nil {
			continue
		}
		return op.Name.Value
	}
	return ""
}
