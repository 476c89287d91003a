package bffsdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Khan/genqlient/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records everything the test server saw for one request.
type capture struct {
	URL    string
	Header http.Header
	Body   payload
}

func newTestClient(t *testing.T, status int, body string, opts ...Option) (*Client, *capture) {
	t.Helper()

	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.URL = r.URL.String()
		got.Header = r.Header.Clone()

		byt, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(byt, &got.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	opts = append([]Option{WithHTTPClient(srv.Client())}, opts...)
	return NewClient(srv.URL+DefaultEndpoint, opts...), got
}

func TestClientDo(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c, got := newTestClient(t, 200, `{"data":{"Dataset":{"getDataset":{"name":"d1"}}}}`)

		data, err := c.Do(ctx, "getDataset", "query getDataset { x }", map[string]any{"name": "d1"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"Dataset":{"getDataset":{"name":"d1"}}}`, string(data))

		assert.Equal(t, DefaultEndpoint+"?o=getDataset", got.URL)
		assert.Equal(t, "getDataset", got.Body.OperationName)
		assert.Equal(t, "query getDataset { x }", got.Body.Query)
	})

	t.Run("operation-name-derived-from-document", func(t *testing.T) {
		c, got := newTestClient(t, 200, `{"data":{}}`)

		_, err := c.Do(ctx, "", "query listModels($input: ListModelInput!) { Model { listModels(input: $input) { totalCount } } }", nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultEndpoint+"?o=listModels", got.URL)
	})

	t.Run("auth-header", func(t *testing.T) {
		c, got := newTestClient(t, 200, `{"data":{}}`,
			WithTokenProvider(StaticToken("bearer", "tok")),
		)

		_, err := c.Do(ctx, "listModels", "query { x }", nil)
		require.NoError(t, err)
		assert.Equal(t, "bearer tok", got.Header.Get("Authorization"))
	})

	t.Run("graphql-errors", func(t *testing.T) {
		c, _ := newTestClient(t, 200, `{"data":{"Dataset":null},"errors":[{"message":"nope"}]}`)

		data, err := c.Do(ctx, "getDataset", "query { x }", nil)

		var cerr *ClientError
		require.ErrorAs(t, err, &cerr)
		assert.Len(t, cerr.Response.Errors, 1)
		// Partial data still comes back alongside the error.
		assert.JSONEq(t, `{"Dataset":null}`, string(data))
	})

	t.Run("http-error", func(t *testing.T) {
		c, _ := newTestClient(t, 502, `{"errors":[{"message":"bad gateway"}]}`)

		_, err := c.Do(ctx, "getDataset", "query { x }", nil)

		var cerr *ClientError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 502, cerr.StatusCode)
	})

	t.Run("non-json-error-body", func(t *testing.T) {
		c, _ := newTestClient(t, 503, `upstream unavailable`)

		_, err := c.Do(ctx, "getDataset", "query { x }", nil)

		var cerr *ClientError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, 503, cerr.StatusCode)
	})
}

func TestMiddlewareComposition(t *testing.T) {
	ctx := context.Background()

	t.Run("caller-middleware-runs-first", func(t *testing.T) {
		c, got := newTestClient(t, 200, `{"data":{}}`,
			WithRequestMiddleware(func(_ context.Context, req *Request) *Request {
				req.OperationName = "renamed"
				return req
			}),
		)

		_, err := c.Do(ctx, "original", "query { x }", nil)
		require.NoError(t, err)

		// The built-in tagging sees the caller's rename.
		assert.Equal(t, DefaultEndpoint+"?o=renamed", got.URL)
		assert.Equal(t, "renamed", got.Body.OperationName)
	})

	t.Run("caller-headers-survive", func(t *testing.T) {
		c, got := newTestClient(t, 200, `{"data":{}}`,
			WithRequestMiddleware(func(_ context.Context, req *Request) *Request {
				req.Header.Set("X-Custom", "yes")
				return req
			}),
			WithTokenProvider(StaticToken("bearer", "tok")),
		)

		_, err := c.Do(ctx, "op", "query { x }", nil)
		require.NoError(t, err)
		assert.Equal(t, "yes", got.Header.Get("X-Custom"))
		assert.Equal(t, "bearer tok", got.Header.Get("Authorization"))
	})

	t.Run("response-middleware-replaces-classifier", func(t *testing.T) {
		var seen *Response
		c, _ := newTestClient(t, 200, `{"data":{},"errors":[{"message":"x","extensions":{"code":"Forbidden"}}]}`,
			WithResponseMiddleware(func(resp *Response) { seen = resp }),
		)

		_, err := c.Do(ctx, "op", "query { x }", nil)
		assert.Error(t, err)
		require.NotNil(t, seen)
		assert.Len(t, seen.Errors, 1)
	})

	t.Run("reactor-fires-on-classified-errors", func(t *testing.T) {
		var notes []Notification
		r := NewReactor(ReactorConfig{
			ShowForbiddenNotification: func(n Notification) { notes = append(notes, n) },
		})
		c, _ := newTestClient(t, 200,
			`{"errors":[{"message":"x","extensions":{"code":"Forbidden","exception":{"details":{"verb":"delete","kind":"Pod","name":"foo"}}}}]}`,
			WithReactor(r),
		)

		_, err := c.Do(ctx, "op", "query { x }", nil)
		assert.Error(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "The current user has no permission to delete Pod foo", notes[0].Description)
	})
}

func TestCredentials(t *testing.T) {
	ctx := context.Background()

	// A server plus a client whose jar already holds a session cookie.
	setup := func(t *testing.T, opts ...Option) (*Client, *capture) {
		t.Helper()

		got := &capture{}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got.Header = r.Header.Clone()
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
		t.Cleanup(srv.Close)

		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		u, err := url.Parse(srv.URL)
		require.NoError(t, err)
		jar.SetCookies(u, []*http.Cookie{{Name: "session", Value: "abc"}})

		hc := srv.Client()
		hc.Jar = jar

		opts = append([]Option{WithHTTPClient(hc)}, opts...)
		return NewClient(srv.URL+DefaultEndpoint, opts...), got
	}

	t.Run("include-sends-jar-cookies", func(t *testing.T) {
		c, got := setup(t)

		_, err := c.Do(ctx, "op", "query { x }", nil)
		require.NoError(t, err)
		assert.Contains(t, got.Header.Get("Cookie"), "session=abc")
	})

	t.Run("omit-strips-jar", func(t *testing.T) {
		c, got := setup(t, WithRequestMiddleware(func(_ context.Context, req *Request) *Request {
			req.Credentials = CredentialsOmit
			return req
		}))

		_, err := c.Do(ctx, "op", "query { x }", nil)
		require.NoError(t, err)
		assert.Empty(t, got.Header.Get("Cookie"))
	})
}

func TestMakeRequest(t *testing.T) {
	ctx := context.Background()

	type inner struct {
		Name string `json:"name"`
	}
	type envelope struct {
		Dataset struct {
			GetDataset inner `json:"getDataset"`
		} `json:"Dataset"`
	}

	c, _ := newTestClient(t, 200, `{"data":{"Dataset":{"getDataset":{"name":"d1"}}}}`)

	var data envelope
	resp := &graphql.Response{Data: &data}
	err := c.MakeRequest(ctx, &graphql.Request{
		OpName: "getDataset",
		Query:  "query getDataset { x }",
	}, resp)

	require.NoError(t, err)
	assert.Equal(t, "d1", data.Dataset.GetDataset.Name)
}

func TestOperationName(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"query", "query listDatasets { x }", "listDatasets"},
		{"mutation", "mutation createDataset($input: CreateDatasetInput) { x }", "createDataset"},
		{"anonymous", "{ x }", ""},
		{"garbage", "not graphql at all", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationName(tt.query))
		})
	}
}
