package bffsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// CredentialsMode controls whether cookies accompany the request, mirroring
// the fetch() credentials switch the console uses.
type CredentialsMode string

const (
	// CredentialsOmit sends the request without the client's cookie jar.
	CredentialsOmit CredentialsMode = "omit"
	// CredentialsInclude sends cookies along with the request.
	CredentialsInclude CredentialsMode = "include"
)

// Request describes one outgoing GraphQL call before it hits the wire.
// Middleware may replace any field. The descriptor is never reused after
// the request is sent.
type Request struct {
	URL           string
	OperationName string
	Query         string
	Variables     any
	Header        http.Header
	Credentials   CredentialsMode
}

// RequestMiddleware transforms a request descriptor before transmission. It
// must not block on the network.
type RequestMiddleware func(ctx context.Context, req *Request) *Request

// ResponseMiddleware observes a completed wire response. It is side
// effecting only and must not mutate the response.
type ResponseMiddleware func(resp *Response)

// opQueryParam is the query parameter carrying the operation name. It is
// additive: the server routes on the request body, the parameter only makes
// operations identifiable in network logs.
const opQueryParam = "o"

// AuthMiddleware returns the built-in request middleware. It tags the
// request URL with the operation name, defaults to cookie credentials when
// the caller left them unset, and attaches "Authorization: {token_type}
// {id_token}" whenever the provider yields a complete token. It never
// fails: an unreadable or malformed credential degrades to an
// unauthenticated request with a warning.
func AuthMiddleware(tokens TokenProvider) RequestMiddleware {
	return func(ctx context.Context, req *Request) *Request {
		base, rawQuery, _ := strings.Cut(req.URL, "?")
		query, err := url.ParseQuery(rawQuery)
		if err != nil {
			log(ctx).Warn("unparseable request query", "url", req.URL, "err", err)
			query = url.Values{}
		}
		if req.OperationName != "" {
			query.Set(opQueryParam, req.OperationName)
		}
		if len(query) > 0 {
			req.URL = base + "?" + query.Encode()
		} else {
			req.URL = base
		}

		if req.Credentials == "" {
			req.Credentials = CredentialsInclude
		}

		if tokens == nil {
			return req
		}
		tok, err := tokens.Token(ctx)
		if err != nil {
			log(ctx).Warn("getting auth data failed", "err", err)
			return req
		}
		if tok == nil || tok.TokenType == "" || tok.AccessToken == "" {
			return req
		}
		if req.Header == nil {
			req.Header = http.Header{}
		}
		req.Header.Set("Authorization", tok.TokenType+" "+tok.AccessToken)
		return req
	}
}
