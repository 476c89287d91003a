package bffsdk

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
)

// AuthDataKey is the well-known name under which the console persists its
// credentials. The CLI reuses it as the default file name.
const AuthDataKey = "authData"

// authData mirrors the persisted credential blob:
//
//	{"token":{"token_type":"Bearer","id_token":"..."}}
type authData struct {
	Token struct {
		TokenType string `json:"token_type"`
		IDToken   string `json:"id_token"`
	} `json:"token"`
}

// TokenProvider supplies the credential attached to outgoing requests. A
// nil token (with nil error) means the request goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// TokenProviderFunc adapts a plain function to a TokenProvider.
type TokenProviderFunc func(ctx context.Context) (*oauth2.Token, error)

// Token implements TokenProvider.
func (f TokenProviderFunc) Token(ctx context.Context) (*oauth2.Token, error) {
	return f(ctx)
}

// TokenSource adapts an oauth2.TokenSource, so providers that refresh
// themselves (client credentials, OIDC) plug in directly.
func TokenSource(src oauth2.TokenSource) TokenProvider {
	return TokenProviderFunc(func(context.Context) (*oauth2.Token, error) {
		return src.Token()
	})
}

// StaticToken returns a provider that always yields the same credential.
func StaticToken(tokenType, idToken string) TokenProvider {
	return TokenSource(oauth2.StaticTokenSource(&oauth2.Token{
		TokenType:   tokenType,
		AccessToken: idToken,
	}))
}

// AuthDataFile reads the persisted authData blob from disk on every request
// so external logins are picked up without restarting.
func AuthDataFile(path string) TokenProvider {
	return TokenProviderFunc(func(ctx context.Context) (*oauth2.Token, error) {
		byt, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseAuthData(byt)
	})
}

// ParseAuthData decodes a persisted credential blob. An incomplete token
// yields (nil, nil) so the request proceeds unauthenticated; only malformed
// JSON is an error.
func ParseAuthData(byt []byte) (*oauth2.Token, error) {
	var data authData
	if err := json.Unmarshal(byt, &data); err != nil {
		return nil, err
	}
	if data.Token.TokenType == "" || data.Token.IDToken == "" {
		return nil, nil
	}
	return &oauth2.Token{
		TokenType:   data.Token.TokenType,
		AccessToken: data.Token.IDToken,
	}, nil
}
