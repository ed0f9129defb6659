package client

import (
	"context"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
)

// DefaultTokenKey is the storage key holding the bearer token.
const DefaultTokenKey = "auth_token"

// TokenProvider supplies the bearer token read before every request.
// An empty token sends the request anonymously.
type TokenProvider = rest.TokenProvider

// TokenFunc adapts a function to TokenProvider.
type TokenFunc = rest.TokenFunc

// StaticToken always returns token.
func StaticToken(token string) TokenProvider {
	return TokenFunc(func(context.Context) (string, error) { return token, nil })
}

// TokenStore is the read side of a durable key-value store.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

// StoreTokenProvider reads the token from store under key on every call, so
// a token written (or cleared) by a login flow is seen by the next request.
// An empty key means DefaultTokenKey.
func StoreTokenProvider(store TokenStore, key string) TokenProvider {
	if key == "" {
		key = DefaultTokenKey
	}
	return TokenFunc(func(ctx context.Context) (string, error) {
		tok, _, err := store.Get(ctx, key)
		return tok, err
	})
}
