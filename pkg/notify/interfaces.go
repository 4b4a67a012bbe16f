package notify

import (
	"context"
)

// Publisher delivers a push message to a set of device tokens, best effort.
type Publisher interface {
	Publish(ctx context.Context, tokens []string, message Message) (*Result, error)
}

// TokenSource yields a bearer token for the push provider. Invalidate is
// called when the provider rejects the token, so the next call fetches anew.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}
