package notify

import "context"

// NoOpPublisher is used when push delivery is not configured.
type NoOpPublisher struct{}

// Publish does nothing.
func (p *NoOpPublisher) Publish(ctx context.Context, tokens []string, message Message) (*Result, error) {
	return &Result{}, nil
}
