package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	defaultFCMEndpoint = "https://fcm.googleapis.com"
	defaultConcurrency = 8
)

// FCMSender publishes through the FCM HTTP v1 API, one request per device token.
type FCMSender struct {
	ProjectID   string
	Tokens      TokenSource
	HTTPClient  *http.Client
	Endpoint    string
	Concurrency int
}

// NewFCMSender creates a sender for one project.
func NewFCMSender(projectID string, tokens TokenSource) *FCMSender {
	return &FCMSender{
		ProjectID:   projectID,
		Tokens:      tokens,
		HTTPClient:  http.DefaultClient,
		Endpoint:    defaultFCMEndpoint,
		Concurrency: defaultConcurrency,
	}
}

// Make sure we conform to the interface
var _ Publisher = (*FCMSender)(nil)

var errBearerRejected = errors.New("access token rejected")

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmRequest struct {
	Message fcmMessage `json:"message"`
}

// Publish fans the message out to every token and tallies the outcome.
// A failed token never fails the call; only a missing access token does.
func (s *FCMSender) Publish(ctx context.Context, tokens []string, message Message) (*Result, error) {
	result := &Result{}
	if len(tokens) == 0 {
		return result, nil
	}

	bearer, err := s.Tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu       sync.Mutex
		rejected bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for _, token := range tokens {
		token := token
		g.Go(func() error {
			sendErr := s.send(gctx, bearer, token, message)
			mu.Lock()
			defer mu.Unlock()
			if sendErr != nil {
				rejected = rejected || errors.Is(sendErr, errBearerRejected)
				result.Failed++
				result.Errors = append(result.Errors, sendErr.Error())
				return nil
			}
			result.Success++
			return nil
		})
	}
	_ = g.Wait()

	if rejected {
		slog.Warn("fcm rejected the access token, dropping it")
		s.Tokens.Invalidate()
	}
	if result.Failed > 0 {
		slog.Warn("push delivery partially failed", "success", result.Success, "failed", result.Failed)
	}
	return result, nil
}

func (s *FCMSender) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return defaultConcurrency
}

func (s *FCMSender) send(ctx context.Context, bearer, token string, message Message) error {
	payload, err := json.Marshal(fcmRequest{Message: fcmMessage{
		Token:        token,
		Notification: fcmNotification{Title: message.Title, Body: message.Body},
		Data:         message.Data,
	}})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/messages:send", s.Endpoint, s.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Content-Type", "application/json")

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("fcm returned %d: %w", resp.StatusCode, errBearerRejected)
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("fcm returned %d: %s", resp.StatusCode, bytes.TrimSpace(body))
}
