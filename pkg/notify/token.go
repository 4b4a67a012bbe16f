package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	messagingScope  = "https://www.googleapis.com/auth/firebase.messaging"
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// expiryMargin renews a token this long before the provider expires it.
	expiryMargin = 60 * time.Second
)

// TokenFetcher obtains a fresh access token and how long it is valid.
type TokenFetcher func(ctx context.Context) (token string, ttl time.Duration, err error)

// TokenCache holds one access token until shortly before it expires.
type TokenCache struct {
	mu     sync.Mutex
	fetch  TokenFetcher
	now    func() time.Time
	token  string
	expiry time.Time
}

// NewTokenCache wraps fetch with a TTL cache. A nil now uses the wall clock.
func NewTokenCache(fetch TokenFetcher, now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}
	return &TokenCache{fetch: fetch, now: now}
}

var _ TokenSource = (*TokenCache)(nil)

// Token returns the cached token, fetching a new one when it is missing or stale.
func (c *TokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiry) {
		return c.token, nil
	}

	token, ttl, err := c.fetch(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch access token: %w", err)
	}
	c.token = token
	c.expiry = c.now().Add(ttl - expiryMargin)
	return token, nil
}

// Invalidate drops the cached token, e.g. after the provider rejected it.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// ServiceAccount exchanges a signed service-account assertion for an access token.
type ServiceAccount struct {
	ClientEmail string
	PrivateKey  string
	TokenURL    string
	HTTPClient  *http.Client
}

func (a *ServiceAccount) tokenURL() string {
	if a.TokenURL != "" {
		return a.TokenURL
	}
	return defaultTokenURL
}

// Assertion signs the RS256 JWT presented to the token endpoint.
func (a *ServiceAccount) Assertion(now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(a.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("failed to parse service account key: %w", err)
	}

	claims := jwt.MapClaims{
		"iss":   a.ClientEmail,
		"scope": messagingScope,
		"aud":   a.tokenURL(),
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign assertion: %w", err)
	}
	return signed, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Fetch is a TokenFetcher.
func (a *ServiceAccount) Fetch(ctx context.Context) (string, time.Duration, error) {
	assertion, err := a.Assertion(time.Now())
	if err != nil {
		return "", 0, err
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := a.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to request access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("token endpoint returned %d", resp.StatusCode)
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return "", 0, fmt.Errorf("token endpoint returned no access token")
	}
	return body.AccessToken, time.Duration(body.ExpiresIn) * time.Second, nil
}
