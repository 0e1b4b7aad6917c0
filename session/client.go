package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "runner-game/session"

// TokenSource returns the bearer credential of the signed-in user. The
// session client only forwards it.
type TokenSource func() string

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return func() string { return token }
}

type Options struct {
	BaseURL string
	Token   TokenSource
	Timeout time.Duration
	Breaker *gobreaker.CircuitBreaker[[]byte]
	HTTP    *http.Client
}

// Client talks to the authoritative dino game-session service. It never
// retries; every request carries a fresh idempotency key so a retrying proxy
// cannot credit a pass twice.
type Client struct {
	baseURL string
	token   TokenSource
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[[]byte]
	http    *http.Client
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	token := opts.Token
	if token == nil {
		token = StaticToken("")
	}

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   token,
		timeout: timeout,
		breaker: opts.Breaker,
		http:    httpClient,
	}
}

func (c *Client) Start(ctx context.Context) (Session, error) {
	var s Session
	body, err := c.call(ctx, "session.start", http.MethodPost, "/api/dino/start")
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(body, &s); err != nil {
		return s, fmt.Errorf("decode start response: %w", err)
	}
	if s.ID == "" {
		return s, ErrNoSession
	}
	return s, nil
}

func (c *Client) ReportPass(ctx context.Context, id string) (Progress, error) {
	var p Progress
	if id == "" {
		return p, ErrNoSession
	}
	body, err := c.call(ctx, "session.pass", http.MethodPost, "/api/dino/"+id+"/jump")
	if err != nil {
		return p, err
	}
	if err := json.Unmarshal(body, &p); err != nil {
		return p, fmt.Errorf("decode jump response: %w", err)
	}
	return p, nil
}

func (c *Client) End(ctx context.Context, id string) (Result, error) {
	var r Result
	if id == "" {
		return r, ErrNoSession
	}
	body, err := c.call(ctx, "session.end", http.MethodPost, "/api/dino/"+id+"/end")
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return r, fmt.Errorf("decode end response: %w", err)
	}
	r.Status = StatusEnded
	return r, nil
}

// Active returns the session the service still considers running, or nil.
func (c *Client) Active(ctx context.Context) (*Session, error) {
	body, err := c.call(ctx, "session.active", http.MethodGet, "/api/dino/active")
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var s Session
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, fmt.Errorf("decode active response: %w", err)
	}
	if s.ID == "" {
		return nil, nil
	}
	return &s, nil
}

func (c *Client) History(ctx context.Context) ([]Session, error) {
	body, err := c.call(ctx, "session.history", http.MethodGet, "/api/dino/history")
	if err != nil {
		return nil, err
	}
	var sessions []Session
	if err := json.Unmarshal(body, &sessions); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}
	return sessions, nil
}

func (c *Client) call(ctx context.Context, op, method, path string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, op)
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	do := func() ([]byte, error) {
		return c.do(ctx, op, method, path)
	}

	var body []byte
	var err error
	if c.breaker != nil {
		body, err = c.breaker.Execute(do)
	} else {
		body, err = do()
	}

	if err != nil && !BreakerNeutral(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return body, err
}

func (c *Client) do(ctx context.Context, op, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var msg errorMessage
		_ = json.Unmarshal(body, &msg)

		if msg.Message == insufficientBalance {
			return nil, ErrInsufficientFunds
		}

		log.WithFields(log.Fields{
			"op":     op,
			"status": res.StatusCode,
		}).Debug("Session service rejected request")
		return nil, &APIError{Op: op, Status: res.StatusCode, Message: msg.Message}
	}

	return body, nil
}
