package backend

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

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func init() {
	// the backend reads money as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	LoginPath   string
	MaxFailures uint32
	OpenTimeout time.Duration
}

// Client talks to the storefront REST backend. Every call is a single
// attempt; failures are reported to the caller as-is.
type Client struct {
	baseURL    string
	loginPath  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[rawResponse]
	logger     *zap.Logger
}

type rawResponse struct {
	status int
	body   []byte
}

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/api/auth/login"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	maxFailures := cfg.MaxFailures
	breaker := gobreaker.NewCircuitBreaker[rawResponse](gobreaker.Settings{
		Name:    "storefront-backend",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// client-side rejections and caller cancellations say nothing about backend health
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			var se *StatusError
			if errors.As(err, &se) {
				return se.Status < http.StatusInternalServerError
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("backend breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		loginPath: cfg.LoginPath,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
		logger:  logger,
	}
}

type tokenKey struct{}

// WithToken attaches the bearer token the next backend calls should carry.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	res, err := c.breaker.Execute(func() (rawResponse, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return rawResponse{}, &TransportError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return rawResponse{}, &TransportError{Op: op, Err: err}
		}

		raw := rawResponse{status: resp.StatusCode, body: data}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return raw, &StatusError{Op: op, Status: resp.StatusCode, Message: messageFromBody(data)}
		}
		return raw, nil
	})

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.status),
		zap.Duration("latency", time.Since(start)),
	}

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn("backend call rejected by breaker", fields...)
			return &TransportError{Op: op, Err: ErrCircuitOpen}
		}
		c.logger.Warn("backend call failed", append(fields, zap.Error(err))...)
		return err
	}
	c.logger.Debug("backend call", fields...)

	if out == nil || len(bytes.TrimSpace(res.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
