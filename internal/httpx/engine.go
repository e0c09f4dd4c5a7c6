package httpx

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/saharshpoddar/learning-gateway/internal/config"
)

const (
	retryInitialInterval = 100 * time.Millisecond
	retryMultiplier      = 2
	retryRandomization   = 0.25

	maxErrorBodyBytes = 2048
)

// Engine is the single shared HTTP client used by all product clients. It is
// safe for concurrent use; request state is per call.
type Engine struct {
	client     *http.Client
	creds      config.Credentials
	maxRetries int
}

// NewEngine builds the engine from the runtime config. Connect and read
// timeouts come straight from the config block.
func NewEngine(cfg *config.Config) *Engine {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	transport := &http.Transport{
		DialContext:         dialer.DialContext,
		MaxIdleConns:        32,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
	}
	return &Engine{
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.ReadTimeout,
		},
		creds:      cfg.Credentials,
		maxRetries: cfg.Preferences.MaxRetries,
	}
}

// authorize injects the authentication header: Basic email:secret for API
// tokens, Bearer secret for personal access tokens.
func (e *Engine) authorize(req *http.Request) {
	switch e.creds.AuthType {
	case config.AuthPersonalAccessToken:
		req.Header.Set("Authorization", "Bearer "+e.creds.Secret)
	default:
		raw := e.creds.Email + ":" + e.creds.Secret
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(raw)))
	}
}

// Do performs an authenticated JSON request against baseURL+path. A non-nil
// body is encoded as JSON; a non-nil out receives the decoded response.
// GET-style requests are retried on both transport and server errors;
// mutating verbs retry only on transport errors so a write is never applied
// twice.
func (e *Engine) Do(ctx context.Context, method, baseURL, path string, query url.Values, body, out any) error {
	var encoded []byte
	if body != nil {
		var err error
		encoded, err = json.Marshal(body)
		if err != nil {
			return &ProtocolError{Err: fmt.Errorf("encode request: %w", err)}
		}
	}

	target := baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	retryServerErrors := method == http.MethodGet
	var respBody []byte

	operation := func() error {
		data, err := e.roundTrip(ctx, method, target, encoded, true)
		if err != nil {
			if retriable(err, retryServerErrors) {
				return err
			}
			return backoff.Permanent(err)
		}
		respBody = data
		return nil
	}

	if err := backoff.Retry(operation, e.newBackOff(ctx)); err != nil {
		return err
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &ProtocolError{Err: err}
		}
	}
	return nil
}

// Fetch performs an unauthenticated GET and returns the raw body plus the
// Content-Type header. The scrape pipeline uses this for arbitrary URLs, so
// no credential material is attached.
func (e *Engine) Fetch(ctx context.Context, target string) ([]byte, string, error) {
	var body []byte
	var contentType string

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return backoff.Permanent(&TransportError{Op: "fetch " + target, Err: err})
		}
		req.Header.Set("Accept", "text/html, text/plain, */*")

		resp, err := e.client.Do(req)
		if err != nil {
			return e.transportError(ctx, "fetch "+target, err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return e.transportError(ctx, "fetch "+target, err)
		}
		if outcome := statusError(resp.StatusCode, data); outcome != nil {
			if _, ok := outcome.(*ServerError); ok {
				return outcome
			}
			return backoff.Permanent(outcome)
		}
		body = data
		contentType = resp.Header.Get("Content-Type")
		return nil
	}

	if err := backoff.Retry(operation, e.newBackOff(ctx)); err != nil {
		return nil, "", err
	}
	return body, contentType, nil
}

func (e *Engine) newBackOff(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = retryInitialInterval
	bo.Multiplier = retryMultiplier
	bo.RandomizationFactor = retryRandomization
	// maxRetries caps the total number of attempts, the first one included.
	retries := e.maxRetries - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(retries)), ctx)
}

// roundTrip performs one attempt and maps the outcome onto an error kind.
func (e *Engine) roundTrip(ctx context.Context, method, target string, body []byte, auth bool) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Op: method + " " + target, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		e.authorize(req)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, e.transportError(ctx, method+" "+target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.transportError(ctx, method+" "+target, err)
	}

	if outcome := statusError(resp.StatusCode, data); outcome != nil {
		log.Debug().Str("method", method).Str("url", target).Int("status", resp.StatusCode).
			Msg("Request failed")
		return nil, outcome
	}
	return data, nil
}

func (e *Engine) transportError(ctx context.Context, op string, err error) *TransportError {
	cancelled := errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil
	return &TransportError{Op: op, Err: err, Cancelled: cancelled}
}

// statusError maps a non-2xx status to its error kind, pulling the
// operator-facing message out of the response body where possible.
func statusError(status int, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 500:
		return &ServerError{StatusCode: status, Message: extractMessage(status, body)}
	case status == http.StatusNotFound:
		return &ClientError{StatusCode: status, Message: extractMessage(status, body), NotFound: true}
	case status >= 400:
		return &ClientError{StatusCode: status, Message: extractMessage(status, body)}
	default:
		return &ProtocolError{Err: fmt.Errorf("unexpected status %d", status)}
	}
}

// extractMessage digs the human-readable message out of common Atlassian
// error envelopes, falling back to the truncated raw body.
func extractMessage(code int, body []byte) string {
	var envelope struct {
		Message       string   `json:"message"`
		ErrorMessages []string `json:"errorMessages"`
		Error         struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.Message != "":
			return envelope.Message
		case len(envelope.ErrorMessages) > 0:
			return strings.Join(envelope.ErrorMessages, "; ")
		case envelope.Error.Message != "":
			return envelope.Error.Message
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBodyBytes {
		msg = msg[:maxErrorBodyBytes]
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	return msg
}

// retriable reports whether the engine may try the request again.
func retriable(err error, retryServerErrors bool) bool {
	var terr *TransportError
	if errors.As(err, &terr) {
		return !terr.Cancelled
	}
	var serr *ServerError
	if errors.As(err, &serr) {
		return retryServerErrors
	}
	return false
}
