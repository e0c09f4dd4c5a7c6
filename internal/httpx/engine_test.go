package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saharshpoddar/learning-gateway/internal/config"
)

func testEngine(retries int) *Engine {
	cfg := &config.Config{
		Credentials: config.Credentials{
			Email:    "ops@example.com",
			Secret:   "token",
			AuthType: config.AuthAPIToken,
		},
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    5 * time.Second,
		Preferences:    config.Preferences{MaxRetries: retries},
	}
	return NewEngine(cfg)
}

func TestDo_RetriesServerErrorsOnGet(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"key":"ABC-1"}`))
	}))
	defer srv.Close()

	var out struct {
		Key string `json:"key"`
	}
	err := testEngine(3).Do(context.Background(), http.MethodGet, srv.URL, "/issue", nil, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", out.Key)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDo_DoesNotRetryServerErrorsOnPost(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := testEngine(3).Do(context.Background(), http.MethodPost, srv.URL, "/issue", nil, map[string]string{"a": "b"}, nil)
	var serr *ServerError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusBadGateway, serr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestDo_ClientErrorCarriesBodyMessage(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessages":["Field 'summary' is required"]}`))
	}))
	defer srv.Close()

	err := testEngine(3).Do(context.Background(), http.MethodGet, srv.URL, "/issue", nil, nil, nil)
	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Message, "Field 'summary' is required")
	assert.False(t, cerr.NotFound)
	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
}

func TestDo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Issue does not exist"}`))
	}))
	defer srv.Close()

	err := testEngine(0).Do(context.Background(), http.MethodGet, srv.URL, "/issue/NOPE-1", nil, nil, nil)
	var cerr *ClientError
	require.ErrorAs(t, err, &cerr)
	assert.True(t, cerr.NotFound)
}

func TestDo_ParseFailureIsProtocolError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	var out map[string]any
	err := testEngine(0).Do(context.Background(), http.MethodGet, srv.URL, "/x", nil, nil, &out)
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
}

func TestDo_AuthHeaders(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, testEngine(0).Do(context.Background(), http.MethodGet, srv.URL, "/x", nil, nil, nil))
	// base64("ops@example.com:token")
	assert.Equal(t, "Basic b3BzQGV4YW1wbGUuY29tOnRva2Vu", got)

	pat := NewEngine(&config.Config{
		Credentials:    config.Credentials{Secret: "pat-secret", AuthType: config.AuthPersonalAccessToken},
		ConnectTimeout: time.Second,
		ReadTimeout:    time.Second,
	})
	require.NoError(t, pat.Do(context.Background(), http.MethodGet, srv.URL, "/x", nil, nil, nil))
	assert.Equal(t, "Bearer pat-secret", got)
}

func TestDo_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := testEngine(3).Do(ctx, http.MethodGet, srv.URL, "/slow", nil, nil, nil)
	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.Cancelled)
}

func TestFetch_NoAuthHeader(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer srv.Close()

	body, contentType, err := testEngine(0).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, contentType, "text/html")
	assert.Contains(t, string(body), "hi")
}
