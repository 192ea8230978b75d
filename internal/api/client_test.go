package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omdehgostar/portal/internal/model"
	"github.com/omdehgostar/portal/internal/session"
)

type backend struct {
	mux          *http.ServeMux
	server       *httptest.Server
	refreshCalls atomic.Int32
	refreshDelay time.Duration
	refreshCode  int
	newToken     string
}

// newBackend stands in for the real API: /auth/refresh plus whatever routes
// a test registers.
func newBackend(t *testing.T) *backend {
	b := &backend{
		mux:         http.NewServeMux(),
		refreshCode: http.StatusOK,
		newToken:    "fresh-token",
	}
	b.mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if b.refreshCode != http.StatusOK {
			w.WriteHeader(b.refreshCode)
			return
		}
		if body.RefreshToken != "good-refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"accessToken": b.newToken})
	})
	b.server = httptest.NewServer(b.mux)
	t.Cleanup(b.server.Close)
	return b
}

type harness struct {
	client  *Client
	store   *session.MemStore
	expired atomic.Int32
}

func newHarness(t *testing.T, b *backend, cfg Config) *harness {
	h := &harness{store: session.NewMemStore()}
	cfg.BaseURL = b.server.URL
	cfg.Version = "1.9.2"
	cfg.Branch = "center"
	h.client = New(cfg, h.store, zap.NewNop(),
		WithSessionExpired(func() { h.expired.Add(1) }))
	return h
}

func TestRequestHeaders(t *testing.T) {
	b := newBackend(t)

	var gotAuth, gotVersion, gotBranch string
	b.mux.HandleFunc("GET /customers/7", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("version")
		gotBranch = r.Header.Get("branch")
		json.NewEncoder(w).Encode(model.Customer{ID: 7})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	_, err := h.client.Customers.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "Bearer valid-token", gotAuth)
	require.Equal(t, "1.9.2", gotVersion)
	require.Equal(t, "center", gotBranch)
}

func TestRefreshAndReplay(t *testing.T) {
	b := newBackend(t)

	var calls []string
	b.mux.HandleFunc("GET /customers/1", func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		calls = append(calls, token)
		if token != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(model.Customer{ID: 1, Title: "رستوران شب"})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "good-refresh"))

	customer, err := h.client.Customers.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "رستوران شب", customer.Title)

	// original call, then exactly one replay with the refreshed token
	require.Equal(t, []string{"Bearer stale-token", "Bearer fresh-token"}, calls)
	require.Equal(t, int32(1), b.refreshCalls.Load())
	require.Equal(t, "fresh-token", h.store.AccessToken())
	require.Equal(t, int32(0), h.expired.Load())
}

func TestSecond401DoesNotRefreshAgain(t *testing.T) {
	b := newBackend(t)

	b.mux.HandleFunc("GET /orders/3", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "good-refresh"))

	_, err := h.client.Orders.Get(context.Background(), 3)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, int32(1), b.refreshCalls.Load())
	// the replayed 401 is not an auth failure of the refresh itself
	require.Equal(t, int32(0), h.expired.Load())
	require.Equal(t, "fresh-token", h.store.AccessToken())
}

func TestRefreshRejectedClearsSession(t *testing.T) {
	b := newBackend(t)

	b.mux.HandleFunc("GET /wallets/5", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "revoked-refresh"))

	_, err := h.client.Wallets.Get(context.Background(), 5)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.Empty(t, h.store.AccessToken())
	require.Empty(t, h.store.RefreshToken())
	require.Equal(t, int32(1), h.expired.Load())
}

func TestRefreshServerErrorKeepsSession(t *testing.T) {
	b := newBackend(t)
	b.refreshCode = http.StatusBadGateway

	b.mux.HandleFunc("GET /wallets/5", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "good-refresh"))

	_, err := h.client.Wallets.Get(context.Background(), 5)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.NotErrorIs(t, err, ErrSessionExpired)
	// transient refresh failure must not log the user out
	require.Equal(t, "stale-token", h.store.AccessToken())
	require.Equal(t, "good-refresh", h.store.RefreshToken())
	require.Equal(t, int32(0), h.expired.Load())
}

func TestNoRefreshTokenExpiresWithoutNetworkCall(t *testing.T) {
	b := newBackend(t)

	b.mux.HandleFunc("GET /tickets/9", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetAccessToken("stale-token"))

	_, err := h.client.Tickets.Get(context.Background(), 9)
	require.ErrorIs(t, err, ErrSessionExpired)
	require.Equal(t, int32(0), b.refreshCalls.Load())
	require.Equal(t, int32(1), h.expired.Load())
}

func TestForbiddenIsNotLogout(t *testing.T) {
	b := newBackend(t)

	b.mux.HandleFunc("DELETE /payments/12", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "دسترسی غیرمجاز"})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	err := h.client.Payments.Delete(context.Background(), 12)
	require.True(t, IsPermissionDenied(err))
	require.Equal(t, "دسترسی غیرمجاز", ServerMessage(err))
	require.Equal(t, int32(0), b.refreshCalls.Load())
	require.Equal(t, int32(0), h.expired.Load())
	require.Equal(t, "valid-token", h.store.AccessToken())
}

func TestConcurrentRefreshIsCoalesced(t *testing.T) {
	b := newBackend(t)
	b.refreshDelay = 150 * time.Millisecond

	b.mux.HandleFunc("GET /customers/1", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(model.Customer{ID: 1})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("stale-token", "good-refresh"))

	const parallel = 6
	errs := make([]error, parallel)
	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = h.client.Customers.Get(context.Background(), 1)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), b.refreshCalls.Load())
}

func TestIPLookupFailureDoesNotBlockRequest(t *testing.T) {
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer echo.Close()

	b := newBackend(t)
	var gotForwarded string
	var sent bool
	b.mux.HandleFunc("GET /customers/2", func(w http.ResponseWriter, r *http.Request) {
		sent = true
		gotForwarded = r.Header.Get("x-forwarded-for")
		json.NewEncoder(w).Encode(model.Customer{ID: 2})
	})

	h := newHarness(t, b, Config{IPEchoURL: echo.URL})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	_, err := h.client.Customers.Get(context.Background(), 2)
	require.NoError(t, err)
	require.True(t, sent)
	require.Empty(t, gotForwarded)
}

func TestIPLookupCachedOncePerSession(t *testing.T) {
	var echoCalls atomic.Int32
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		echoCalls.Add(1)
		fmt.Fprint(w, `{"ip":"198.51.100.4"}`)
	}))
	defer echo.Close()

	b := newBackend(t)
	var ips []string
	b.mux.HandleFunc("GET /customers/2", func(w http.ResponseWriter, r *http.Request) {
		ips = append(ips, r.Header.Get("x-real-ip"))
		json.NewEncoder(w).Encode(model.Customer{ID: 2})
	})

	h := newHarness(t, b, Config{IPEchoURL: echo.URL})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	for i := 0; i < 3; i++ {
		_, err := h.client.Customers.Get(context.Background(), 2)
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), echoCalls.Load())
	require.Equal(t, []string{"198.51.100.4", "198.51.100.4", "198.51.100.4"}, ips)
	require.Equal(t, "198.51.100.4", h.store.ClientIP())
}

func TestListEnvelopeRejectsBareArray(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("GET /payments", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode([]model.Payment{{ID: 1}})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	_, err := h.client.Payments.List(context.Background(), 0, 1)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestServerMessagePassedThrough(t *testing.T) {
	b := newBackend(t)
	b.mux.HandleFunc("POST /payments", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "مبلغ از سقف اعتبار بیشتر است"})
	})

	h := newHarness(t, b, Config{})
	require.NoError(t, h.store.SetTokens("valid-token", "good-refresh"))

	_, err := h.client.Payments.Create(context.Background(), PaymentInput{Amount: 1000})
	require.Equal(t, "مبلغ از سقف اعتبار بیشتر است", ServerMessage(err))
}
