package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pawhaven/pawdeck/internal/creds"
)

func newTestStore(t *testing.T, token string) *creds.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials.toml")
	store := creds.Open(path)
	if token != "" {
		if err := store.Set(creds.Session{Token: token, User: creds.User{ID: "u1"}}); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return store
}

func newTestGateway(t *testing.T, srv *httptest.Server, store *creds.Store) *Gateway {
	t.Helper()
	gw, err := NewGateway(srv.URL, store)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	return gw
}

func TestSend_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	gw := newTestGateway(t, srv, newTestStore(t, "tok123"))
	if _, err := gw.Send(context.Background(), http.MethodGet, "/api/pets", nil); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID header missing")
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestSend_OmitsAuthorizationWhenLoggedOut(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := newTestGateway(t, srv, newTestStore(t, ""))
	if _, err := gw.Send(context.Background(), http.MethodGet, "/api/pets", nil); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want empty", gotAuth)
	}
}

func TestSend_UnauthorizedClearsCredentialsAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"session expired"}`))
	}))
	defer srv.Close()

	store := newTestStore(t, "stale-token")
	gw := newTestGateway(t, srv, store)

	hookFired := false
	gw.OnUnauthorized(func() { hookFired = true })

	// Any call can trip the global reset, not only auth operations.
	_, err := gw.Send(context.Background(), http.MethodGet, "/api/orders/my-orders", nil)
	if err == nil {
		t.Fatal("Send succeeded, want 401 error")
	}
	if !IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("err = %v, want 401 api error", err)
	}
	if !hookFired {
		t.Fatal("unauthorized hook did not fire")
	}
	if store.Token() != "" {
		t.Fatalf("token = %q after 401, want cleared", store.Token())
	}
	if ErrorMessage(err) != "session expired" {
		t.Fatalf("ErrorMessage = %q, want server message", ErrorMessage(err))
	}
}

func TestSend_ForbiddenPassesThroughWithoutClearing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"sellers only"}`))
	}))
	defer srv.Close()

	store := newTestStore(t, "tok")
	gw := newTestGateway(t, srv, store)

	_, err := gw.Send(context.Background(), http.MethodPost, "/api/products", map[string]string{"name": "Leash"})
	if !IsStatus(err, http.StatusForbidden) {
		t.Fatalf("err = %v, want 403 api error", err)
	}
	if store.Token() != "tok" {
		t.Fatalf("token = %q, want untouched after 403", store.Token())
	}
}

func TestSend_ServerMessagePreferredOverStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"quantity must be positive"}`))
	}))
	defer srv.Close()

	gw := newTestGateway(t, srv, newTestStore(t, "tok"))
	_, err := gw.Send(context.Background(), http.MethodPost, "/api/cart/add", map[string]any{"quantity": -1})
	if got := ErrorMessage(err); got != "quantity must be positive" {
		t.Fatalf("ErrorMessage = %q, want server error field", got)
	}
}

func TestSend_EmptyErrorBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gw := newTestGateway(t, srv, newTestStore(t, ""))
	_, err := gw.Send(context.Background(), http.MethodGet, "/api/pets", nil)
	if got := ErrorMessage(err); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("ErrorMessage = %q, want %q", got, http.StatusText(http.StatusInternalServerError))
	}
}

func TestSend_TransportFailureSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the request cannot connect

	gw := newTestGateway(t, srv, newTestStore(t, ""))
	_, err := gw.Send(context.Background(), http.MethodGet, "/api/pets", nil)
	if err == nil {
		t.Fatal("Send succeeded against closed server, want transport error")
	}
	if IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("transport failure misclassified as api error: %v", err)
	}
}

func TestLogin_PersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("path = %q, want /api/auth/login", r.URL.Path)
		}
		w.Write([]byte(`{"token":"fresh","user":{"id":"u9","name":"Kai","role":"seller"}}`))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	store := creds.Open(path)
	gw := newTestGateway(t, srv, store)
	client, err := NewClient(gw, store)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	session, err := client.Login(context.Background(), "kai@example.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if session.Token != "fresh" || session.User.Role != "seller" {
		t.Fatalf("session = %#v, want fresh/seller", session)
	}
	if store.Token() != "fresh" {
		t.Fatalf("persisted token = %q, want fresh", store.Token())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("credentials file not written: %v", err)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	store := newTestStore(t, "tok")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	gw := newTestGateway(t, srv, store)
	client, err := NewClient(gw, store)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if err := client.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if store.Token() != "" {
		t.Fatalf("token = %q after logout, want empty", store.Token())
	}
}
