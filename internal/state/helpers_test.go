package state

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pawhaven/pawdeck/internal/api"
	"github.com/pawhaven/pawdeck/internal/creds"
)

// newTestStore wires a Store against an httptest backend with a logged-in
// session, mirroring the app bootstrap.
func newTestStore(t *testing.T, handler http.Handler) *Store {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	credStore := creds.Open(filepath.Join(t.TempDir(), "credentials.toml"))
	session := creds.Session{Token: "test-token", User: creds.User{ID: "u1", Name: "Dana", Role: "customer"}}
	if err := credStore.Set(session); err != nil {
		t.Fatalf("Set: %v", err)
	}

	gw, err := api.NewGateway(srv.URL, credStore)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}
	client, err := api.NewClient(gw, credStore)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return New(client, session)
}

// jsonHandler replies with a fixed body for every request.
func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}
