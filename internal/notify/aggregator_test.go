package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pawhaven/pawdeck/internal/api"
	"github.com/pawhaven/pawdeck/internal/creds"
	"github.com/pawhaven/pawdeck/internal/state"
)

func newStore(t *testing.T, handler http.Handler) *state.Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	credStore := creds.Open(filepath.Join(t.TempDir(), "credentials.toml"))
	session := creds.Session{Token: "tok", User: creds.User{ID: "u1", Role: "customer"}}
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
	return state.New(client, session)
}

func reply(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestCollect_CartFetchErrorSuppressed(t *testing.T) {
	store := newStore(t, reply(http.StatusInternalServerError, `{"message":"db down"}`))
	_ = store.FetchCart(context.Background())

	agg := New(store)
	alerts, _, reschedule := agg.Collect(store.Snapshot())
	if len(alerts) != 0 {
		t.Fatalf("alerts = %#v, want cart fetch failure suppressed", alerts)
	}
	if reschedule {
		t.Fatal("reschedule = true for empty batch")
	}
}

func TestCollect_CartAddSuccessAlerted(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", reply(http.StatusOK, `{"cart":{"items":[{"id":"l1","productId":"P","price":10,"quantity":1}]}}`))

	store := newStore(t, mux)
	if err := store.AddToCart(context.Background(), "P", 1); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	agg := New(store)
	alerts, batchID, reschedule := agg.Collect(store.Snapshot())
	if len(alerts) != 1 || alerts[0].Kind != KindSuccess || alerts[0].Slice != state.SliceCart {
		t.Fatalf("alerts = %#v, want one cart success", alerts)
	}
	if alerts[0].Message != "added to cart" {
		t.Fatalf("message = %q, want %q", alerts[0].Message, "added to cart")
	}
	if !reschedule || batchID == "" {
		t.Fatalf("reschedule/batchID = %v/%q, want timer armed", reschedule, batchID)
	}
}

func TestCollect_NonCartFetchErrorStillAlerted(t *testing.T) {
	store := newStore(t, reply(http.StatusInternalServerError, `{"message":"db down"}`))
	_ = store.FetchPets(context.Background())

	agg := New(store)
	alerts, _, _ := agg.Collect(store.Snapshot())
	if len(alerts) != 1 || alerts[0].Kind != KindError || alerts[0].Slice != state.SlicePets {
		t.Fatalf("alerts = %#v, want one pets error", alerts)
	}
}

func TestCollect_StableBatchDoesNotRearmTimer(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", reply(http.StatusOK, `{"cart":{"items":[]}}`))
	store := newStore(t, mux)
	_ = store.AddToCart(context.Background(), "P", 1)

	agg := New(store)
	first, firstBatch, _ := agg.Collect(store.Snapshot())
	second, secondBatch, reschedule := agg.Collect(store.Snapshot())
	if reschedule {
		t.Fatal("reschedule = true for unchanged batch")
	}
	if firstBatch != secondBatch {
		t.Fatalf("batch id changed for unchanged batch: %q -> %q", firstBatch, secondBatch)
	}
	if len(first) != 1 || len(second) != 1 || first[0].ID != second[0].ID {
		t.Fatalf("alert identity unstable across renders: %#v vs %#v", first, second)
	}
}

func TestExpire_ResetsContributingSlicesOnly(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", reply(http.StatusOK, `{"cart":{"items":[]}}`))
	mux.Handle("GET /api/orders/my-orders", reply(http.StatusInternalServerError, `{"message":"nope"}`))
	mux.Handle("GET /api/messages", reply(http.StatusInternalServerError, `{"message":"inbox down"}`))

	store := newStore(t, mux)
	_ = store.AddToCart(context.Background(), "P", 1)
	_ = store.FetchMyOrders(context.Background())
	_ = store.FetchMessages(context.Background())

	agg := New(store)
	alerts, batchID, _ := agg.Collect(store.Snapshot())
	if len(alerts) != 2 {
		t.Fatalf("alerts = %#v, want cart success + orders error", alerts)
	}

	agg.Expire(batchID)

	snap := store.Snapshot()
	if !snap.Cart.Status.Idle() || !snap.Orders.Status.Idle() {
		t.Fatalf("contributing slices not reset: cart=%#v orders=%#v", snap.Cart.Status, snap.Orders.Status)
	}
	// Messages never contributed (not watched); its status is untouched.
	if !snap.Messages.Status.Error {
		t.Fatalf("messages status = %#v, want untouched error", snap.Messages.Status)
	}
}

func TestExpire_StaleBatchIsNoOp(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", reply(http.StatusOK, `{"cart":{"items":[]}}`))
	mux.Handle("GET /api/pets", reply(http.StatusInternalServerError, `{"message":"pets down"}`))
	store := newStore(t, mux)

	agg := New(store)

	_ = store.AddToCart(context.Background(), "P", 1)
	_, staleID, _ := agg.Collect(store.Snapshot())

	// A new outcome lands before the first timer fires; the batch id moves on.
	store.Reset(state.SliceCart)
	_ = store.FetchPets(context.Background())
	_, freshID, _ := agg.Collect(store.Snapshot())
	if freshID == staleID {
		t.Fatalf("batch id not replaced: %q", freshID)
	}

	// The superseded timer firing must not reset the live batch's slices.
	agg.Expire(staleID)
	if snap := store.Snapshot(); !snap.Pets.Status.Error {
		t.Fatalf("pets status = %#v, want untouched by stale expiry", snap.Pets.Status)
	}

	agg.Expire(freshID)
	if snap := store.Snapshot(); !snap.Pets.Status.Idle() {
		t.Fatalf("pets status = %#v, want reset by live expiry", snap.Pets.Status)
	}
}

func TestDismiss_ResetsOnlyThatSlice(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", reply(http.StatusOK, `{"cart":{"items":[]}}`))
	mux.Handle("GET /api/orders/my-orders", reply(http.StatusInternalServerError, `{"message":"nope"}`))

	store := newStore(t, mux)
	_ = store.AddToCart(context.Background(), "P", 1)
	_ = store.FetchMyOrders(context.Background())

	agg := New(store)
	alerts, _, _ := agg.Collect(store.Snapshot())
	if len(alerts) != 2 {
		t.Fatalf("alerts = %#v, want 2", alerts)
	}

	var cartAlert Alert
	for _, alert := range alerts {
		if alert.Slice == state.SliceCart {
			cartAlert = alert
		}
	}
	agg.Dismiss(cartAlert.ID)

	snap := store.Snapshot()
	if !snap.Cart.Status.Idle() {
		t.Fatalf("cart status = %#v, want reset after dismiss", snap.Cart.Status)
	}
	if !snap.Orders.Status.Error {
		t.Fatalf("orders status = %#v, want untouched", snap.Orders.Status)
	}
}
