package state

import (
	"context"
	"net/http"
	"testing"
)

const cartOneLine = `{"cart":{"items":[{"id":"l1","productId":"P","name":"Chew Toy","price":100,"quantity":2}],"total":200,"itemCount":2}}`

func checkCartInvariant(t *testing.T, c CartSlice) {
	t.Helper()
	var total float64
	var count int
	for _, line := range c.Items {
		total += line.Price * float64(line.Quantity)
		count += line.Quantity
	}
	if c.Total != total {
		t.Fatalf("Total = %v, want %v (derived from lines)", c.Total, total)
	}
	if c.ItemCount != count {
		t.Fatalf("ItemCount = %v, want %v (derived from lines)", c.ItemCount, count)
	}
}

func TestFetchCart_RecomputesTotalsFromLines(t *testing.T) {
	// Server sends deliberately wrong totals; the client must not trust them.
	store := newTestStore(t, jsonHandler(http.StatusOK,
		`{"cart":{"items":[{"id":"l1","productId":"P","price":100,"quantity":2}],"total":999,"itemCount":42}}`))

	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if snap.Cart.Total != 200 || snap.Cart.ItemCount != 2 {
		t.Fatalf("cart = %+v, want total 200 itemCount 2", snap.Cart)
	}
}

func TestOptimisticSetQuantity_AppliesBeforeAnyResponse(t *testing.T) {
	store := newTestStore(t, jsonHandler(http.StatusOK, cartOneLine))
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}

	// No network involved: the mutation is synchronous.
	store.OptimisticSetQuantity("P", 3)

	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if snap.Cart.Total != 300 {
		t.Fatalf("Total = %v immediately after optimistic change, want 300", snap.Cart.Total)
	}
	if snap.Cart.Items[0].Quantity != 3 {
		t.Fatalf("Quantity = %d, want 3", snap.Cart.Items[0].Quantity)
	}
}

func TestConfirmSetQuantity_ServerResponseBecomesSourceOfTruth(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/cart", jsonHandler(http.StatusOK, cartOneLine))
	mux.Handle("PUT /api/cart/update/l1", jsonHandler(http.StatusOK,
		`{"cart":{"items":[{"id":"l1","productId":"P","name":"Chew Toy","price":100,"quantity":3}]}}`))

	store := newTestStore(t, mux)
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}

	store.OptimisticSetQuantity("P", 3)
	if err := store.ConfirmSetQuantity(context.Background(), "P", 3); err != nil {
		t.Fatalf("ConfirmSetQuantity: %v", err)
	}

	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if snap.Cart.Total != 300 {
		t.Fatalf("Total = %v after confirmation, want 300", snap.Cart.Total)
	}
}

func TestConfirmSetQuantity_FailureKeepsOptimisticState(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/cart", jsonHandler(http.StatusOK, cartOneLine))
	mux.Handle("PUT /api/cart/update/l1", jsonHandler(http.StatusInternalServerError, `{"message":"stock check failed"}`))

	store := newTestStore(t, mux)
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}

	store.OptimisticSetQuantity("P", 5)
	err := store.ConfirmSetQuantity(context.Background(), "P", 5)
	if err == nil {
		t.Fatal("ConfirmSetQuantity succeeded, want error")
	}

	// No rollback: the optimistic lines stay until the next fetch.
	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if snap.Cart.Items[0].Quantity != 5 || snap.Cart.Total != 500 {
		t.Fatalf("cart = %+v, want optimistic quantity 5 preserved", snap.Cart)
	}
	if !snap.Cart.Status.Error || snap.Cart.Status.Message != "stock check failed" {
		t.Fatalf("status = %#v, want surfaced error", snap.Cart.Status)
	}
}

func TestOptimisticRemove_DropsLineAndRecomputes(t *testing.T) {
	store := newTestStore(t, jsonHandler(http.StatusOK,
		`{"cart":{"items":[{"id":"l1","productId":"P","price":100,"quantity":2},{"id":"l2","productId":"Q","price":50,"quantity":1}]}}`))
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}

	itemID, ok := store.CartItemID("P")
	if !ok || itemID != "l1" {
		t.Fatalf("CartItemID = %q/%v, want l1/true", itemID, ok)
	}

	store.OptimisticRemove("P")
	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if len(snap.Cart.Items) != 1 || snap.Cart.Items[0].ProductID != "Q" {
		t.Fatalf("items = %#v, want only Q", snap.Cart.Items)
	}
	if snap.Cart.Total != 50 || snap.Cart.ItemCount != 1 {
		t.Fatalf("totals = %v/%d, want 50/1", snap.Cart.Total, snap.Cart.ItemCount)
	}
}

func TestAddToCart_SuccessMessageMarksAddition(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("POST /api/cart/add", jsonHandler(http.StatusOK, cartOneLine))

	store := newTestStore(t, mux)
	if err := store.AddToCart(context.Background(), "P", 2); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if snap.Cart.Status.Message != "added to cart" {
		t.Fatalf("message = %q, want %q", snap.Cart.Status.Message, "added to cart")
	}
}

func TestClearCart_EmptiesLines(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/cart", jsonHandler(http.StatusOK, cartOneLine))
	mux.Handle("DELETE /api/cart/clear", jsonHandler(http.StatusOK, `{"message":"cart cleared"}`))

	store := newTestStore(t, mux)
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	if err := store.ClearCart(context.Background()); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}

	snap := store.Snapshot()
	checkCartInvariant(t, snap.Cart)
	if len(snap.Cart.Items) != 0 || snap.Cart.Total != 0 || snap.Cart.ItemCount != 0 {
		t.Fatalf("cart = %+v, want empty", snap.Cart)
	}
}
