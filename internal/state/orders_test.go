package state

import (
	"context"
	"net/http"
	"testing"

	"github.com/pawhaven/pawdeck/internal/api"
)

func TestUpdateOrderStatus_AppliesInPlaceWithoutRefetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/orders/my-orders", jsonHandler(http.StatusOK,
		`{"orders":[{"id":"X","status":"pending","total":30},{"id":"Y","status":"delivered","total":10}]}`))
	mux.Handle("PATCH /api/orders/X/status", jsonHandler(http.StatusOK,
		`{"order":{"id":"X","status":"shipped","total":30}}`))

	store := newTestStore(t, mux)
	if err := store.FetchMyOrders(context.Background()); err != nil {
		t.Fatalf("FetchMyOrders: %v", err)
	}
	if err := store.UpdateOrderStatus(context.Background(), "X", "shipped"); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}

	snap := store.Snapshot()
	var seen int
	for _, order := range snap.Orders.Orders {
		if order.ID == "X" {
			seen++
			if order.Status != "shipped" {
				t.Fatalf("order X status = %q, want shipped", order.Status)
			}
		}
	}
	if seen != 1 {
		t.Fatalf("order X appears %d times, want exactly once", seen)
	}
	if len(snap.Orders.Orders) != 2 {
		t.Fatalf("order list length = %d, want 2 (no loss)", len(snap.Orders.Orders))
	}
}

func TestCancelOrder_UpdatesCurrentToo(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/orders/X", jsonHandler(http.StatusOK,
		`{"order":{"id":"X","status":"pending"}}`))
	mux.Handle("PATCH /api/orders/X/cancel", jsonHandler(http.StatusOK,
		`{"order":{"id":"X","status":"cancelled"}}`))

	store := newTestStore(t, mux)
	if err := store.FetchOrder(context.Background(), "X"); err != nil {
		t.Fatalf("FetchOrder: %v", err)
	}
	if err := store.CancelOrder(context.Background(), "X"); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	snap := store.Snapshot()
	if snap.Orders.Current == nil || snap.Orders.Current.Status != "cancelled" {
		t.Fatalf("Current = %#v, want cancelled", snap.Orders.Current)
	}
	if snap.Orders.Status.Message != "order cancelled" {
		t.Fatalf("message = %q, want %q", snap.Orders.Status.Message, "order cancelled")
	}
}

func TestCreateOrder_PrependsHistoryAndEmptiesCart(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /api/cart", jsonHandler(http.StatusOK, cartOneLine))
	mux.Handle("GET /api/orders/my-orders", jsonHandler(http.StatusOK,
		`{"orders":[{"id":"OLD","status":"delivered"}]}`))
	mux.Handle("POST /api/orders", jsonHandler(http.StatusCreated,
		`{"order":{"id":"NEW","status":"pending","total":200}}`))

	store := newTestStore(t, mux)
	if err := store.FetchCart(context.Background()); err != nil {
		t.Fatalf("FetchCart: %v", err)
	}
	if err := store.FetchMyOrders(context.Background()); err != nil {
		t.Fatalf("FetchMyOrders: %v", err)
	}
	input := api.OrderInput{ShippingAddress: "12 Elm St", PaymentMethod: "card"}
	if err := store.CreateOrder(context.Background(), input); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Orders.Orders) != 2 || snap.Orders.Orders[0].ID != "NEW" {
		t.Fatalf("orders = %#v, want NEW prepended before OLD", snap.Orders.Orders)
	}
	if len(snap.Cart.Items) != 0 || snap.Cart.Total != 0 {
		t.Fatalf("cart = %+v, want emptied after checkout", snap.Cart)
	}
	if snap.Orders.Status.Message != "order placed" {
		t.Fatalf("message = %q, want %q", snap.Orders.Status.Message, "order placed")
	}
}
