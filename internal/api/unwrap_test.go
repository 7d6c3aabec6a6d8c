package api

import (
	"encoding/json"
	"testing"
)

func TestUnwrapList_ShapeTolerance(t *testing.T) {
	// The same user list arrives in three shapes depending on the endpoint.
	cases := []struct {
		name string
		raw  string
	}{
		{"nested under data", `{"data":{"users":[{"id":"u1","name":"Ann"},{"id":"u2","name":"Bo"}]}}`},
		{"keyed at top level", `{"users":[{"id":"u1","name":"Ann"},{"id":"u2","name":"Bo"}]}`},
		{"bare array", `[{"id":"u1","name":"Ann"},{"id":"u2","name":"Bo"}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := UnwrapList[User](json.RawMessage(tc.raw), "users")
			if len(users) != 2 {
				t.Fatalf("got %d users, want 2", len(users))
			}
			if users[0].ID != "u1" || users[1].Name != "Bo" {
				t.Fatalf("users = %#v, want u1/Ann then u2/Bo", users)
			}
		})
	}
}

func TestUnwrapList_DataArrayFallback(t *testing.T) {
	raw := json.RawMessage(`{"data":[{"id":"p1"}]}`)
	pets := UnwrapList[Pet](raw, "pets")
	if len(pets) != 1 || pets[0].ID != "p1" {
		t.Fatalf("pets = %#v, want one pet p1", pets)
	}
}

func TestUnwrapList_UnexpectedShapeYieldsEmpty(t *testing.T) {
	for _, raw := range []string{`{"ok":true}`, `"just a string"`, `42`, `null`} {
		if got := UnwrapList[User](json.RawMessage(raw), "users"); len(got) != 0 {
			t.Fatalf("UnwrapList(%s) = %#v, want empty", raw, got)
		}
	}
}

func TestUnwrapValue_PrefersMostSpecificShape(t *testing.T) {
	// Both data.cart and a top-level total are present; the nested shape wins.
	raw := json.RawMessage(`{"total":99,"data":{"cart":{"items":[{"productId":"p1","price":10,"quantity":2}],"total":20}}}`)
	cart := UnwrapValue[Cart](raw, "cart")
	if cart.Total != 20 || len(cart.Items) != 1 {
		t.Fatalf("cart = %#v, want nested cart with total 20", cart)
	}
}

func TestUnwrapValue_BareObject(t *testing.T) {
	raw := json.RawMessage(`{"id":"o1","status":"pending"}`)
	order := UnwrapValue[Order](raw, "order")
	if order.ID != "o1" || order.Status != "pending" {
		t.Fatalf("order = %#v, want o1/pending", order)
	}
}

func TestUnwrapValue_StringMessage(t *testing.T) {
	cases := map[string]string{
		`{"message":"application received"}`:          "application received",
		`{"data":{"message":"application received"}}`: "application received",
		`{"ok":true}`:                                 "",
	}
	for raw, want := range cases {
		if got := UnwrapValue[string](json.RawMessage(raw), "message"); got != want {
			t.Fatalf("UnwrapValue(%s) = %q, want %q", raw, got, want)
		}
	}
}
