package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestOrderStatusValues(t *testing.T) {
	cases := []struct {
		name  string
		got   OrderStatus
		value string
	}{
		{"processing", OrderStatusProcessing, "Processing"},
		{"shipped", OrderStatusShipped, "Shipped"},
		{"delivered", OrderStatusDelivered, "Delivered"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestOrderTotalMatches(t *testing.T) {
	order := Order{
		Products: []Product{
			{Price: decimal.RequireFromString("10.00")},
			{Price: decimal.RequireFromString("25.50")},
		},
		TotalPrice: decimal.RequireFromString("35.5"),
	}
	if !order.TotalMatches() {
		t.Fatal("expected total to match product sum")
	}

	order.TotalPrice = decimal.RequireFromString("35.49")
	if order.TotalMatches() {
		t.Fatal("expected mismatch to be reported")
	}

	if !(Order{}).TotalMatches() {
		t.Fatal("expected empty order with zero total to match")
	}
}

func TestSumPrices(t *testing.T) {
	if !SumPrices(nil).Equal(decimal.Zero) {
		t.Fatal("expected zero for no products")
	}
	products := []Product{
		{Price: decimal.RequireFromString("0.1")},
		{Price: decimal.RequireFromString("0.2")},
	}
	if got := SumPrices(products); !got.Equal(decimal.RequireFromString("0.3")) {
		t.Fatalf("expected exact 0.3, got %s", got)
	}

	order := Order{Products: products, TotalPrice: SumPrices(products)}
	if !order.TotalMatches() {
		t.Fatal("expected order total built from SumPrices to match")
	}
}

func TestCartIsEmpty(t *testing.T) {
	var nilCart *Cart
	if !nilCart.IsEmpty() {
		t.Fatal("nil cart must be empty")
	}
	if !(&Cart{}).IsEmpty() {
		t.Fatal("cart without products must be empty")
	}
	if (&Cart{Products: []Product{{ID: "1"}}}).IsEmpty() {
		t.Fatal("cart with products must not be empty")
	}
}

func TestGateExclusiveStates(t *testing.T) {
	for _, state := range []AuthState{AuthUnknown, AuthAuthorized, AuthUnauthorized} {
		g := Gate{State: state}
		count := 0
		for _, v := range []bool{g.Loading(), g.Allowed(), g.Denied()} {
			if v {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("state %s: expected exactly one render branch, got %d", state, count)
		}
	}
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	if (&Session{}).Expired(now) {
		t.Fatal("zero expiry must never expire")
	}
	if !(&Session{ExpiresAt: now.Add(-time.Second)}).Expired(now) {
		t.Fatal("expected past expiry to be expired")
	}
	if (&Session{ExpiresAt: now.Add(time.Minute)}).Expired(now) {
		t.Fatal("expected future expiry to be live")
	}
}

func TestLoadConstructors(t *testing.T) {
	if l := Loaded([]int{1}); !l.IsLoaded() || len(l.Data) != 1 {
		t.Fatalf("unexpected loaded result %+v", l)
	}
	if l := Empty[[]int](); !l.IsEmpty() || l.Data != nil {
		t.Fatalf("unexpected empty result %+v", l)
	}
	if l := Failed[int]("boom"); !l.IsFailed() || l.Reason != "boom" {
		t.Fatalf("unexpected failed result %+v", l)
	}
	var zero Load[int]
	if !zero.IsLoading() {
		t.Fatal("zero value must be loading")
	}
}

func TestCartPageZeroValueIsLoading(t *testing.T) {
	var page CartPage
	if !page.Gate.Loading() || !page.Cart.IsLoading() || !page.Orders.IsLoading() {
		t.Fatalf("expected zero page to be loading, got %+v", page)
	}
}
