package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/storefront/internal/domain/model"
)

type testView struct {
	Title    string
	Notice   string
	Alert    string
	LoggedIn bool
	Tab      string
	Mode     string
	Form     map[string]string
	Page     any
}

func render(t *testing.T, name string, data testView) string {
	t.Helper()
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("execute %s: %v", name, err)
	}
	return buf.String()
}

func TestLoadDefinesPages(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, name := range []string{"home.html", "auth.html", "cart.html", "admin.html", "head", "foot"} {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %q not defined", name)
		}
	}
}

func TestHomeRendersProducts(t *testing.T) {
	page := model.HomePage{
		Auth:     model.Gate{State: model.AuthAuthorized},
		Products: model.Loaded([]model.Product{{ID: "p1", Name: "Mug", Price: decimal.RequireFromString("35.5")}}),
	}
	out := render(t, "home.html", testView{Title: "Home", LoggedIn: true, Page: page})
	if !strings.Contains(out, "$35.50") || !strings.Contains(out, "/cart/items/p1") {
		t.Fatalf("expected product card, got %s", out)
	}
	if !strings.Contains(out, "Logout") {
		t.Fatal("expected logout button for logged in visitor")
	}
}

func TestCartGateRendersExactlyOneBranch(t *testing.T) {
	cart := model.Loaded(model.Cart{Products: []model.Product{{ID: "secret", Name: "Secret", Price: decimal.NewFromInt(1)}}})
	tests := []struct {
		name    string
		state   model.AuthState
		want    string
		notWant []string
	}{
		{name: "loading", state: model.AuthUnknown, want: "Loading...", notWant: []string{"not authorized", "Secret"}},
		{name: "denied", state: model.AuthUnauthorized, want: "not authorized", notWant: []string{"Loading...", "Secret"}},
		{name: "allowed", state: model.AuthAuthorized, want: "Secret", notWant: []string{"Loading...", "not authorized"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := model.CartPage{Gate: model.Gate{State: tt.state}, Cart: cart, Orders: model.Empty[[]model.Order]()}
			out := render(t, "cart.html", testView{Title: "Cart", Page: page})
			if !strings.Contains(out, tt.want) {
				t.Fatalf("expected %q in output", tt.want)
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Fatalf("did not expect %q in output", s)
				}
			}
		})
	}
}

func TestCartOrdersTabRendersBadges(t *testing.T) {
	orders := model.Loaded([]model.Order{
		{ID: "o1", Status: model.OrderStatusShipped, TotalPrice: decimal.NewFromInt(10)},
		{ID: "o2", Status: model.OrderStatus("Lost")},
	})
	page := model.CartPage{Gate: model.Gate{State: model.AuthAuthorized}, Orders: orders}
	out := render(t, "cart.html", testView{Title: "Orders", Tab: "orders", Page: page})
	for _, want := range []string{"badge-green", `data-icon="truck"`, "badge-gray", "$10.00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestAuthModes(t *testing.T) {
	if out := render(t, "auth.html", testView{Title: "Login"}); !strings.Contains(out, `action="/auth/login"`) {
		t.Fatal("expected login form")
	}
	if out := render(t, "auth.html", testView{Title: "Sign Up", Mode: "signup"}); !strings.Contains(out, `action="/auth/signup"`) {
		t.Fatal("expected signup form")
	}
}

func TestAdminEscapesContent(t *testing.T) {
	page := model.AdminPage{
		Gate:     model.Gate{State: model.AuthAuthorized},
		Products: model.Loaded([]model.Product{{ID: "p1", Name: "<script>x</script>", Price: decimal.NewFromInt(3)}}),
	}
	out := render(t, "admin.html", testView{Title: "Admin", Alert: "<b>bad</b>", Page: page})
	if strings.Contains(out, "<script>x</script>") || strings.Contains(out, "<b>bad</b>") {
		t.Fatal("expected html escaping")
	}
	if !strings.Contains(out, `value="3.00"`) {
		t.Fatalf("expected fixed price in edit form: %s", out)
	}
}
