package storeapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL, 0, testLogger())
	require.NoError(t, err)
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	_, err := NewHTTPClient("://bad-url", 0, testLogger())
	assert.Error(t, err)
	_, err = NewHTTPClient("/relative", 0, testLogger())
	assert.Error(t, err)
}

func TestVerifySendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, client.Verify(context.Background(), "tok"))
}

func TestVerifyWithoutTokenOmitsHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	err := client.Verify(context.Background(), "")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.True(t, statusErr.ClientError())
}

func TestVerifyRequiresExactlyOK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	var statusErr *StatusError
	require.ErrorAs(t, client.VerifyAdmin(context.Background(), "tok"), &statusErr)
	assert.Equal(t, http.StatusNoContent, statusErr.Code)
}

func TestLoginPostsCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])
		assert.Equal(t, "pw", body["password"])
		_, hasName := body["name"]
		assert.False(t, hasName)
		_, _ = w.Write([]byte(`{"token":"abc"}`))
	})
	token, err := client.Login(context.Background(), model.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestSignupSendsName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ann", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"token":"new"}`))
	})
	token, err := client.Signup(context.Background(), model.Credentials{Name: "Ann", Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestProductsDecodesPrices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product", r.URL.Path)
		_, _ = w.Write([]byte(`{"products":[{"_id":"p1","name":"Mug","description":"d","price":10.5,"image":"http://x/img.png"}]}`))
	})
	products, err := client.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("10.5")))
}

func TestProductsMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":`))
	})
	_, err := client.Products(context.Background())
	assert.ErrorIs(t, err, domainErrors.ErrMalformedResponse)
}

func TestProductsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewHTTPClient(srv.URL, 0, testLogger())
	require.NoError(t, err)
	srv.Close()

	_, err = client.Products(context.Background())
	assert.ErrorIs(t, err, domainErrors.ErrTransport)
}

func TestCreateProductRequiresCreated(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "created", status: http.StatusCreated},
		{name: "ok is rejected", status: http.StatusOK, wantErr: true},
		{name: "forbidden", status: http.StatusForbidden, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/product/", r.URL.Path)
				assert.Equal(t, "Bearer admin", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"product":{"_id":"p9","name":"Lamp","price":"35.50","image":"http://x/l.png"}}`))
			})
			draft := model.ProductDraft{Name: "Lamp", Price: decimal.RequireFromString("35.50"), Image: "http://x/l.png"}
			product, err := client.CreateProduct(context.Background(), "admin", draft)
			if tt.wantErr {
				var statusErr *StatusError
				assert.ErrorAs(t, err, &statusErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p9", product.ID)
		})
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/p1", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			_, _ = w.Write([]byte(`{"product":{"_id":"p1","name":"Renamed","price":1}}`))
		case http.MethodDelete:
			_, _ = w.Write([]byte(`{"product":{"_id":"p1"}}`))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
	product, err := client.UpdateProduct(context.Background(), "admin", "p1", model.ProductDraft{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", product.Name)
	require.NoError(t, client.DeleteProduct(context.Background(), "admin", "p1"))
}

func TestUpdateProductMissingBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	_, err := client.UpdateProduct(context.Background(), "admin", "p1", model.ProductDraft{})
	assert.ErrorIs(t, err, domainErrors.ErrMalformedResponse)
}

func TestCartAbsentReturnsNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cart/", r.URL.Path)
		_, _ = w.Write([]byte(`{"cart":null}`))
	})
	cart, err := client.Cart(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestCartKeepsDuplicates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cart":{"_id":"c1","user":"u1","products":[{"_id":"a","price":5},{"_id":"a","price":5}]}}`))
	})
	cart, err := client.Cart(context.Background(), "tok")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Len(t, cart.Products, 2)
}

func TestAddAndRemoveCartItem(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			_, _ = w.Write([]byte(`{"cart":{"_id":"c1","products":[]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"cart":{"_id":"c1"}}`))
	})
	require.NoError(t, client.AddToCart(context.Background(), "tok", "p1"))
	cart, err := client.RemoveFromCart(context.Background(), "tok", "p1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, []string{"POST /cart/p1", "DELETE /cart/p1"}, calls)
}

func TestRemoveFromCartFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := client.RemoveFromCart(context.Background(), "tok", "missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "remove from cart", statusErr.Op)
}

func TestOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order", r.URL.Path)
		_, _ = w.Write([]byte(`{"orders":[{"_id":"o1","user":"u1","products":[{"_id":"a","price":"10.00"}],"totalPrice":"10.00","status":"Shipped"}]}`))
	})
	orders, err := client.Orders(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusShipped, orders[0].Status)
	assert.True(t, orders[0].TotalMatches())
}

func TestOrdersEmptyListIsNotNil(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	orders, err := client.Orders(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrdersBadPrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"orders":[{"_id":"o1","totalPrice":"abc"}]}`))
	})
	_, err := client.Orders(context.Background(), "tok")
	assert.True(t, errors.Is(err, domainErrors.ErrMalformedResponse))
}

func TestCreateOrderSendsCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/add", r.URL.Path)
		var body cartPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body.ID)
		require.Len(t, body.Products, 1)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"order":{"_id":"o1","products":[{"_id":"a","price":2}],"totalPrice":2,"status":"Processing"}}`))
	})
	cart := model.Cart{ID: "c1", Products: []model.Product{{ID: "a", Price: decimal.NewFromInt(2)}}}
	order, err := client.CreateOrder(context.Background(), "tok", cart)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
}

func TestCreateOrderMissingOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"order":null}`))
	})
	_, err := client.CreateOrder(context.Background(), "tok", model.Cart{})
	assert.ErrorIs(t, err, domainErrors.ErrMalformedResponse)
}

func TestBaseURLPathIsPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/product", r.URL.Path)
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL+"/api/v1", 0, testLogger())
	require.NoError(t, err)
	_, err = client.Products(context.Background())
	require.NoError(t, err)
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Op: "get cart", Code: http.StatusBadGateway}
	assert.Equal(t, "store api get cart: 502 Bad Gateway", err.Error())
	assert.False(t, err.ClientError())
}
