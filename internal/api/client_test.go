package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/altinukshini/shop-tui/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

// storefrontMux serves a home page that sets the csrftoken cookie.
func storefrontMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok123", Path: "/"})
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html><body></body></html>")
	})
	return mux
}

func newTestClient(t *testing.T, mux *http.ServeMux) *Client {
	t.Helper()
	srv := httptest.NewServer(mux)

	cfg := config.Default()
	cfg.BaseURL = srv.URL
	cfg.Timeout = 5 * time.Second
	c, err := NewClient(cfg, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		c.http.CloseIdleConnections()
		srv.Close()
	})
	return c
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func TestSearchEncodesQuery(t *testing.T) {
	gotQuery := make(chan string, 1)
	mux := storefrontMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		gotQuery <- r.URL.Query().Get("q")
		writeJSON(w, `{"count":2,"products":[{"url":"/products/silk-saree/","category":"Sarees","name":"Silk Saree","price":"1299.00"},{"url":"/products/kurta/","category":"Kurtas"}]}`)
	})
	c := newTestClient(t, mux)

	resp, err := c.Search(context.Background(), "silk & gold")
	require.NoError(t, err)
	assert.Equal(t, "silk & gold", <-gotQuery)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "/products/silk-saree/", resp.Products[0].URL)
	assert.Equal(t, "1299", resp.Products[0].Price.String())
	assert.Equal(t, "Kurtas", resp.Products[1].DisplayName())
}

func TestSearchMalformedJSONIsTransportError(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>oops</html>")
	})
	c := newTestClient(t, mux)

	_, err := c.Search(context.Background(), "sari")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsApp(err))
}

func TestNon2xxIsTransportError(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/count/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	c := newTestClient(t, mux)

	_, err := c.CartCount(context.Background())
	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusInternalServerError, te.StatusCode)
	assert.Contains(t, err.Error(), "500")
}

func TestUpdateCartItemSendsFormAndCSRF(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/update/42/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "tok123", r.Header.Get("X-CSRFToken"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "3", r.PostForm.Get("quantity"))
		writeJSON(w, `{"success":true,"message":"Cart updated","cart_data":{"subtotal":"2997.00","shipping":0,"total":"2997.00","count":3}}`)
	})
	c := newTestClient(t, mux)

	resp, err := c.UpdateCartItem(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.Equal(t, "Cart updated", resp.Message)
	require.NotNil(t, resp.CartData)
	assert.True(t, resp.CartData.Shipping.IsZero())
	assert.Equal(t, "2997", resp.CartData.Total.String())
	assert.Equal(t, 3, resp.CartData.Count)
}

func TestRemoveCartItemAppError(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/remove/7/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok123", r.Header.Get("X-CSRFToken"))
		writeJSON(w, `{"success":false,"message":"Item not in cart"}`)
	})
	c := newTestClient(t, mux)

	_, err := c.RemoveCartItem(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsApp(err))
	assert.Equal(t, "Item not in cart", UserMessage(err, "Failed to remove item"))
}

func TestRemoveCartItemWithoutCartData(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/remove/7/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":true,"message":"Removed"}`)
	})
	c := newTestClient(t, mux)

	resp, err := c.RemoveCartItem(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, resp.CartData)
	assert.Equal(t, 0, resp.CartData.Count)
}

func TestWishlistUsesJSONContentType(t *testing.T) {
	mux := storefrontMux()
	for _, path := range []string{"/wishlist/add/5/", "/wishlist/remove/5/"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "tok123", r.Header.Get("X-CSRFToken"))
			writeJSON(w, `{"success":true,"message":"ok"}`)
		})
	}
	c := newTestClient(t, mux)

	_, err := c.AddToWishlist(context.Background(), 5)
	require.NoError(t, err)
	_, err = c.RemoveFromWishlist(context.Background(), 5)
	require.NoError(t, err)
}

func TestCSRFTokenFetchedOnce(t *testing.T) {
	var homeHits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		homeHits.Add(1)
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "abc", Path: "/"})
		io.WriteString(w, "<html></html>")
	})
	c := newTestClient(t, mux)

	for i := 0; i < 3; i++ {
		token, err := c.CSRFToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc", token)
	}
	assert.Equal(t, int32(1), homeHits.Load())
}

func TestCSRFTokenFormFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><form><input type="hidden" name="csrfmiddlewaretoken" value="formtok"></form></html>`)
	})
	c := newTestClient(t, mux)

	token, err := c.CSRFToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "formtok", token)
}

func TestCSRFTokenMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html></html>")
	})
	c := newTestClient(t, mux)

	_, err := c.AddToWishlist(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestBadges(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/count/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"count":3}`)
	})
	mux.HandleFunc("/wishlist/count/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"count":0}`)
	})
	c := newTestClient(t, mux)

	b, err := c.Badges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Badges{Cart: 3, Wishlist: 0}, b)
}

func TestBadgesKeepsCounterThatSucceeded(t *testing.T) {
	mux := storefrontMux()
	mux.HandleFunc("/cart/count/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	mux.HandleFunc("/wishlist/count/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"count":4}`)
	})
	c := newTestClient(t, mux)

	b, err := c.Badges(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(b.CartErr))
	assert.NoError(t, b.WishlistErr)
	assert.Equal(t, 4, b.Wishlist)
}

func TestResolveURL(t *testing.T) {
	cfg := config.Default()
	cfg.BaseURL = "https://shop.example.com"
	c, err := NewClient(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/products/silk-saree/", c.ResolveURL("/products/silk-saree/"))
	assert.Equal(t, "https://cdn.example.com/x", c.ResolveURL("https://cdn.example.com/x"))
}
