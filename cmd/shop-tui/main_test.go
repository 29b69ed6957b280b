package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altinukshini/shop-tui/internal/ops"
)

func newStorefront(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok", Path: "/"})
		io.WriteString(w, "<html></html>")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// run executes the root command against srv with an isolated config and log file.
func run(t *testing.T, srv *httptest.Server, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	full := append([]string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--log-file", filepath.Join(dir, "shop-tui.log"),
		"--base-url", srv.URL,
	}, args...)

	cmd := newRootCmd(output{w: &stdout, errW: &stderr, width: 120})
	cmd.SetArgs(full)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}

func TestSearchPrintsTSV(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "silk saree", r.URL.Query().Get("q"))
		writeJSON(w, `{"count":1,"products":[{"url":"/products/silk-saree/","category":"Sarees","name":"Silk Saree","price":"1299.00"}]}`)
	})
	srv := newStorefront(t, mux)

	out, _, err := run(t, srv, "search", "silk", "saree")
	require.NoError(t, err)
	assert.Contains(t, out, "Silk Saree\tSarees\t₹1299\t"+srv.URL+"/products/silk-saree/")
}

func TestSearchRejectsShortQuery(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, `{"count":0,"products":[]}`)
	})
	srv := newStorefront(t, mux)

	_, _, err := run(t, srv, "search", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 characters")
	assert.Zero(t, hits.Load())
}

func TestSearchNoResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"count":0,"products":[]}`)
	})
	srv := newStorefront(t, mux)

	out, errOut, err := run(t, srv, "search", "zz")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "No products found")
}

func TestCartUpdatePrintsSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cart/update/42/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok", r.Header.Get("X-CSRFToken"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "2", r.PostForm.Get("quantity"))
		writeJSON(w, `{"success":true,"message":"Cart updated","cart_data":{"subtotal":"2598.00","shipping":0,"total":"2598.00","count":2}}`)
	})
	srv := newStorefront(t, mux)

	out, _, err := run(t, srv, "cart", "update", "42", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Cart updated")
	assert.Contains(t, out, "Shipping\tFREE")
	assert.Contains(t, out, "Total\t₹2598")
}

func TestCartUpdateSurfacesServerMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cart/update/42/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"success":false,"message":"Only 1 left in stock"}`)
	})
	srv := newStorefront(t, mux)

	_, _, err := run(t, srv, "cart", "update", "42", "5")
	require.Error(t, err)
	assert.Equal(t, "Only 1 left in stock", err.Error())
}

func TestCartUpdateValidatesArgs(t *testing.T) {
	srv := newStorefront(t, http.NewServeMux())

	_, _, err := run(t, srv, "cart", "update", "abc", "1")
	assert.ErrorContains(t, err, "invalid product id")

	_, _, err = run(t, srv, "cart", "update", "42", "0")
	assert.ErrorContains(t, err, "quantity must be a positive number")
}

func TestWishlistToCartMovesMatchingItems(t *testing.T) {
	prev := ops.PaceEvery
	ops.PaceEvery = 0
	t.Cleanup(func() { ops.PaceEvery = prev })

	var added, removed atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/wishlist/", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html><body>
<div class="wishlist-item" data-product-id="1"><h3 class="product-name">Silk Saree</h3><a href="/products/silk/">view</a></div>
<div class="wishlist-item" data-product-id="2"><h3 class="product-name">Cotton Kurta</h3><a href="/products/kurta/">view</a></div>
</body></html>`)
	})
	mux.HandleFunc("/cart/add/1/", func(w http.ResponseWriter, r *http.Request) {
		added.Add(1)
		writeJSON(w, `{"success":true,"message":"Added","cart_data":{"subtotal":"1299","shipping":0,"total":"1299","count":1}}`)
	})
	mux.HandleFunc("/wishlist/remove/1/", func(w http.ResponseWriter, r *http.Request) {
		removed.Add(1)
		writeJSON(w, `{"success":true,"message":"Removed"}`)
	})
	srv := newStorefront(t, mux)

	out, _, err := run(t, srv, "wishlist", "to-cart", "--match", "silk")
	require.NoError(t, err)
	assert.Equal(t, int32(1), added.Load())
	assert.Equal(t, int32(1), removed.Load())
	assert.Contains(t, out, "Moved 1 item")
}

func TestVersionSkipsSetup(t *testing.T) {
	var stdout bytes.Buffer
	cmd := newRootCmd(output{w: &stdout, errW: io.Discard})
	cmd.SetArgs([]string{"--base-url", "not a url", "version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "shop-tui ")
}
