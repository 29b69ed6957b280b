package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"

	"github.com/altinukshini/shop-tui/internal/config"
	"github.com/altinukshini/shop-tui/internal/model"
)

const (
	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
	csrfFormField  = "csrfmiddlewaretoken"

	contentTypeForm = "application/x-www-form-urlencoded"
	contentTypeJSON = "application/json"
)

type Client struct {
	http      *http.Client
	base      *url.URL
	userAgent string
	log       *zap.Logger

	mu        sync.Mutex
	formToken string // csrfmiddlewaretoken scraped when the cookie is missing
}

func NewClient(cfg config.Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http:      &http.Client{Jar: jar, Timeout: cfg.Timeout},
		base:      base,
		userAgent: cfg.UserAgent,
		log:       logger.Named("api"),
	}, nil
}

// ResolveURL turns a server-relative path such as a product url into an
// absolute URL on the storefront host.
func (c *Client) ResolveURL(path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return c.base.String()
	}
	return c.base.ResolveReference(ref).String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.ResolveURL(path), body)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return req, nil
}

// do sends req and decodes a 2xx JSON body into result. Every failure on
// this path is a transport failure.
func (c *Client) do(req *http.Request, op string, result interface{}) error {
	req.Header.Set("Accept", contentTypeJSON)
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("response",
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &TransportError{Op: op, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, result interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	return c.do(req, op, result)
}

// postMutation issues a CSRF-protected POST and maps success:false to an AppError.
func (c *Client) postMutation(ctx context.Context, op, path, contentType string, body io.Reader) (*model.MutationResponse, error) {
	token, err := c.CSRFToken(ctx)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set(csrfHeaderName, token)
	req.Header.Set("Referer", c.base.String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	var resp model.MutationResponse
	if err := c.do(req, op, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, &AppError{Op: op, Message: resp.Message}
	}
	return &resp, nil
}

// getDocument fetches a server-rendered page for scraping.
func (c *Client) getDocument(ctx context.Context, op, path string) (*goquery.Document, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "text/html")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode}
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("parse html: %w", err)}
	}
	c.rememberFormToken(doc)
	return doc, nil
}

// CSRFToken returns the csrftoken cookie for the storefront host. When the
// jar has none yet, the home page is fetched once to obtain it; pages that
// only embed the token in forms are handled by the scraped fallback.
func (c *Client) CSRFToken(ctx context.Context) (string, error) {
	if token := c.cookieToken(); token != "" {
		return token, nil
	}
	if token := c.fallbackToken(); token != "" {
		return token, nil
	}
	if _, err := c.getDocument(ctx, "csrf", "/"); err != nil {
		return "", fmt.Errorf("fetch csrf token: %w", err)
	}
	if token := c.cookieToken(); token != "" {
		return token, nil
	}
	if token := c.fallbackToken(); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("no %s cookie set by %s", csrfCookieName, c.base)
}

func (c *Client) cookieToken() string {
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name != csrfCookieName {
			continue
		}
		if v, err := url.QueryUnescape(ck.Value); err == nil {
			return v
		}
		return ck.Value
	}
	return ""
}

func (c *Client) fallbackToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formToken
}

func (c *Client) rememberFormToken(doc *goquery.Document) {
	token, ok := doc.Find(fmt.Sprintf("input[name=%s]", csrfFormField)).First().Attr("value")
	if !ok || token == "" {
		return
	}
	c.mu.Lock()
	c.formToken = token
	c.mu.Unlock()
}
