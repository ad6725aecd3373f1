// Package node is a thin HTTP client for the Alephium full-node REST API.
// Addresses, keys and raw transactions cross this boundary as plain values;
// derivation itself never happens here.
package node

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
)

// Metrics records metrics for node calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Client calls a full node with rate limiting and per-operation metrics.
type Client struct {
	baseURL string
	http    *http.Client
	limiter ratelimit.Limiter
	metrics Metrics
}

// New validates the base URL and constructs an instrumented client.
// rps caps outgoing requests per second; zero or negative disables the cap.
func New(baseURL string, timeout time.Duration, rps int, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("node url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("node url missing host")
	}
	if metrics == nil {
		return nil, errors.New("node metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		limiter: limiter,
		metrics: metrics,
	}, nil
}

// GetBalance returns the balance of an address.
func (c *Client) GetBalance(ctx context.Context, address string) (res *Balance, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_balance", err, started)
	}()
	res = &Balance{}
	if err = c.get(ctx, "/addresses/"+url.PathEscape(address)+"/balance", res); err != nil {
		return nil, err
	}
	return res, nil
}

// BuildTransaction asks the node to assemble an unsigned transfer.
func (c *Client) BuildTransaction(ctx context.Context, req BuildTransactionRequest) (res *UnsignedTransaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("build_transaction", err, started)
	}()
	res = &UnsignedTransaction{}
	if err = c.post(ctx, "/transactions/build", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

// SubmitTransaction submits a signed transaction.
func (c *Client) SubmitTransaction(ctx context.Context, req SubmitTransactionRequest) (res *SubmitTransactionResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("submit_transaction", err, started)
	}()
	res = &SubmitTransactionResult{}
	if err = c.post(ctx, "/transactions/submit", req, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	c.limiter.Take()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	c.limiter.Take()
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("node returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode node response: %w", err)
	}
	return nil
}
