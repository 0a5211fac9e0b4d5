/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package httpio provides an HTTP-backed StreamProviderContext.
//
// Save artifacts map to a single URL: Read issues GET, Write issues PUT with
// the payload's length, Exists issues HEAD, Delete issues DELETE. A GET that
// answers 404 yields an empty stream rather than an error, so a load against
// a not-yet-saved artifact behaves like a first run instead of a failure.
package httpio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Provider targets one URL through an HTTP client. It satisfies
// provider.StreamProviderContext.
type Provider struct {
	url    string
	client *http.Client
}

// Option configures a Provider.
type Option func(*Provider)

// WithClient sets the HTTP client used for all requests. Timeout policy
// belongs to this client; the provider imposes none of its own.
func WithClient(c *http.Client) Option {
	return func(p *Provider) {
		p.client = c
	}
}

// New creates a Provider for the given URL.
func New(url string, opts ...Option) *Provider {
	p := &Provider{
		url:    url,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// URL returns the URL this provider targets.
func (p *Provider) URL() string {
	return p.url
}

// Read issues a GET for the artifact. A 404 yields an empty stream; any other
// non-success status is an error.
func (p *Provider) Read(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build GET %s: %w", p.url, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s failed: %w", p.url, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s returned status %d", p.url, resp.StatusCode)
	}
	return resp.Body, nil
}

// Write issues a single PUT carrying the full payload with an explicit
// content length.
func (p *Provider) Write(ctx context.Context, payload io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.url, payload)
	if err != nil {
		return fmt.Errorf("failed to build PUT %s: %w", p.url, err)
	}
	req.ContentLength = size
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("PUT %s failed: %w", p.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("PUT %s returned status %d", p.url, resp.StatusCode)
	}
	return nil
}

// Exists issues a HEAD for the artifact. Any success status means true; any
// other status or transport failure means false.
func (p *Provider) Exists(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build HEAD %s: %w", p.url, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return false, nil
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}

// Delete issues a DELETE for the artifact. A 404 counts as already deleted.
func (p *Provider) Delete(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build DELETE %s: %w", p.url, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("DELETE %s failed: %w", p.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("DELETE %s returned status %d", p.url, resp.StatusCode)
	}
	return nil
}
