// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DoWithFallback executes a request on the primary client and, when the
// connection itself fails (no HTTP response at all), retries it once on the
// fallback client. A failure on the fallback attempt is fatal and reported
// together with the primary error. HTTP error statuses are returned as-is;
// only transport-level failures trigger the fallback.
//
// Callers pass a proxy-bypassing client as primary and a proxy-aware client
// as fallback, so a broken local proxy configuration cannot kill a run.
func DoWithFallback(ctx context.Context, primary, fallback *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := primary.Do(req.Clone(ctx))
	if err == nil {
		return resp, nil
	}
	if fallback == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}

	resp, fbErr := fallback.Do(req.Clone(ctx))
	if fbErr != nil {
		return nil, fmt.Errorf("direct request failed (%v); fallback request: %w", err, fbErr)
	}
	return resp, nil
}

// DirectClient returns an HTTP client that bypasses any configured proxy.
func DirectClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	return &http.Client{Timeout: timeout, Transport: transport}
}

// ProxyClient returns an HTTP client that honors the environment proxy settings.
func ProxyClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
