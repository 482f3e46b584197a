// Package transport implements the shared HTTP layer used by every Mux API
// resource: authentication, JSON serialization, error translation, and
// optional retry, throttling, logging, and error reporting.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cbsinteractive/mux-sdk-go/exceptions"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout = 30 * time.Second
	defaultBaseURL = "https://api.mux.com"

	baseBackoff = 500 * time.Millisecond
	maxBackoff  = 30 * time.Second
)

// Client holds Mux API credentials and exposes verb helpers used by the
// resource services. The zero value is usable after credentials are set;
// missing fields are filled with defaults on first use.
type Client struct {
	Base   *url.URL
	Client *http.Client

	TokenID     string
	TokenSecret string

	// Logger, when set, receives a debug line per request and a warning
	// per retried or failed request.
	Logger *logrus.Logger

	// Reporter, when set, is notified of transport and API errors.
	Reporter exceptions.Reporter

	// Limiter, when set, throttles outbound requests client-side.
	Limiter *rate.Limiter

	// MaxRetries bounds additional attempts for throttled (429) and 5xx
	// responses. Zero means every call maps to exactly one wire request.
	MaxRetries int
}

func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) Post(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *Client) Put(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, result)
}

func (c *Client) Patch(ctx context.Context, path string, body, result interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, result)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, result interface{}) error {
	c.ensure()

	var payload []byte
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		payload = b
	}

	resp, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		c.report(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := newError(resp)
		c.logf(logrus.WarnLevel, "%s %s: %v", method, path, err)
		c.report(err)
		return err
	}

	if result == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}

	return nil
}

// roundTrip sends the request, retrying throttled and 5xx responses up to
// MaxRetries times. The payload is buffered by the caller so every attempt
// sends identical bytes.
func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		if c.Limiter != nil {
			if err := c.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		req, err := c.newRequest(ctx, method, path, payload)
		if err != nil {
			return nil, err
		}

		c.logf(logrus.DebugLevel, "%s %s", method, path)
		resp, err := c.Client.Do(req)
		if err != nil {
			if attempt < c.MaxRetries {
				c.logf(logrus.WarnLevel, "%s %s failed, retrying: %v", method, path, err)
				if err := sleep(ctx, backoff(attempt, nil)); err != nil {
					return nil, err
				}
				continue
			}
			return nil, errors.Wrapf(err, "%s %s", method, path)
		}

		if retryable(resp.StatusCode) && attempt < c.MaxRetries {
			wait := backoff(attempt, resp.Header)
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			c.logf(logrus.WarnLevel, "%s %s returned %s, retrying in %s", method, path, resp.Status, wait)
			if err := sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		return resp, nil
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base.String()+path, body)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(c.TokenID, c.TokenSecret)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) ensure() {
	if c.Client == nil {
		c.Client = &http.Client{Timeout: defaultTimeout}
	}

	if c.Base == nil {
		c.Base = urlMust(url.Parse(defaultBaseURL))
	}
}

func (c *Client) report(err error) {
	if c.Reporter != nil {
		c.Reporter.ReportException(err)
	}
}

func (c *Client) logf(level logrus.Level, format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Logf(level, format, args...)
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// backoff returns the wait before the next attempt: the server's
// Retry-After when present, otherwise jittered exponential backoff.
func backoff(attempt int, h http.Header) time.Duration {
	if h != nil {
		if secs, err := strconv.Atoi(h.Get("Retry-After")); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
	}

	// doubling stops at the cap so large attempt counts cannot overflow
	wait := baseBackoff
	for i := 0; i < attempt && wait < maxBackoff; i++ {
		wait *= 2
	}
	if wait > maxBackoff {
		wait = maxBackoff
	}
	return wait/2 + time.Duration(rand.Int63n(int64(wait/2)))
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func urlMust(u *url.URL, _ error) *url.URL { return u }
