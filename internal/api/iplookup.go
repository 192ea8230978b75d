package api

import (
	"context"
	"encoding/json"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ipLookupTimeout bounds the one enrichment call that may not delay real
// requests.
const ipLookupTimeout = 3 * time.Second

// clientIP returns the cached client IP, resolving it at most once per
// process. Failures are tolerated: the request goes out without IP headers.
func (c *Client) clientIP(ctx context.Context) string {
	if ip := c.session.ClientIP(); ip != "" {
		return ip
	}
	if c.cfg.IPEchoURL == "" {
		return ""
	}
	c.ipOnce.Do(func() {
		ip, err := lookupIP(ctx, c.cfg.IPEchoURL)
		if err != nil {
			c.log.Debugw("client ip lookup failed", "error", err)
			return
		}
		if err := c.session.SetClientIP(ip); err != nil {
			c.log.Debugw("caching client ip failed", "error", err)
		}
	})
	return c.session.ClientIP()
}

func lookupIP(ctx context.Context, echoURL string) (string, error) {
	resp, err := resty.New().
		SetTimeout(ipLookupTimeout).
		R().
		SetContext(ctx).
		Get(echoURL)
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", newError(resp)
	}
	return parseEchoBody(resp.Body())
}

// parseEchoBody accepts the two common echo formats: a bare address or a
// JSON object with an "ip" field.
func parseEchoBody(body []byte) (string, error) {
	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "{") {
		var parsed struct {
			IP string `json:"ip"`
		}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return "", err
		}
		raw = parsed.IP
	}
	if net.ParseIP(raw) == nil {
		return "", &DecodeError{Method: "GET", URL: "ip echo", Err: errInvalidIP}
	}
	return raw, nil
}
