package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/omdehgostar/portal/internal/session"
)

// PageSize is the fixed page size for every list endpoint; the server
// supplies the total count in the envelope.
const PageSize = 20

type Config struct {
	BaseURL     string
	FileBaseURL string
	// Version and Branch are fixed for the life of the process and sent
	// on every request.
	Version   string
	Branch    string
	IPEchoURL string
	Timeout   time.Duration
}

// Client is the single point of HTTP communication with the backend. Every
// method performs exactly one call and holds no cache; callers refetch after
// mutations.
type Client struct {
	http    *resty.Client
	cfg     Config
	session session.Store
	log     *zap.SugaredLogger

	onExpired func()

	ipOnce sync.Once
	sf     singleflight.Group

	Auth      *AuthService
	Customers *CustomerService
	Orders    *OrderService
	Payments  *PaymentService
	Wallets   *WalletService
	Checks    *CheckService
	Requests  *RequestService
	Tickets   *TicketService
	Stats     *StatsService
	Files     *FileService
	Cart      *CartService
	Public    *PublicService
}

type Option func(*Client)

// WithSessionExpired installs the callback fired after the session is
// cleared on an unrecoverable 401. The host owns navigation; the client
// never redirects on its own.
func WithSessionExpired(fn func()) Option {
	return func(c *Client) { c.onExpired = fn }
}

// WithHTTPClient swaps the underlying transport, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = resty.NewWithClient(hc) }
}

func New(cfg Config, store session.Store, log *zap.Logger, opts ...Option) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		cfg:     cfg,
		session: store,
		log:     log.Sugar(),
	}
	c.http = resty.New()
	for _, opt := range opts {
		opt(c)
	}
	c.http.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("version", cfg.Version).
		SetHeader("branch", cfg.Branch)

	c.Auth = &AuthService{c}
	c.Customers = &CustomerService{c}
	c.Orders = &OrderService{c}
	c.Payments = &PaymentService{c}
	c.Wallets = &WalletService{c}
	c.Checks = &CheckService{c}
	c.Requests = &RequestService{c}
	c.Tickets = &TicketService{c}
	c.Stats = &StatsService{c}
	c.Files = &FileService{c}
	c.Cart = &CartService{c}
	c.Public = &PublicService{c}
	return c
}

// do performs one JSON call with the 401-refresh-and-replay machine.
func (c *Client) do(ctx context.Context, method, path string, body, out any, query url.Values) error {
	build := func(req *resty.Request) {
		if query != nil {
			req.SetQueryParamsFromValues(query)
		}
		if body != nil {
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(body)
		}
	}
	return c.doRequest(ctx, method, path, out, build)
}

func (c *Client) doRequest(ctx context.Context, method, path string, out any, build func(*resty.Request)) error {
	resp, err := c.send(ctx, method, path, build)
	if err != nil {
		return err
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		if err := c.refreshAccessToken(ctx); err != nil {
			return err
		}
		// one replay with the new token; a second 401 falls through to
		// decode and comes back as a plain *Error
		resp, err = c.send(ctx, method, path, build)
		if err != nil {
			return err
		}
	}
	return c.decode(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, build func(*resty.Request)) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if token := c.session.AccessToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if ip := c.clientIP(ctx); ip != "" {
		req.SetHeader("x-forwarded-for", ip)
		req.SetHeader("x-real-ip", ip)
	}
	build(req)

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, err
	}
	c.log.Debugw("api call",
		"method", method,
		"path", path,
		"status", resp.StatusCode(),
		"duration", resp.Time().String(),
	)
	return resp, nil
}

func (c *Client) decode(resp *resty.Response, out any) error {
	if !resp.IsSuccess() {
		return newError(resp)
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{
			Method: resp.Request.Method,
			URL:    resp.Request.URL,
			Err:    err,
		}
	}
	return nil
}

// refreshAccessToken runs at most one refresh at a time; concurrent 401s
// share the single in-flight attempt and its result.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	_, err, _ := c.sf.Do("refresh", func() (any, error) {
		refresh := c.session.RefreshToken()
		if refresh == "" {
			c.expireSession()
			return nil, ErrSessionExpired
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(refreshRequest{RefreshToken: refresh}).
			Post("/auth/refresh")
		if err != nil {
			// transient failure: keep the tokens, let the caller see it
			return nil, err
		}
		if resp.StatusCode() == http.StatusUnauthorized {
			c.expireSession()
			return nil, ErrSessionExpired
		}
		if !resp.IsSuccess() {
			return nil, newError(resp)
		}

		var body refreshResponse
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, &DecodeError{Method: http.MethodPost, URL: resp.Request.URL, Err: err}
		}
		if err := c.session.SetAccessToken(body.AccessToken); err != nil {
			return nil, err
		}
		c.log.Infow("access token refreshed")
		return nil, nil
	})
	return err
}

func (c *Client) expireSession() {
	if err := c.session.Clear(); err != nil {
		c.log.Warnw("clearing session failed", "error", err)
	}
	if c.onExpired != nil {
		c.onExpired()
	}
}

// listEnvelope is the one accepted list shape. A bare array is a decode
// error, never silently unwrapped.
type listEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// List is a single page of a remote collection.
type List[T any] struct {
	Items []T
	Total int
}

func listGet[T any](ctx context.Context, c *Client, path string, query url.Values) (List[T], error) {
	var env listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, nil, &env, query); err != nil {
		return List[T]{}, err
	}
	return List[T]{Items: env.Data, Total: env.Total}, nil
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(PageSize))
	return q
}
