package nfd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var ErrInvalidName = errors.New("invalid nfd name")

// APIError is a non-2xx, non-404 answer from the NFD API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nfd api: status %d: %s", e.Status, e.Body)
}

// Client talks to the NFD API of one network.
type Client struct {
	network Network
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient sets the client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

func New(network Network, opts ...Option) *Client {
	c := &Client{
		network: network,
		baseURL: DefaultBaseURL(network),
		http:    http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func NewMainNet(opts ...Option) *Client { return New(MainNet, opts...) }

func NewTestNet(opts ...Option) *Client { return New(TestNet, opts...) }

func (c *Client) Network() Network { return c.network }

// Resolve looks up name. A name that is not registered yields (nil, nil).
func (c *Client) Resolve(ctx context.Context, name string, view View) (*Profile, error) {
	if name == "" || strings.Contains(name, "/") {
		return nil, errors.Wrapf(ErrInvalidName, "%q", name)
	}
	if view == "" {
		view = ViewBrief
	}

	endpoint := c.baseURL + "/nfd/" + url.PathEscape(name) + "?" + url.Values{"view": {string(view)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build nfd request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s on %s", name, c.network)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.WithStack(&APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))})
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, errors.Wrapf(err, "decode nfd %s", name)
	}
	return &p, nil
}
