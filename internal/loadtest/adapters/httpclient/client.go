package httpclient

import (
	"context"
	"time"

	"gallery-analytics-service/internal/loadtest/core/domain"
	"gallery-analytics-service/internal/loadtest/core/ports"

	"github.com/valyala/fasthttp"
)

type Options struct {
	MaxConnsPerHost int
	Timeout         time.Duration
	// Dial overrides the network dialer, e.g. for in-memory listeners in tests.
	Dial fasthttp.DialFunc
}

// Client is a fasthttp-backed HTTPClientPort. It is safe for concurrent use.
type Client struct {
	c       *fasthttp.Client
	timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Client{
		c: &fasthttp.Client{
			Name:            "gallery-loadtest",
			MaxConnsPerHost: opts.MaxConnsPerHost,
			ReadTimeout:     opts.Timeout,
			WriteTimeout:    opts.Timeout,
			Dial:            opts.Dial,
		},
		timeout: opts.Timeout,
	}
}

var _ ports.HTTPClientPort = (*Client)(nil)

// Do sends one request and copies the body out of the pooled response.
// The effective deadline is the earlier of the context deadline and the
// client timeout.
func (cl *Client) Do(ctx context.Context, method, url string, headers map[string]string) (domain.HTTPResponse, error) {
	if err := ctx.Err(); err != nil {
		return domain.HTTPResponse{}, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	deadline := time.Now().Add(cl.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := cl.c.DoDeadline(req, resp, deadline); err != nil {
		return domain.HTTPResponse{}, err
	}

	return domain.HTTPResponse{
		Status: resp.StatusCode(),
		Body:   append([]byte(nil), resp.Body()...),
	}, nil
}
