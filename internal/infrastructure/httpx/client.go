// Package httpx is the JSON round trip shared by the vendor clients.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const jsonMediaType = "application/json"

// ErrorDecoder turns a non-2xx response body into the vendor's error type.
type ErrorDecoder func(statusCode int, body []byte) error

type Client struct {
	baseURL     string
	httpClient  *http.Client
	mediaType   string
	header      http.Header
	decodeError ErrorDecoder
}

type Option func(*Client)

// WithMediaType sets Content-Type and Accept for every request.
func WithMediaType(mediaType string) Option {
	return func(c *Client) {
		c.mediaType = mediaType
	}
}

// WithHeader adds a header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

func WithErrorDecoder(decode ErrorDecoder) Option {
	return func(c *Client) {
		c.decodeError = decode
	}
}

func NewClient(baseURL string, httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		mediaType:  jsonMediaType,
		header:     http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.decodeError == nil {
		c.decodeError = func(statusCode int, body []byte) error {
			return fmt.Errorf("unexpected status %d: %s", statusCode, string(body))
		}
	}
	return c
}

// URL resolves path against the base URL. Absolute URLs are returned as-is.
func (c *Client) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Response is a decoded 2xx answer. Body is nil when the vendor sent none.
type Response[Resp any] struct {
	StatusCode int
	Location   string
	Body       *Resp
}

// Do sends reqBody as JSON and decodes a 2xx body into Resp. Extra headers
// override the client's defaults for this request only.
func Do[Req any, Resp any](c *Client, ctx context.Context, method, path string, reqBody *Req, header http.Header) (*Response[Resp], error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	for key, values := range c.header {
		httpReq.Header[key] = values
	}
	for key, values := range header {
		httpReq.Header[key] = values
	}
	httpReq.Header.Set("Accept", c.mediaType)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", c.mediaType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.decodeError(resp.StatusCode, body)
	}

	out := &Response[Resp]{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}

	var decoded Resp
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}
	out.Body = &decoded

	return out, nil
}
