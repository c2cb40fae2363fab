package client

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

	"github.com/bft-labs/blockinfo/pkg/log"
	"github.com/bft-labs/blockinfo/pkg/security"
)

const addBlockchainInformationEndpoint = "/api/app/addBlockchainInformation/"

// Params is the caller-supplied request body. It is sent verbatim.
type Params map[string]any

// Client posts to the app API under a fixed base URL.
type Client struct {
	baseURL    string
	base       security.RequestConfig
	httpClient HTTPClient
	logger     log.Logger
}

// New creates a client for baseURL. A trailing slash is dropped.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	return &Client{
		baseURL:    baseURL,
		base:       security.RequestConfig{Headers: headers},
		httpClient: o.httpClient,
		logger:     o.logger,
	}, nil
}

// BaseURL returns the base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Endpoint returns the full addBlockchainInformation URL.
func (c *Client) Endpoint() string {
	return c.baseURL + addBlockchainInformationEndpoint
}

// AddBlockchainInformation posts params as JSON and returns the decoded
// response body. Numbers are decoded as json.Number. An empty 2xx body
// yields a nil result; anything after the first JSON value is an error.
func (c *Client) AddBlockchainInformation(ctx context.Context, params Params, bearerToken string) (any, error) {
	if params == nil {
		params = Params{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("marshal params: %w", err)
	}

	endpoint := c.Endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	security.Apply(req, security.AddSecurityHeader(c.base, bearerToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("addBlockchainInformation",
		log.String("endpoint", endpoint),
		log.Int("status", resp.StatusCode),
	)

	if resp.StatusCode/100 != 2 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
		}
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
