package httpclient

import (
	"net/http"
	"time"
)

// Client is a thin wrapper around http.Client that pins a request timeout.
// Every outbound model call goes through one of these so a hung provider
// cannot stall a request forever.
type Client struct {
	httpClient *http.Client
}

func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
