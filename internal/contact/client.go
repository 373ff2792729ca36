package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Path is the contact endpoint route.
const Path = "/api/contact"

// ResponseError is a non-2xx answer from the endpoint.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("contact endpoint returned %d", e.StatusCode)
	}
	return fmt.Sprintf("contact endpoint returned %d: %s", e.StatusCode, e.Message)
}

// Response is the endpoint's JSON body.
type Response struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Client posts forms to a portfolio server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient targets the server at baseURL using http.DefaultClient.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

func (c *Client) Post(ctx context.Context, form Form) (string, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return "", fmt.Errorf("encode contact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+Path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send contact request: %w", err)
	}
	defer resp.Body.Close()

	var out Response
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil {
		err = json.Unmarshal(raw, &out)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &ResponseError{StatusCode: resp.StatusCode, Message: out.Error}
	}
	if err != nil {
		return "", fmt.Errorf("decode contact response: %w", err)
	}
	return out.Message, nil
}
