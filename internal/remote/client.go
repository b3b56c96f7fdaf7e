// Package remote talks to the sync endpoint that stores the portfolio
// documents. Every request hits one URL, parameterized by an action name
// and the shared access token.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Actions accepted by the sync endpoint.
const (
	ActionGetData   = "getData"
	ActionGetTheme  = "getTheme"
	ActionSaveData  = "saveData"
	ActionSaveTheme = "saveTheme"
	ActionLogin     = "login"
	ActionUpload    = "uploadFile"
)

// Client is the sync client. It performs no retries; a failed attempt is
// surfaced to the caller, who decides between fallback and notice.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given endpoint. The timeout bounds every
// call; there is no retry on top of it.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) actionURL(action string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint URL: %w", err)
	}
	q := u.Query()
	q.Set("action", action)
	q.Set("token", c.token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, action string) ([]byte, error) {
	u, err := c.actionURL(action)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", action, err)
	}

	return c.do(req, action)
}

func (c *Client) post(ctx context.Context, action string, body []byte) ([]byte, error) {
	u, err := c.actionURL(action)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", action, err)
	}
	// The endpoint reads raw text bodies; it does not parse a JSON
	// content type.
	req.Header.Set("Content-Type", "text/plain")

	return c.do(req, action)
}

func (c *Client) do(req *http.Request, action string) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("calling %s: unexpected status %d", action, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}
	return data, nil
}

// FetchContent retrieves the raw content document.
func (c *Client) FetchContent(ctx context.Context) ([]byte, error) {
	return c.get(ctx, ActionGetData)
}

// FetchTheme retrieves the raw theme document.
func (c *Client) FetchTheme(ctx context.Context) ([]byte, error) {
	return c.get(ctx, ActionGetTheme)
}

// SaveContent pushes the whole content document verbatim. The response body
// is not inspected beyond the call succeeding.
func (c *Client) SaveContent(ctx context.Context, doc []byte) error {
	_, err := c.post(ctx, ActionSaveData, doc)
	return err
}

// SaveTheme pushes the whole theme document verbatim.
func (c *Client) SaveTheme(ctx context.Context, doc []byte) error {
	_, err := c.post(ctx, ActionSaveTheme, doc)
	return err
}

// Login checks admin credentials against the endpoint. A false return with
// nil error means the credentials were rejected.
func (c *Client) Login(ctx context.Context, username, password string) (bool, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return false, fmt.Errorf("encoding credentials: %w", err)
	}

	data, err := c.post(ctx, ActionLogin, body)
	if err != nil {
		return false, err
	}

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return false, fmt.Errorf("decoding login response: %w", err)
	}
	return result.Success, nil
}

// UploadRequest is the payload for the file upload action.
type UploadRequest struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64-encoded file contents
}

// Upload sends a file to the endpoint's file store and returns the URL it
// was stored under.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding upload: %w", err)
	}

	data, err := c.post(ctx, ActionUpload, body)
	if err != nil {
		return "", err
	}

	var result struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	if !result.Success {
		return "", fmt.Errorf("upload rejected by endpoint")
	}
	return result.URL, nil
}
