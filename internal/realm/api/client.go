// Package api is the HTTP client for the Dragon's Realm server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/karnadev/dragonsrealm/internal/realm/models"
)

const defaultBaseURL = "http://localhost:8080"

// Client talks to the realm server. Token is set after a successful Login
// and sent as a bearer credential on document requests.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Token      string
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 15 * time.Second}
}

// apiError extracts the server's {"error": "..."} payload so callers can show
// the server's own message.
func apiError(body []byte, status int) error {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return fmt.Errorf("%s", e.Error)
	}
	return fmt.Errorf("request failed with status %d", status)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(body, resp.StatusCode)
	}
	return body, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Login exchanges credentials for a token and stores it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := c.postJSON(ctx, "/api/auth", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("parse login response: %w", err)
	}
	c.Token = resp.Token
	return resp.Token, nil
}

// Verify checks whether a token is still accepted by the server.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	body, err := c.postJSON(ctx, "/api/auth/verify", map[string]string{"token": token})
	if err != nil {
		// The server answers 400 with {"valid": false} for bad tokens.
		return false, nil
	}

	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, fmt.Errorf("parse verify response: %w", err)
	}
	return resp.Valid, nil
}

// Nutrition asks the server for per-100g nutrition facts for a food query.
func (c *Client) Nutrition(ctx context.Context, query string) (*models.NutritionRecord, error) {
	body, err := c.postJSON(ctx, "/api/nutrition", map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	var record models.NutritionRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("parse nutrition response: %w", err)
	}
	return &record, nil
}

// Documents lists the user's stored documents, newest first.
func (c *Client) Documents(ctx context.Context) ([]models.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/api/documents", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Documents []models.Document `json:"documents"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse documents response: %w", err)
	}
	return resp.Documents, nil
}

// UploadDocument sends a file as multipart form data.
func (c *Client) UploadDocument(ctx context.Context, name string, content []byte) (*models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("name", name); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if _, err := fw.Write(content); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL()+"/api/documents/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Document models.Document `json:"document"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse upload response: %w", err)
	}
	return &resp.Document, nil
}

// DownloadDocument fetches a document's content by id.
func (c *Client) DownloadDocument(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL()+"/api/documents/download/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return c.do(req)
}

// DeleteDocument removes a document and its content.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL()+"/api/documents/"+id, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	_, err = c.do(req)
	return err
}
