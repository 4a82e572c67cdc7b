package gdocs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/KeithKrenek/google-doc-pdf-converter/internal/httputil"
)

// DefaultBaseURL is the production Google Docs API endpoint.
const DefaultBaseURL = "https://docs.googleapis.com/v1"

// Sentinel errors for document retrieval.
var (
	ErrFetch      = errors.New("failed to retrieve document")
	ErrNotFound   = errors.New("document not found")
	ErrEmptyDocID = errors.New("document ID cannot be empty")
)

const fetchTimeout = 30 * time.Second

// Client retrieves documents from the Google Docs API.
// The zero value is not usable; construct with NewClient.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a Client for the given API base URL and bearer token.
// An empty baseURL selects the production endpoint; an empty token sends
// unauthenticated requests (useful against test servers).
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		baseURL:    baseURL,
		token:      token,
	}
}

// Get retrieves the raw document tree for a document ID.
// Retries on HTTP 429 with exponential backoff.
func (c *Client) Get(ctx context.Context, documentID string) (*Document, error) {
	if documentID == "" {
		return nil, ErrEmptyDocID
	}

	endpoint := fmt.Sprintf("%s/documents/%s", c.baseURL, url.PathEscape(documentID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, documentID)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetch, resp.StatusCode, body)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrFetch, err)
	}
	return &doc, nil
}
