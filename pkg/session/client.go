package session

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/gridstate/pkg/layout"
)

// Client is the remote ephemeral session endpoint: a key-value store
// with a server-owned TTL. Reads that find nothing report ok=false
// rather than an error.
type Client interface {
	Get(ctx context.Context, key layout.Key) (Payload, bool, error)
	Put(ctx context.Context, key layout.Key, payload Payload) error
	Delete(ctx context.Context, key layout.Key) error
}

const defaultRequestTimeout = 10 * time.Second

// NewHTTPClient returns a Client speaking JSON over HTTP against
// baseURL. Session records live under /sessions/{key}.
func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: defaultRequestTimeout},
	}
}

type httpClient struct {
	base string
	http *http.Client
}

func (c *httpClient) endpoint(key layout.Key) string {
	encoded := base64.URLEncoding.EncodeToString([]byte(key))
	return c.base + "/sessions/" + url.PathEscape(encoded)
}

func (c *httpClient) Get(ctx context.Context, key layout.Key) (Payload, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(key), nil)
	if err != nil {
		return Payload{}, false, fmt.Errorf("session: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, false, fmt.Errorf("session: get %s: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusNoContent:
		return Payload{}, false, nil
	case http.StatusOK:
		// fall through to decode
	default:
		return Payload{}, false, fmt.Errorf("session: get %s: unexpected status %s", key, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, false, fmt.Errorf("session: read %s: %w", key, err)
	}
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Payload{}, false, fmt.Errorf("session: decode %s: %w", key, err)
	}
	if p.Empty() {
		return Payload{}, false, nil
	}
	return p, true, nil
}

func (c *httpClient) Put(ctx context.Context, key layout.Key, payload Payload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("session: marshal %s: %w", key, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint(key), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("session: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("session: put %s: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("session: put %s: unexpected status %s", key, resp.Status)
	}
	return nil
}

func (c *httpClient) Delete(ctx context.Context, key layout.Key) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.endpoint(key), nil)
	if err != nil {
		return fmt.Errorf("session: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("session: delete %s: %w", key, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("session: delete %s: unexpected status %s", key, resp.Status)
	}
	return nil
}
