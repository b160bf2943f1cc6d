package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/stretchr/testify/require"
)

// TestClient talks to the service over real HTTP. The session cookie is
// Secure, so it is carried by hand instead of through a cookie jar.
type TestClient struct {
	baseURL string
	http    *http.Client
	session *http.Cookie
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type response struct {
	StatusCode int
	Body       envelope
	Raw        []byte
}

func (r *response) decode(t *testing.T, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body.Data, dst))
}

func (c *TestClient) Do(t *testing.T, method, path string, body any) *response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		req.AddCookie(&http.Cookie{Name: c.session.Name, Value: c.session.Value})
	}

	resp, err := c.http.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name != domain.SessionCookieName {
			continue
		}
		if cookie.MaxAge < 0 || cookie.Value == "" {
			c.session = nil
		} else {
			c.session = cookie
		}
	}

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := &response{StatusCode: resp.StatusCode, Raw: raw}
	_ = json.Unmarshal(raw, &out.Body)
	return out
}

func (c *TestClient) SignedIn() bool {
	return c.session != nil
}
