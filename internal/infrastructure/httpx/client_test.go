package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/httpx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Name string `json:"name"`
}

var errVendor = errors.New("vendor said no")

func TestDo(t *testing.T) {
	t.Run("sends headers and returns location", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers", r.URL.Path)
			assert.Equal(t, "application/vnd.test+json", r.Header.Get("Content-Type"))
			assert.Equal(t, "application/vnd.test+json", r.Header.Get("Accept"))
			assert.Equal(t, "project-1", r.Header.Get("X-Project"))
			assert.Equal(t, "per-call", r.Header.Get("X-Session"))

			var in echo
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "horizon", in.Name)

			w.Header().Set("Location", "https://vendor.test/customers/abc")
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL+"/", server.Client(),
			httpx.WithMediaType("application/vnd.test+json"),
			httpx.WithHeader("X-Project", "project-1"),
		)

		resp, err := httpx.Do[echo, echo](client, context.Background(), http.MethodPost, "customers",
			&echo{Name: "horizon"}, http.Header{"X-Session": {"per-call"}})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "https://vendor.test/customers/abc", resp.Location)
		assert.Nil(t, resp.Body)
	})

	t.Run("decodes body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Empty(t, r.Header.Get("Content-Type"))
			_, _ = w.Write([]byte(`{"name":"siri"}`))
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL, server.Client())

		resp, err := httpx.Do[any, echo](client, context.Background(), http.MethodGet, "/account", nil, nil)

		require.NoError(t, err)
		require.NotNil(t, resp.Body)
		assert.Equal(t, "siri", resp.Body.Name)
	})

	t.Run("non-2xx goes through the error decoder", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":"ValidationError"}`))
		}))
		defer server.Close()

		var gotStatus int
		var gotBody string
		client := httpx.NewClient(server.URL, server.Client(), httpx.WithErrorDecoder(func(statusCode int, body []byte) error {
			gotStatus = statusCode
			gotBody = string(body)
			return errVendor
		}))

		_, err := httpx.Do[any, echo](client, context.Background(), http.MethodGet, "/x", nil, nil)

		assert.ErrorIs(t, err, errVendor)
		assert.Equal(t, http.StatusBadRequest, gotStatus)
		assert.JSONEq(t, `{"code":"ValidationError"}`, gotBody)
	})

	t.Run("absolute path is used as-is", func(t *testing.T) {
		client := httpx.NewClient("https://api-sandbox.dwolla.com", http.DefaultClient)
		assert.Equal(t, "https://api.example.com/x", client.URL("https://api.example.com/x"))
		assert.Equal(t, "https://api-sandbox.dwolla.com/transfers", client.URL("/transfers"))
	})
}
