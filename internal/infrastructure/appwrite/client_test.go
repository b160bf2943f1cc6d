package appwrite_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/infrastructure/appwrite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *appwrite.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return appwrite.NewClient(config.AppwriteConfig{
		Endpoint: server.URL + "/v1",
		Project:  "horizon",
		Key:      "admin-key",
		Timeout:  5 * time.Second,
	})
}

func TestClient_CreateAccount(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/account", r.URL.Path)
		assert.Equal(t, "horizon", r.Header.Get("X-Appwrite-Project"))
		assert.Equal(t, "admin-key", r.Header.Get("X-Appwrite-Key"))

		var body appwrite.CreateAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body.UserID)
		assert.Equal(t, "Siri Tech", body.Name)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"$id":"u1","name":"Siri Tech","email":"siritech@gmail.com","$createdAt":"2024-10-15T06:38:00.000+00:00"}`))
	})

	profile, err := client.CreateAccount(context.Background(), "u1", "siritech@gmail.com", "password123", "Siri Tech")

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "Siri", profile.FirstName())
	assert.Equal(t, 2024, profile.CreatedAt.Year())
}

func TestClient_CreateEmailPasswordSession(t *testing.T) {
	t.Run("returns secret", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/account/sessions/email", r.URL.Path)
			assert.Equal(t, "admin-key", r.Header.Get("X-Appwrite-Key"))

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"$id":"s1","userId":"u1","secret":"top-secret","expire":"2025-10-15T06:38:00.000+00:00"}`))
		})

		session, err := client.CreateEmailPasswordSession(context.Background(), "siritech@gmail.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, domain.SessionToken("top-secret"), session.Secret)
		assert.Equal(t, "s1", session.ID)
	})

	t.Run("bad credentials", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid credentials.","code":401,"type":"user_invalid_credentials"}`))
		})

		_, err := client.CreateEmailPasswordSession(context.Background(), "siritech@gmail.com", "nope")

		vendorErr, ok := application.IsVendorError(err)
		require.True(t, ok)
		assert.True(t, vendorErr.IsUnauthorized())
		assert.Equal(t, "user_invalid_credentials", vendorErr.Code)
	})
}

func TestClient_SessionCalls(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "top-secret", r.Header.Get("X-Appwrite-Session"))
		assert.Empty(t, r.Header.Get("X-Appwrite-Key"))

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v1/account":
			_, _ = w.Write([]byte(`{"$id":"u1","name":"Siri Tech","email":"siritech@gmail.com","$createdAt":"2024-10-15T06:38:00.000+00:00"}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/account/sessions/current":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	profile, err := client.GetAccount(context.Background(), "top-secret")
	require.NoError(t, err)
	assert.Equal(t, "siritech@gmail.com", profile.Email)

	assert.NoError(t, client.DeleteSession(context.Background(), "top-secret", "current"))
}
