package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(context.Background())

	require.NoError(t, err)
	for _, path := range []string{"/auth/sign-in", "/auth/sign-up", "/auth/me", "/auth/logout", "/customers", "/funding-sources", "/transfers", "/banks/link-token", "/banks/link", "/dashboard"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Horizon Banking API")
}
