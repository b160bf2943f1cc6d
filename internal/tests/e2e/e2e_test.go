package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/config"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/DanielPopoola/horizon-banking/internal/server"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type E2ETestSuite struct {
	suite.Suite
	appwrite *fakeAppwrite
	dwolla   *fakeDwolla
	service  *httptest.Server
}

func TestE2ESuite(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

func (suite *E2ETestSuite) SetupSuite() {
	t := suite.T()

	suite.appwrite = newFakeAppwrite(t)
	suite.dwolla = newFakeDwolla(t)
	plaid := newFakePlaid(t)

	t.Setenv("HORIZON_APPWRITE__ENDPOINT", suite.appwrite.server.URL+"/v1")
	t.Setenv("HORIZON_APPWRITE__PROJECT", "horizon")
	t.Setenv("HORIZON_APPWRITE__KEY", "admin-key")
	t.Setenv("HORIZON_DWOLLA__ENV", "sandbox")
	t.Setenv("HORIZON_DWOLLA__KEY", "dwolla-key")
	t.Setenv("HORIZON_DWOLLA__SECRET", "dwolla-secret")
	t.Setenv("HORIZON_DWOLLA__BASE_URL", suite.dwolla.server.URL)
	t.Setenv("HORIZON_PLAID__CLIENT_ID", "plaid-client")
	t.Setenv("HORIZON_PLAID__SECRET", "plaid-secret")
	t.Setenv("HORIZON_PLAID__BASE_URL", plaid.URL)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	handler, err := server.NewHandler(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	suite.service = httptest.NewServer(handler)
}

func (suite *E2ETestSuite) TearDownSuite() {
	suite.service.Close()
}

func (suite *E2ETestSuite) SetupTest() {
	suite.appwrite.failDelete.Store(false)
}

func (suite *E2ETestSuite) signUp(client *TestClient) string {
	t := suite.T()
	email := "siri+" + uuid.NewString()[:8] + "@gmail.com"

	resp := client.Do(t, http.MethodPost, "/auth/sign-up", map[string]string{
		"firstName": "Siri",
		"lastName":  "Tech",
		"email":     email,
		"password":  "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	require.True(t, client.SignedIn())
	return email
}

func (suite *E2ETestSuite) Test_SignUpThenMe() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)

	email := suite.signUp(client)

	resp := client.Do(t, http.MethodGet, "/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user domain.UserProfile
	resp.decode(t, &user)
	assert.Equal(t, email, user.Email)
	assert.Equal(t, "Siri Tech", user.Name)
}

func (suite *E2ETestSuite) Test_SignInAgainAfterLogout() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	email := suite.signUp(client)

	resp := client.Do(t, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, client.SignedIn())

	resp = client.Do(t, http.MethodPost, "/auth/sign-in", map[string]string{"email": email, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Body.Error.Code)
	assert.False(t, client.SignedIn())

	resp = client.Do(t, http.MethodPost, "/auth/sign-in", map[string]string{"email": email, "password": "password123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, client.SignedIn())
}

func (suite *E2ETestSuite) Test_DuplicateSignUp() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	email := suite.signUp(client)

	resp := NewTestClient(suite.service.URL).Do(t, http.MethodPost, "/auth/sign-up", map[string]string{
		"firstName": "Siri", "lastName": "Tech", "email": email, "password": "password123",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_EXISTS", resp.Body.Error.Code)
}

func (suite *E2ETestSuite) Test_MeWithoutSession() {
	resp := NewTestClient(suite.service.URL).Do(suite.T(), http.MethodGet, "/auth/me", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(suite.T(), "UNAUTHENTICATED", resp.Body.Error.Code)
}

func (suite *E2ETestSuite) Test_LogoutClearsCookieWhenVendorFails() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	suite.signUp(client)
	suite.appwrite.failDelete.Store(true)

	resp := client.Do(t, http.MethodPost, "/auth/logout", nil)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, client.SignedIn())
	assert.Equal(t, http.StatusUnauthorized, client.Do(t, http.MethodGet, "/auth/me", nil).StatusCode)
}

func (suite *E2ETestSuite) Test_CustomerInputIsNormalized() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	suite.signUp(client)

	resp := client.Do(t, http.MethodPost, "/customers", map[string]string{
		"firstName":   "Siri",
		"lastName":    "Tech",
		"email":       "siritech@gmail.com",
		"type":        "personal",
		"address1":    "1 Infinite Loop",
		"city":        "Cupertino",
		"state":       "CA",
		"postalCode":  "95014 1234",
		"dateOfBirth": "1990-01-01",
		"ssn":         "123-45-6789",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))

	suite.dwolla.mu.Lock()
	last := suite.dwolla.customers[len(suite.dwolla.customers)-1]
	suite.dwolla.mu.Unlock()
	assert.Equal(t, "123456789", last["ssn"])
	assert.Equal(t, "950141234", last["postalCode"])
}

func (suite *E2ETestSuite) Test_InvalidSSNNeverReachesVendor() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	suite.signUp(client)
	before := suite.dwolla.customerCalls.Load()

	resp := client.Do(t, http.MethodPost, "/customers", map[string]string{
		"firstName": "Siri",
		"lastName":  "Tech",
		"email":     "siritech@gmail.com",
		"ssn":       "12-345",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "SSN must be 9 digits", resp.Body.Error.Message)
	assert.Equal(t, before, suite.dwolla.customerCalls.Load())
}

func (suite *E2ETestSuite) Test_LinkBankTransferAndDashboard() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	suite.signUp(client)

	resp := client.Do(t, http.MethodPost, "/customers", map[string]string{
		"firstName": "Siri", "lastName": "Tech", "email": "siritech@gmail.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var customer struct {
		Location string `json:"location"`
	}
	resp.decode(t, &customer)

	resp = client.Do(t, http.MethodPost, "/banks/link-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = client.Do(t, http.MethodPost, "/banks/link", map[string]string{
		"publicToken": "public-sandbox-1",
		"customerUrl": customer.Location,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))
	var linked domain.LinkedBank
	resp.decode(t, &linked)
	assert.Equal(t, "access-sandbox-1", linked.AccessToken)
	assert.False(t, linked.FundingSource.IsZero())

	suite.dwolla.mu.Lock()
	authHref := suite.dwolla.fundingLinks[len(suite.dwolla.fundingLinks)-1]
	suite.dwolla.mu.Unlock()
	assert.Contains(t, authHref, "/on-demand-authorizations/oda-1")

	resp = client.Do(t, http.MethodPost, "/transfers", map[string]string{
		"sourceFundingSourceUrl":      linked.FundingSource.String(),
		"destinationFundingSourceUrl": suite.dwolla.server.URL + "/funding-sources/other",
		"amount":                      "12.5",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Raw))

	suite.dwolla.mu.Lock()
	transfer := suite.dwolla.transfers[len(suite.dwolla.transfers)-1]
	suite.dwolla.mu.Unlock()
	assert.Equal(t, map[string]any{"currency": "USD", "value": "12.50"}, transfer["amount"])

	resp = client.Do(t, http.MethodPost, "/dashboard", map[string][]string{"accessTokens": {linked.AccessToken}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dashboard struct {
		Greeting            string `json:"greeting"`
		TotalBanks          int    `json:"totalBanks"`
		TotalCurrentBalance string `json:"totalCurrentBalance"`
	}
	resp.decode(t, &dashboard)
	assert.Equal(t, "Siri", dashboard.Greeting)
	assert.Equal(t, 2, dashboard.TotalBanks)
	assert.Equal(t, "641", dashboard.TotalCurrentBalance)
}

func (suite *E2ETestSuite) Test_RequestValidation() {
	t := suite.T()

	resp := NewTestClient(suite.service.URL).Do(t, http.MethodPost, "/auth/sign-in", map[string]string{"email": "siritech@gmail.com"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", resp.Body.Error.Code)
}

func (suite *E2ETestSuite) Test_AnonymousMalformedTransferIsUnauthenticated() {
	t := suite.T()

	resp := NewTestClient(suite.service.URL).Do(t, http.MethodPost, "/transfers", map[string]string{"amount": "1"})

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", resp.Body.Error.Code)
}

func (suite *E2ETestSuite) Test_MetricsAndDocs() {
	t := suite.T()
	client := NewTestClient(suite.service.URL)
	suite.signUp(client)

	resp := client.Do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(resp.Raw), `vendor="appwrite"`)

	resp = client.Do(t, http.MethodGet, "/openapi.yaml", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
