package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
)

type fakeUser struct {
	ID       string `json:"$id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// fakeAppwrite keeps accounts and sessions in memory.
type fakeAppwrite struct {
	server *httptest.Server

	mu         sync.Mutex
	users      map[string]*fakeUser
	sessions   map[string]*fakeUser
	failDelete atomic.Bool
}

func newFakeAppwrite(t *testing.T) *fakeAppwrite {
	f := &fakeAppwrite{
		users:    map[string]*fakeUser{},
		sessions: map[string]*fakeUser{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/account", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserID   string `json:"userId"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		defer f.mu.Unlock()
		if _, exists := f.users[body.Email]; exists {
			writeJSON(w, http.StatusConflict, map[string]any{"message": "A user with the same email already exists.", "code": 409, "type": "user_already_exists"})
			return
		}
		user := &fakeUser{ID: body.UserID, Name: body.Name, Email: body.Email, Password: body.Password}
		f.users[body.Email] = user
		writeJSON(w, http.StatusCreated, user)
	})
	mux.HandleFunc("POST /v1/account/sessions/email", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		defer f.mu.Unlock()
		user, ok := f.users[body.Email]
		if !ok || user.Password != body.Password {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials.", "code": 401, "type": "user_invalid_credentials"})
			return
		}
		secret := uuid.NewString()
		f.sessions[secret] = user
		writeJSON(w, http.StatusCreated, map[string]any{
			"$id":    uuid.NewString(),
			"userId": user.ID,
			"secret": secret,
			"expire": "2030-01-01T00:00:00.000+00:00",
		})
	})
	mux.HandleFunc("GET /v1/account", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		user, ok := f.sessions[r.Header.Get("X-Appwrite-Session")]
		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "User (role: guests) missing scope (account)", "code": 401, "type": "general_unauthorized_scope"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	})
	mux.HandleFunc("DELETE /v1/account/sessions/current", func(w http.ResponseWriter, r *http.Request) {
		if f.failDelete.Load() {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "Service unavailable", "code": 503, "type": "general_server_error"})
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.sessions, r.Header.Get("X-Appwrite-Session"))
		w.WriteHeader(http.StatusNoContent)
	})

	f.server = httptest.NewServer(requireHeader(t, "X-Appwrite-Project", "horizon", mux))
	t.Cleanup(f.server.Close)
	return f
}

// fakeDwolla records what it was sent and answers with Location headers.
type fakeDwolla struct {
	server *httptest.Server

	mu            sync.Mutex
	customers     []map[string]any
	fundingLinks  []string
	transfers     []map[string]any
	customerCalls atomic.Int32
}

func newFakeDwolla(t *testing.T) *fakeDwolla {
	f := &fakeDwolla{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "sandbox-token", "token_type": "bearer", "expires_in": 3600})
	})
	mux.HandleFunc("POST /customers", func(w http.ResponseWriter, r *http.Request) {
		f.customerCalls.Add(1)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.customers = append(f.customers, body)
		f.mu.Unlock()

		w.Header().Set("Location", f.server.URL+"/customers/"+uuid.NewString())
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /on-demand-authorizations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"_links":     map[string]any{"self": map[string]string{"href": f.server.URL + "/on-demand-authorizations/oda-1"}},
			"bodyText":   "I agree that future payments will be processed by the Dwolla payment system.",
			"buttonText": "Agree & Continue",
		})
	})
	mux.HandleFunc("POST /customers/{id}/funding-sources", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Links map[string]struct {
				Href string `json:"href"`
			} `json:"_links"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.fundingLinks = append(f.fundingLinks, body.Links["on-demand-authorization"].Href)
		f.mu.Unlock()

		w.Header().Set("Location", f.server.URL+"/funding-sources/"+uuid.NewString())
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /transfers", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		f.transfers = append(f.transfers, body)
		f.mu.Unlock()

		w.Header().Set("Location", f.server.URL+"/transfers/"+uuid.NewString())
		w.WriteHeader(http.StatusCreated)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func newFakePlaid(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /link/token/create", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"link_token": "link-sandbox-1", "expiration": "2030-01-01T00:00:00Z"})
	})
	mux.HandleFunc("POST /item/public_token/exchange", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "access-sandbox-1", "item_id": "item-1"})
	})
	mux.HandleFunc("POST /accounts/balance/get", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"accounts": []map[string]any{
				{"account_id": "acc-1", "name": "Plaid Checking", "type": "depository", "subtype": "checking", "mask": "0000",
					"balances": map[string]any{"available": 100, "current": 140.5, "iso_currency_code": "USD"}},
				{"account_id": "acc-2", "name": "Plaid Saving", "type": "depository", "subtype": "savings", "mask": "1111",
					"balances": map[string]any{"available": 200, "current": 500.5, "iso_currency_code": "USD"}},
			},
			"item": map[string]any{"item_id": "item-1"},
		})
	})
	mux.HandleFunc("POST /processor/token/create", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"processor_token": "processor-sandbox-1"})
	})

	server := httptest.NewServer(requireHeader(t, "PLAID-CLIENT-ID", "plaid-client", mux))
	t.Cleanup(server.Close)
	return server
}

func requireHeader(t *testing.T, key, want string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get(key); !strings.EqualFold(got, want) {
			t.Errorf("%s header = %q, want %q", key, got, want)
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
