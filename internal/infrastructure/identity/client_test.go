package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	return NewClient(nil, endpoint, func() string { return "test-key" })
}

func TestSignInWithPasswordSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "v@tienda.com", req["email"])
		assert.Equal(t, true, req["returnSecureToken"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"localId": "uid-123",
			"email":   "v@tienda.com",
			"idToken": "tok-abc",
		})
	}))
	defer srv.Close()

	signed, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "v@tienda.com", "secreta1")
	require.NoError(t, err)
	assert.Equal(t, "uid-123", signed.UID)
	assert.Equal(t, "v@tienda.com", signed.Email)
	assert.Equal(t, "tok-abc", signed.IDToken)
}

func TestSignInWithPasswordProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": CodeEmailNotFound},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "v@tienda.com", "secreta1")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, CodeEmailNotFound, perr.Code)
}

func TestSignInWithPasswordUnknownErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "v@tienda.com", "secreta1")
	var perr *ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "UNKNOWN_ERROR", perr.Code)
}

func TestSignInWithPasswordTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	_, err := newTestClient(srv.URL).SignInWithPassword(context.Background(), "v@tienda.com", "secreta1")
	assert.ErrorIs(t, err, ErrUnreachable)
}
