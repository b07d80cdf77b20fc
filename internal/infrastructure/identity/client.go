// Package identity wraps the external identity provider: administrative user
// creation through the Firebase Admin SDK and password sign-in through the
// identitytoolkit REST endpoint.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
)

// Provider error codes surfaced by the sign-in endpoint. Anything outside
// this set is reported through the generic fallback.
const (
	CodeInvalidCredentials = "INVALID_LOGIN_CREDENTIALS"
	CodeEmailNotFound      = "EMAIL_NOT_FOUND"
	CodeUserDisabled       = "USER_DISABLED"
	CodeTooManyAttempts    = "TOO_MANY_ATTEMPTS_TRY_LATER"
)

// ErrUnreachable marks a transport-level failure talking to the provider,
// as opposed to the provider answering with an error code.
var ErrUnreachable = errors.New("identity provider unreachable")

// ProviderError is a non-200 answer from the sign-in endpoint.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return "identity provider error: " + e.Code
}

// SignedIn is the successful result of a password sign-in.
type SignedIn struct {
	UID     string
	Email   string
	IDToken string
}

// Client talks to the identity provider. The sign-in endpoint and HTTP
// client are injectable so tests can point it at a local server.
type Client struct {
	auth     *fbauth.Client
	endpoint string
	apiKey   func() string
	http     *http.Client
}

// NewClient builds a Client around an already-initialized Admin SDK auth
// client. apiKey is called on every sign-in so key rotation needs no restart.
func NewClient(auth *fbauth.Client, endpoint string, apiKey func() string) *Client {
	return &Client{
		auth:     auth,
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     http.DefaultClient,
	}
}

// WithHTTPClient replaces the transport used for REST sign-in. Intended for
// tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// CreateUser registers email/password with the provider and returns the new
// user id.
func (c *Client) CreateUser(ctx context.Context, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	u, err := c.auth.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return u.UID, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword posts credentials to the provider's sign-in endpoint.
// A non-200 answer becomes a *ProviderError carrying the provider code;
// a failure to reach the endpoint at all wraps ErrUnreachable.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*SignedIn, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := c.endpoint + "?key=" + c.apiKey()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var data signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		code := data.Error.Message
		if code == "" {
			code = "UNKNOWN_ERROR"
		}
		return nil, &ProviderError{Code: code}
	}

	return &SignedIn{UID: data.LocalID, Email: data.Email, IDToken: data.IDToken}, nil
}
