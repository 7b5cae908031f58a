// Package auth wraps the identity provider. Sign-in, token verification and
// user creation are fully delegated to Firebase Auth; this service holds no
// credential or session state of its own.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"

	"insurance-service/internal/models"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name,omitempty"`
	EmailVerified bool   `json:"email_verified"`
	Disabled      bool   `json:"disabled"`
	CreatedAt     int64  `json:"created_at,omitempty"`
	LastLoginAt   int64  `json:"last_login_at,omitempty"`
}

// SignInResult carries the tokens issued by the identity provider.
type SignInResult struct {
	UID          string `json:"uid"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
}

type IdentityService struct {
	client     *fbauth.Client
	webAPIKey  string
	httpClient *http.Client
}

func NewIdentityService(ctx context.Context, app *firebase.App, webAPIKey string) (*IdentityService, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting auth client: %v", err)
	}

	return &IdentityService{
		client:     client,
		webAPIKey:  webAPIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// VerifyToken validates a bearer ID token and returns the principal.
func (s *IdentityService) VerifyToken(ctx context.Context, idToken string) (*Principal, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	principal := &Principal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		principal.EmailVerified = verified
	}
	return principal, nil
}

// GetUserByEmail returns the principal metadata for a registered user.
func (s *IdentityService) GetUserByEmail(ctx context.Context, email string) (*Principal, error) {
	user, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return principalFromUser(user), nil
}

// CreateUser registers a new email/password user with the identity provider.
func (s *IdentityService) CreateUser(ctx context.Context, email, password, displayName string) (*Principal, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	user, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, fmt.Errorf("email %s already registered: %w", email, models.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return principalFromUser(user), nil
}

// SignIn exchanges email/password for tokens via the Identity Toolkit REST
// API; the admin SDK has no password sign-in.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*SignInResult, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, s.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("sign-in rejected: %s: %w", apiErr.Error.Message, models.ErrValidation)
		}
		return nil, fmt.Errorf("sign-in failed with status %d", resp.StatusCode)
	}

	var result struct {
		LocalID      string `json:"localId"`
		IDToken      string `json:"idToken"`
		RefreshToken string `json:"refreshToken"`
		ExpiresIn    string `json:"expiresIn"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	return &SignInResult{
		UID:          result.LocalID,
		AccessToken:  result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}, nil
}

func principalFromUser(user *fbauth.UserRecord) *Principal {
	principal := &Principal{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		Disabled:      user.Disabled,
	}
	if user.UserMetadata != nil {
		principal.CreatedAt = user.UserMetadata.CreationTimestamp
		principal.LastLoginAt = user.UserMetadata.LastLogInTimestamp
	}
	return principal
}
