package auth

import (
	"context"
	"strings"

	"github.com/butterflysteps/backend/internal/firebase"
	"github.com/butterflysteps/backend/internal/utils/errors"
)

// Auther is an auth abstraction layer interface
type Auther interface {
	AuthenticateToken(ctx context.Context, idToken string) (string, error)
}

// Client to interact with Firebase Auth
type Client struct{}

//AuthenticateToken Verifies provided ID token and if valid, extracts UID from it.
func (c Client) AuthenticateToken(ctx context.Context, idToken string) (string, error) {
	if idToken == "" {
		return "", &errors.UnauthenticatedError{Msg: "Missing ID token"}
	}

	client := firebase.Auth()
	if client == nil {
		return "", &errors.UnauthenticatedError{Msg: "Authentication is not configured"}
	}

	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", &errors.UnauthenticatedError{Msg: "Invalid ID token"}
	}

	return token.UID, nil
}

//CustomToken Creates a signed custom token for the UID. Used by dev tooling.
func (c Client) CustomToken(ctx context.Context, uid string) (string, error) {
	return firebase.Auth().CustomToken(ctx, uid)
}

// MockClient accepts tokens of form "uid:<uid>" or a bare UID.
type MockClient struct{}

//AuthenticateToken Returns UID encoded in the token.
func (c MockClient) AuthenticateToken(_ context.Context, idToken string) (string, error) {
	uid := strings.TrimPrefix(idToken, "uid:")
	if uid == "" {
		return "", &errors.UnauthenticatedError{Msg: "Missing ID token"}
	}
	return uid, nil
}
