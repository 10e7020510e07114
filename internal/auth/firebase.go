// Package auth verifies Firebase ID tokens for the account-sync endpoint.
// The ledger core never depends on this: identity is a collaborator
// capability, not something the local data path needs.
package auth

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// UserClaims is the authenticated identity extracted from an ID token.
type UserClaims struct {
	UID         string
	Email       string
	DisplayName string
	Picture     string
	Verified    bool
}

// Verifier turns a bearer token into user claims. FirebaseAuth is the
// production implementation; StaticVerifier serves local development.
type Verifier interface {
	VerifyToken(ctx context.Context, idToken string) (*UserClaims, error)
}

// FirebaseAuth verifies tokens against a Firebase project.
type FirebaseAuth struct {
	client *auth.Client
}

// NewFirebaseAuth initializes the Firebase app. On Cloud Run default
// credentials apply; locally a service account key file is picked up from
// the environment.
func NewFirebaseAuth(ctx context.Context) (*FirebaseAuth, error) {
	var opts []option.ClientOption
	if creds := serviceAccountPath(); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth client: %w", err)
	}
	return &FirebaseAuth{client: client}, nil
}

// VerifyToken verifies a Firebase ID token and extracts the user claims.
func (f *FirebaseAuth) VerifyToken(ctx context.Context, idToken string) (*UserClaims, error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	verified, _ := token.Claims["email_verified"].(bool)
	claims := &UserClaims{
		UID:      token.UID,
		Verified: verified,
	}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.DisplayName = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}

// StaticVerifier accepts any token and returns fixed claims. Local
// development only, behind the SKIP_AUTH switch.
type StaticVerifier struct {
	Claims UserClaims
}

func (s *StaticVerifier) VerifyToken(context.Context, string) (*UserClaims, error) {
	c := s.Claims
	if c.UID == "" {
		c = UserClaims{
			UID:         "local-dev-user",
			Email:       "dev@localhost",
			DisplayName: "Local Dev User",
			Verified:    true,
		}
	}
	return &c, nil
}

func serviceAccountPath() string {
	for _, envVar := range []string{"GOOGLE_APPLICATION_CREDENTIALS", "FIREBASE_SERVICE_ACCOUNT_KEY"} {
		if path := os.Getenv(envVar); path != "" {
			return path
		}
	}
	return ""
}
