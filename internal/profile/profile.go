// Package profile stores the remote account profile synced on sign-in.
// Only identity metadata lives here; financial figures never leave the
// user's device.
package profile

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no profile exists for a uid.
var ErrNotFound = errors.New("profile: not found")

// Profile is the remote record keyed by Firebase uid.
type Profile struct {
	UID         string         `json:"uid" firestore:"uid"`
	Email       string         `json:"email" firestore:"email"`
	DisplayName string         `json:"displayName" firestore:"displayName"`
	Provider    string         `json:"provider" firestore:"provider"`
	Metadata    map[string]any `json:"metadata" firestore:"metadata"`
	LastSeen    time.Time      `json:"lastSeen" firestore:"lastSeen"`
	CreatedAt   time.Time      `json:"createdAt" firestore:"createdAt"`
}

// Store persists profiles keyed by uid.
//
//go:generate mockgen -source=profile.go -destination=store_mock.go -package=profile
type Store interface {
	GetProfile(ctx context.Context, uid string) (*Profile, error)
	UpsertProfile(ctx context.Context, p *Profile) error
}
