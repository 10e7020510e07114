package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const usersCollection = "users"

// FirestoreStore implements Store on a Firestore "users" collection.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed profile store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) GetProfile(ctx context.Context, uid string) (*Profile, error) {
	doc, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", uid, err)
	}

	var p Profile
	if err := doc.DataTo(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile %s: %w", uid, err)
	}
	return &p, nil
}

// UpsertProfile writes the profile document, preserving CreatedAt from an
// existing record so repeated sign-ins do not reset it.
func (s *FirestoreStore) UpsertProfile(ctx context.Context, p *Profile) error {
	existing, err := s.GetProfile(ctx, p.UID)
	switch {
	case err == nil:
		p.CreatedAt = existing.CreatedAt
	case err == ErrNotFound:
	default:
		return err
	}

	if _, err := s.client.Collection(usersCollection).Doc(p.UID).Set(ctx, p); err != nil {
		return fmt.Errorf("failed to upsert profile %s: %w", p.UID, err)
	}
	return nil
}
