package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"notetaker/models"
)

const usersCollection = "users"

// Users persists user records in Firestore, keyed by uid.
type Users struct {
	client *firestore.Client
}

func NewUsers(client *firestore.Client) *Users {
	return &Users{client: client}
}

// Upsert writes the full record under its uid. An existing document is
// overwritten field by field; there is no partial merge.
func (s *Users) Upsert(ctx context.Context, user *models.User) error {
	_, err := s.client.Collection(usersCollection).Doc(user.UID).Set(ctx, user)
	return err
}
