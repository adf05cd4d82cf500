package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"notetaker/models"
)

const resultsCollection = "results"

// Results persists quiz results in Firestore. Documents get auto-assigned
// ids and are never updated or deleted.
type Results struct {
	client *firestore.Client
}

func NewResults(client *firestore.Client) *Results {
	return &Results{client: client}
}

func (s *Results) Add(ctx context.Context, result *models.QuizResult) error {
	_, _, err := s.client.Collection(resultsCollection).Add(ctx, result)
	return err
}

func (s *Results) List(ctx context.Context) ([]models.QuizResult, error) {
	iter := s.client.Collection(resultsCollection).Documents(ctx)
	defer iter.Stop()

	results := []models.QuizResult{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var result models.QuizResult
		if err := doc.DataTo(&result); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
