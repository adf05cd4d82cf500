package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"notetaker/models"
)

const quizzesCollection = "quizzes"

// Quizzes persists quiz records in Firestore, keyed by the generated quiz id.
type Quizzes struct {
	client *firestore.Client
}

func NewQuizzes(client *firestore.Client) *Quizzes {
	return &Quizzes{client: client}
}

func (s *Quizzes) Save(ctx context.Context, quiz *models.Quiz) error {
	_, err := s.client.Collection(quizzesCollection).Doc(quiz.ID).Set(ctx, quiz)
	return err
}

// List streams every quiz document in store iteration order. There is no
// pagination or filtering.
func (s *Quizzes) List(ctx context.Context) ([]models.Quiz, error) {
	iter := s.client.Collection(quizzesCollection).Documents(ctx)
	defer iter.Stop()

	quizzes := []models.Quiz{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var quiz models.Quiz
		if err := doc.DataTo(&quiz); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, nil
}
