package services

import (
	"context"
	"time"

	"notetaker/apperror"
	"notetaker/models"
)

// ResultStore appends and streams quiz results.
type ResultStore interface {
	Add(ctx context.Context, result *models.QuizResult) error
	List(ctx context.Context) ([]models.QuizResult, error)
}

type SaveResultRequest struct {
	QuizID    string `json:"quizId" binding:"required"`
	Score     int    `json:"score"`
	Total     int    `json:"total"`
	QuizTitle string `json:"quizTitle" binding:"required"`
}

type ResultService struct {
	results ResultStore
	now     func() time.Time
}

func NewResultService(results ResultStore) *ResultService {
	return &ResultService{
		results: results,
		now:     time.Now,
	}
}

// SaveResult stamps the submission with the server's local calendar date and
// a millisecond timestamp, then appends it. Score and total are stored as
// submitted; there is no cross-check against the referenced quiz.
func (s *ResultService) SaveResult(ctx context.Context, req *SaveResultRequest) error {
	now := s.now()
	result := &models.QuizResult{
		QuizID:    req.QuizID,
		Score:     req.Score,
		Total:     req.Total,
		QuizTitle: req.QuizTitle,
		Date:      now.Format("2006-01-02"),
		Timestamp: now.UnixMilli(),
	}

	if err := s.results.Add(ctx, result); err != nil {
		return apperror.Internal("Failed to save result", err)
	}
	return nil
}

func (s *ResultService) ListResults(ctx context.Context) ([]models.QuizResult, error) {
	results, err := s.results.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to get results", err)
	}
	return results, nil
}
