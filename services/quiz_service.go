package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"notetaker/apperror"
	"notetaker/gemini"
	"notetaker/models"
)

// quizPrompt is the fixed instruction appended after the user's notes.
const quizPrompt = `Act as a strict Teaching Assistant. Analyze the provided notes (document or text) deeply.
Create a challenging multiple-choice quiz with 5 to 10 questions to test the student's understanding of the material.
Focus on key concepts, definitions, and logic found specifically in the notes.

Return a JSON object with a 'title' for the quiz (based on the content topic) and an array of 'questions'.
Each question must have:
- 'question': The question text.
- 'options': An array of 4 possible answers.
- 'correctAnswerIndex': The index (0-3) of the correct option.
- 'explanation': A brief explanation of why the answer is correct, citing the notes if possible.`

// QuizStore persists and streams quiz records.
type QuizStore interface {
	Save(ctx context.Context, quiz *models.Quiz) error
	List(ctx context.Context) ([]models.Quiz, error)
}

// FileUploader stores a byte stream and returns a durable URI for it.
type FileUploader interface {
	Upload(ctx context.Context, r io.Reader, object, contentType string) (string, error)
}

// QuizGenerator invokes the generative model with an ordered part sequence
// and returns its text completion.
type QuizGenerator interface {
	Generate(ctx context.Context, parts []gemini.Part) (string, error)
}

type QuizService struct {
	quizzes   QuizStore
	uploader  FileUploader
	generator QuizGenerator
	now       func() time.Time
}

func NewQuizService(quizzes QuizStore, uploader FileUploader, generator QuizGenerator) *QuizService {
	return &QuizService{
		quizzes:   quizzes,
		uploader:  uploader,
		generator: generator,
		now:       time.Now,
	}
}

// GenerateQuizInput carries the user's notes. File may be nil; text may be
// empty; at least one must be present. Both at once is allowed.
type GenerateQuizInput struct {
	Text        string
	File        io.Reader
	Filename    string
	ContentType string
}

// GenerateQuiz uploads the file (if any), asks the model for a quiz over the
// notes, and persists the parsed result stamped with a fresh id, creation
// timestamp and question count. Any upload, model, parse or store failure is
// terminal for the request; nothing is retried.
func (s *QuizService) GenerateQuiz(ctx context.Context, in *GenerateQuizInput) (*models.Quiz, error) {
	if in.File == nil && in.Text == "" {
		return nil, apperror.BadRequest("Either file or text must be provided")
	}

	var parts []gemini.Part
	if in.Text != "" {
		parts = append(parts, gemini.Part{Text: in.Text})
	}
	if in.File != nil {
		object := fmt.Sprintf("uploads/%s_%s", uuid.NewString(), in.Filename)
		uri, err := s.uploader.Upload(ctx, in.File, object, in.ContentType)
		if err != nil {
			return nil, apperror.Internal("Failed to generate quiz", err)
		}
		parts = append(parts, gemini.Part{FileURI: uri, MIMEType: in.ContentType})
	}
	parts = append(parts, gemini.Part{Text: quizPrompt})

	raw, err := s.generator.Generate(ctx, parts)
	if err != nil {
		return nil, apperror.Internal("Failed to generate quiz", err)
	}

	var quiz models.Quiz
	if err := json.Unmarshal([]byte(raw), &quiz); err != nil {
		return nil, apperror.Internal("Failed to generate quiz", err)
	}

	quiz.ID = uuid.NewString()
	quiz.CreatedAt = s.now().UnixMilli()
	quiz.TotalQuestions = len(quiz.Questions)

	if err := s.quizzes.Save(ctx, &quiz); err != nil {
		return nil, apperror.Internal("Failed to generate quiz", err)
	}

	return &quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	quizzes, err := s.quizzes.List(ctx)
	if err != nil {
		return nil, apperror.Internal("Failed to get quizzes", err)
	}
	return quizzes, nil
}
