package handlers_test

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"

	"notetaker/gemini"
	"notetaker/handlers"
	"notetaker/identity"
	"notetaker/models"
	"notetaker/routes"
	"notetaker/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	claims *identity.Claims
	err    error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*identity.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type fakeUserStore struct {
	upserted []*models.User
	err      error
}

func (f *fakeUserStore) Upsert(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = append(f.upserted, user)
	return nil
}

type fakeQuizStore struct {
	saved   []*models.Quiz
	quizzes []models.Quiz
	saveErr error
	listErr error
}

func (f *fakeQuizStore) Save(_ context.Context, quiz *models.Quiz) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, quiz)
	return nil
}

func (f *fakeQuizStore) List(_ context.Context) ([]models.Quiz, error) {
	return f.quizzes, f.listErr
}

type fakeUploader struct {
	calls       int
	object      string
	contentType string
	uri         string
	err         error
}

func (f *fakeUploader) Upload(_ context.Context, r io.Reader, object, contentType string) (string, error) {
	f.calls++
	f.object = object
	f.contentType = contentType
	if f.err != nil {
		return "", f.err
	}
	io.Copy(io.Discard, r)
	return f.uri, nil
}

type fakeGenerator struct {
	calls int
	parts []gemini.Part
	out   string
	err   error
}

func (f *fakeGenerator) Generate(_ context.Context, parts []gemini.Part) (string, error) {
	f.calls++
	f.parts = parts
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

type fakeResultStore struct {
	added   []*models.QuizResult
	results []models.QuizResult
	addErr  error
	listErr error
}

func (f *fakeResultStore) Add(_ context.Context, result *models.QuizResult) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, result)
	return nil
}

func (f *fakeResultStore) List(_ context.Context) ([]models.QuizResult, error) {
	return f.results, f.listErr
}

// testEnv wires the full router over fake external collaborators.
type testEnv struct {
	router    *gin.Engine
	verifier  *fakeVerifier
	users     *fakeUserStore
	quizzes   *fakeQuizStore
	uploader  *fakeUploader
	generator *fakeGenerator
	results   *fakeResultStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		verifier:  &fakeVerifier{},
		users:     &fakeUserStore{},
		quizzes:   &fakeQuizStore{},
		uploader:  &fakeUploader{},
		generator: &fakeGenerator{},
		results:   &fakeResultStore{},
	}

	authHandler := handlers.NewAuthHandler(services.NewAuthService(env.verifier, env.users))
	quizHandler := handlers.NewQuizHandler(services.NewQuizService(env.quizzes, env.uploader, env.generator))
	resultHandler := handlers.NewResultHandler(services.NewResultService(env.results))

	env.router = gin.New()
	routes.SetupRoutes(env.router, authHandler, quizHandler, resultHandler)
	return env
}
