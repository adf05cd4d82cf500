package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"notetaker/models"
)

func TestSaveResult(t *testing.T) {
	env := newTestEnv()

	body := `{"quizId":"q1","score":3,"total":5,"quizTitle":"Math"}`
	req := httptest.NewRequest(http.MethodPost, "/results/q1/results", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Result saved"}`, w.Body.String())

	require.Len(t, env.results.added, 1)
	saved := env.results.added[0]
	require.Equal(t, "q1", saved.QuizID)
	require.Equal(t, 3, saved.Score)
	require.Equal(t, 5, saved.Total)
	require.Equal(t, "Math", saved.QuizTitle)
	require.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, saved.Date)
	require.Greater(t, saved.Timestamp, int64(0))
}

func TestSaveResultStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.results.addErr = errors.New("quota exceeded")

	body := `{"quizId":"q1","score":3,"total":5,"quizTitle":"Math"}`
	req := httptest.NewRequest(http.MethodPost, "/results/q1/results", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Failed to save result: quota exceeded"}`, w.Body.String())
}

func TestGetResults(t *testing.T) {
	env := newTestEnv()
	env.results.results = []models.QuizResult{
		{QuizID: "q1", Score: 3, Total: 5, QuizTitle: "Math", Date: "2024-05-17", Timestamp: 1715938200000},
	}

	req := httptest.NewRequest(http.MethodGet, "/results/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var results []models.QuizResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Equal(t, env.results.results, results)
}

func TestGetResultsStoreFailure(t *testing.T) {
	env := newTestEnv()
	env.results.listErr = errors.New("read denied")

	req := httptest.NewRequest(http.MethodGet, "/results/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"Failed to get results: read denied"}`, w.Body.String())
}

func TestWelcome(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Welcome to Notetaker AI API"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
