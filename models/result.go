package models

// QuizResult is an append-only record of one quiz attempt. The document id
// is assigned by the store and not returned to the caller. QuizID is kept
// as submitted and is not checked against stored quizzes.
type QuizResult struct {
	QuizID    string `json:"quizId" firestore:"quizId"`
	Score     int    `json:"score" firestore:"score"`
	Total     int    `json:"total" firestore:"total"`
	QuizTitle string `json:"quizTitle" firestore:"quizTitle"`
	Date      string `json:"date" firestore:"date"` // server-local calendar date, YYYY-MM-DD
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
}
