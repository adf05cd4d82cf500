package models

// Quiz is the persisted artifact produced by one generation request. The id
// is generated server-side and TotalQuestions is fixed at creation time;
// quizzes are never updated or deleted afterwards.
type Quiz struct {
	ID             string     `json:"id" firestore:"id"`
	Title          string     `json:"title" firestore:"title"`
	Questions      []Question `json:"questions" firestore:"questions"`
	CreatedAt      int64      `json:"createdAt" firestore:"createdAt"` // milliseconds since epoch
	TotalQuestions int        `json:"totalQuestions" firestore:"totalQuestions"`
}
