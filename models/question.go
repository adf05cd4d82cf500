package models

// Question is a single multiple-choice question. The model is instructed to
// return exactly 4 options with CorrectAnswerIndex in 0-3.
type Question struct {
	Question           string   `json:"question" firestore:"question"`
	Options            []string `json:"options" firestore:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" firestore:"correctAnswerIndex"`
	Explanation        string   `json:"explanation" firestore:"explanation"`
}
