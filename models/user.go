package models

// User is the stored profile for an authenticated account, keyed by the
// identity provider's subject id. Every successful login overwrites the
// record in full; the last login always wins.
type User struct {
	UID       string `json:"uid" firestore:"uid"`
	Username  string `json:"username" firestore:"username"`
	Email     string `json:"email" firestore:"email"`
	AvatarURL string `json:"avatarUrl" firestore:"avatarUrl"`
}
