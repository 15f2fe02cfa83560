package rating

// Rating is a 1-5 score plus comment left by one user about another. At most
// one rating exists per (rated user, rater) pair.
type Rating struct {
	ID      int    `json:"rating_id"`
	UserID  int    `json:"user_id"`
	RatedBy int    `json:"rated_by"`
	Score   int    `json:"rating"`
	Comment string `json:"comment"`
}

// UserRating is a rating joined with the rater's display name, the shape the
// public ratings list returns.
type UserRating struct {
	Rating
	RatedByUsername string `json:"rated_by_username"`
}
