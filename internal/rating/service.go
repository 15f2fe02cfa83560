package rating

import "errors"

var ErrInvalidScore = errors.New("rating must be between 1 and 5")

// Service orchestrates rating submission and lookup.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Submit(targetID, raterID, score int, comment string) (Rating, error) {
	if score < 1 || score > 5 {
		return Rating{}, ErrInvalidScore
	}

	return s.repo.Create(Rating{
		UserID:  targetID,
		RatedBy: raterID,
		Score:   score,
		Comment: comment,
	})
}

func (s *Service) ListForUser(userID int) ([]UserRating, error) {
	return s.repo.ListForUser(userID)
}
