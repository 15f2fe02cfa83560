package rating

import (
	"errors"
	"math"
	"sync"
)

var ErrAlreadyRated = errors.New("user already rated")

type Repository interface {
	// Create stores the rating and recomputes the rated user's stored
	// average. A second rating from the same rater for the same target is
	// ErrAlreadyRated and leaves the average untouched.
	Create(r Rating) (Rating, error)
	ListForUser(userID int) ([]UserRating, error)
}

// InMemoryRepository is used for tests and local scenarios. Usernames stand
// in for the join against users, and averages for the stored seller_rating.
type InMemoryRepository struct {
	mu        sync.RWMutex
	ratings   []Rating
	usernames map[int]string
	averages  map[int]float64
	nextID    int
}

func NewInMemoryRepository(usernames map[int]string) *InMemoryRepository {
	if usernames == nil {
		usernames = map[int]string{}
	}
	return &InMemoryRepository{
		ratings:   make([]Rating, 0),
		usernames: usernames,
		averages:  make(map[int]float64),
		nextID:    1,
	}
}

func (r *InMemoryRepository) Create(rating Rating) (Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.ratings {
		if existing.UserID == rating.UserID && existing.RatedBy == rating.RatedBy {
			return Rating{}, ErrAlreadyRated
		}
	}

	rating.ID = r.nextID
	r.nextID++
	r.ratings = append(r.ratings, rating)

	sum, count := 0, 0
	for _, existing := range r.ratings {
		if existing.UserID == rating.UserID {
			sum += existing.Score
			count++
		}
	}
	r.averages[rating.UserID] = math.Round(float64(sum)/float64(count)*100) / 100

	return rating, nil
}

func (r *InMemoryRepository) ListForUser(userID int) ([]UserRating, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserRating, 0)
	for _, rating := range r.ratings {
		if rating.UserID != userID {
			continue
		}
		out = append(out, UserRating{
			Rating:          rating,
			RatedByUsername: r.usernames[rating.RatedBy],
		})
	}
	return out, nil
}

// AverageFor reports the stored average for a user, if any.
func (r *InMemoryRepository) AverageFor(userID int) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	avg, ok := r.averages[userID]
	return avg, ok
}
