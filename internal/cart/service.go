package cart

import "errors"

// ErrInvalidQuantity rejects non-positive add amounts and negative updates.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Service orchestrates cart operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(userID int) ([]Item, error) {
	return s.repo.ListByUser(userID)
}

// Add merges qty into an existing (user, product) entry or inserts a new one.
// Repeat adds are additive, matching "add one more" cart behaviour.
func (s *Service) Add(userID, productID, qty int) (Entry, error) {
	if qty <= 0 {
		return Entry{}, ErrInvalidQuantity
	}
	return s.repo.AddOrIncrement(userID, productID, qty)
}

// UpdateQuantity overwrites the stored quantity. A quantity of zero removes
// the entry instead; removed reports which path was taken.
func (s *Service) UpdateQuantity(cartID, userID, qty int) (entry Entry, removed bool, err error) {
	if qty < 0 {
		return Entry{}, false, ErrInvalidQuantity
	}
	if qty == 0 {
		return Entry{}, true, s.repo.Remove(cartID, userID)
	}

	entry, err = s.repo.UpdateQuantity(cartID, userID, qty)
	return entry, false, err
}

func (s *Service) Remove(cartID, userID int) error {
	return s.repo.Remove(cartID, userID)
}
