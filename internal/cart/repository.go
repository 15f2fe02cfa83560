package cart

import (
	"errors"
	"sync"

	"github.com/pimchw/thrift-market-backend/internal/product"
)

var ErrNotFound = errors.New("cart entry not found")

type Repository interface {
	ListByUser(userID int) ([]Item, error)
	// AddOrIncrement inserts an entry for (userID, productID) or bumps the
	// existing one by qty, returning the resulting entry either way.
	AddOrIncrement(userID, productID, qty int) (Entry, error)
	UpdateQuantity(cartID, userID, qty int) (Entry, error)
	// Remove deletes by entry id scoped to userID; deleting an entry the
	// user does not hold is a silent no-op.
	Remove(cartID, userID int) error
}

// InMemoryRepository is used for tests and local scenarios. The product map
// stands in for the join the postgres repository performs.
type InMemoryRepository struct {
	mu       sync.RWMutex
	entries  []Entry
	products map[int]product.Product
	nextID   int
}

func NewInMemoryRepository(products []product.Product) *InMemoryRepository {
	byID := make(map[int]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &InMemoryRepository{
		entries:  make([]Entry, 0),
		products: byID,
		nextID:   1,
	}
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]Item, 0)
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		items = append(items, Item{
			CartID:   e.CartID,
			Quantity: e.Quantity,
			Product:  r.products[e.ProductID],
		})
	}
	return items, nil
}

func (r *InMemoryRepository) AddOrIncrement(userID, productID, qty int) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.UserID == userID && e.ProductID == productID {
			e.Quantity += qty
			r.entries[i] = e
			return e, nil
		}
	}

	entry := Entry{
		CartID:    r.nextID,
		UserID:    userID,
		ProductID: productID,
		Quantity:  qty,
	}
	r.nextID++
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *InMemoryRepository) UpdateQuantity(cartID, userID, qty int) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.CartID == cartID && e.UserID == userID {
			e.Quantity = qty
			r.entries[i] = e
			return e, nil
		}
	}

	return Entry{}, ErrNotFound
}

func (r *InMemoryRepository) Remove(cartID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.CartID == cartID && e.UserID == userID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}

	// zero rows affected is not an error
	return nil
}
