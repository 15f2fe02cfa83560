package cart

import "github.com/pimchw/thrift-market-backend/internal/product"

// Entry pairs a user and a product with a quantity of at least 1. A zero
// quantity is a deletion, never a stored state.
type Entry struct {
	CartID    int `json:"cart_id"`
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Item is a cart entry joined with the full product it points at, the shape
// the cart view renders from.
type Item struct {
	CartID   int `json:"cart_id"`
	Quantity int `json:"quantity"`
	product.Product
}
