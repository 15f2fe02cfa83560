package cart

import (
	"database/sql"

	"github.com/pimchw/thrift-market-backend/internal/product"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	listCartQuery = `
		SELECT c.cart_id, c.quantity, p.product_id, p.name, p.description, p.price, p.original_price, p.size, p.condition, p.brand, p.category, p.gender, p.age_group, p.image_url, p.status, p.seller_id, p.created_at
		FROM cart c
		JOIN products p ON c.product_id = p.product_id
		WHERE c.user_id = $1
	`
	// single statement so concurrent adds for the same (user, product) pair
	// serialize inside the store
	upsertCartQuery = `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
		RETURNING cart_id, user_id, product_id, quantity
	`
	updateQuantityQuery = `
		UPDATE cart
		SET quantity = $1
		WHERE cart_id = $2 AND user_id = $3
		RETURNING cart_id, user_id, product_id, quantity
	`
	removeEntryQuery = `DELETE FROM cart WHERE cart_id = $1 AND user_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Item, error) {
	rows, err := r.db.Query(listCartQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *PostgresRepository) AddOrIncrement(userID, productID, qty int) (Entry, error) {
	return scanEntry(r.db.QueryRow(upsertCartQuery, userID, productID, qty))
}

func (r *PostgresRepository) UpdateQuantity(cartID, userID, qty int) (Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(updateQuantityQuery, qty, cartID, userID))
	if err == sql.ErrNoRows {
		return Entry{}, ErrNotFound
	}
	return entry, err
}

func (r *PostgresRepository) Remove(cartID, userID int) error {
	_, err := r.db.Exec(removeEntryQuery, cartID, userID)
	return err
}

func scanEntry(row *sql.Row) (Entry, error) {
	entry := Entry{}
	if err := row.Scan(&entry.CartID, &entry.UserID, &entry.ProductID, &entry.Quantity); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func scanItem(rows *sql.Rows) (Item, error) {
	item := Item{}
	p := product.Product{}
	var description sql.NullString
	var originalPrice sql.NullFloat64
	var size, condition, brand, category, gender, ageGroup, imageURL sql.NullString

	if err := rows.Scan(
		&item.CartID,
		&item.Quantity,
		&p.ID,
		&p.Name,
		&description,
		&p.Price,
		&originalPrice,
		&size,
		&condition,
		&brand,
		&category,
		&gender,
		&ageGroup,
		&imageURL,
		&p.Status,
		&p.SellerID,
		&p.CreatedAt,
	); err != nil {
		return Item{}, err
	}

	p.Description = description.String
	if originalPrice.Valid {
		p.OriginalPrice = &originalPrice.Float64
	}
	p.Size = size.String
	p.Condition = condition.String
	p.Brand = brand.String
	p.Category = category.String
	p.Gender = gender.String
	p.AgeGroup = ageGroup.String
	p.ImageURL = imageURL.String

	item.Product = p
	return item, nil
}
