package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	productColumns = `product_id, name, description, price, original_price, size, condition, brand, category, gender, age_group, image_url, status, seller_id, created_at`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
	`
	listBySellerQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE seller_id = $1
		ORDER BY created_at DESC
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, description, price, original_price, size, condition, brand, category, gender, age_group, image_url, status, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING product_id, created_at
	`
	updateStatusQuery = `
		UPDATE products
		SET status = $1
		WHERE product_id = $2
		RETURNING ` + productColumns + `
	`
	deleteCartEntriesQuery = `DELETE FROM cart WHERE product_id = $1`
	deleteProductQuery     = `DELETE FROM products WHERE product_id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.queryProducts(listProductsQuery)
}

func (r *PostgresRepository) ListBySeller(sellerID int) ([]Product, error) {
	return r.queryProducts(listBySellerQuery, sellerID)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}

	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(
		insertProductQuery,
		p.Name,
		p.Description,
		p.Price,
		p.OriginalPrice,
		p.Size,
		p.Condition,
		p.Brand,
		p.Category,
		p.Gender,
		p.AgeGroup,
		p.ImageURL,
		p.Status,
		p.SellerID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return Product{}, err
	}

	return p, nil
}

func (r *PostgresRepository) UpdateStatus(id int, status string) (Product, error) {
	row := r.db.QueryRow(updateStatusQuery, status, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}

	return p, nil
}

// Delete removes a listing together with any cart entries that still
// reference it, in one transaction.
func (r *PostgresRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteCartEntriesQuery, id); err != nil {
		return err
	}

	result, err := tx.Exec(deleteProductQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var description sql.NullString
	var originalPrice sql.NullFloat64
	var size, condition, brand, category, gender, ageGroup, imageURL sql.NullString

	if err := scanner.Scan(
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
		return Product{}, err
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

	return p, nil
}
