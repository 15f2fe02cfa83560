package rating

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	ratingExistsQuery = `SELECT 1 FROM ratings WHERE user_id = $1 AND rated_by = $2`
	insertRatingQuery = `
		INSERT INTO ratings (user_id, rated_by, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING rating_id
	`
	recomputeAverageQuery = `
		UPDATE users
		SET seller_rating = (
			SELECT ROUND(AVG(rating)::numeric, 2)
			FROM ratings
			WHERE user_id = $1
		)
		WHERE user_id = $1
	`
	listRatingsQuery = `
		SELECT r.rating_id, r.user_id, r.rated_by, r.rating, r.comment, u.username AS rated_by_username
		FROM ratings r
		JOIN users u ON r.rated_by = u.user_id
		WHERE r.user_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the rating and recomputes the target's stored average inside
// one transaction. The unique index on (user_id, rated_by) backs the
// duplicate check against a concurrent second submission.
func (r *PostgresRepository) Create(rating Rating) (Rating, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Rating{}, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(ratingExistsQuery, rating.UserID, rating.RatedBy).Scan(&exists)
	if err == nil {
		return Rating{}, ErrAlreadyRated
	}
	if err != sql.ErrNoRows {
		return Rating{}, err
	}

	if err := tx.QueryRow(
		insertRatingQuery,
		rating.UserID,
		rating.RatedBy,
		rating.Score,
		rating.Comment,
	).Scan(&rating.ID); err != nil {
		return Rating{}, err
	}

	if _, err := tx.Exec(recomputeAverageQuery, rating.UserID); err != nil {
		return Rating{}, err
	}

	if err := tx.Commit(); err != nil {
		return Rating{}, err
	}

	return rating, nil
}

func (r *PostgresRepository) ListForUser(userID int) ([]UserRating, error) {
	rows, err := r.db.Query(listRatingsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make([]UserRating, 0)
	for rows.Next() {
		var ur UserRating
		var comment sql.NullString
		var username sql.NullString
		if err := rows.Scan(&ur.ID, &ur.UserID, &ur.RatedBy, &ur.Score, &comment, &username); err != nil {
			return nil, err
		}
		ur.Comment = comment.String
		ur.RatedByUsername = username.String
		ratings = append(ratings, ur)
	}

	return ratings, rows.Err()
}
