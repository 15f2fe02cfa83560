package user

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	getUserByIDQuery = `
		SELECT user_id, google_id, username, email, profile_picture, seller_rating
		FROM users
		WHERE user_id = $1
	`
	getUserByGoogleIDQuery = `
		SELECT user_id, google_id, username, email, profile_picture, seller_rating
		FROM users
		WHERE google_id = $1
	`
	insertUserQuery = `
		INSERT INTO users (google_id, username, email, profile_picture)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`
	updateProfilePictureQuery = `
		UPDATE users
		SET profile_picture = $1
		WHERE user_id = $2
		RETURNING user_id, google_id, username, email, profile_picture, seller_rating
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) GetByGoogleID(googleID string) (User, error) {
	row := r.db.QueryRow(getUserByGoogleIDQuery, googleID)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func (r *PostgresRepository) Create(user User) (User, error) {
	var id int
	err := r.db.QueryRow(
		insertUserQuery,
		user.GoogleID,
		user.Username,
		user.Email,
		user.ProfilePicture,
	).Scan(&id)
	if err != nil {
		return User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *PostgresRepository) UpdateProfilePicture(id int, pictureURL string) (User, error) {
	row := r.db.QueryRow(updateProfilePictureQuery, pictureURL, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return user, nil
}

func scanUser(scanner rowScanner) (User, error) {
	user := User{}
	var username sql.NullString
	var email sql.NullString
	var picture sql.NullString
	var rating sql.NullFloat64

	if err := scanner.Scan(
		&user.ID,
		&user.GoogleID,
		&username,
		&email,
		&picture,
		&rating,
	); err != nil {
		return User{}, err
	}

	if username.Valid {
		user.Username = username.String
	}
	if email.Valid {
		user.Email = email.String
	}
	if picture.Valid {
		user.ProfilePicture = picture.String
	}
	if rating.Valid {
		user.SellerRating = &rating.Float64
	}

	return user, nil
}
