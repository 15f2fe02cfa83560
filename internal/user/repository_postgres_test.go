package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func userColumns() []string {
	return []string{"user_id", "google_id", "username", "email", "profile_picture", "seller_rating"}
}

func TestGetByGoogleID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "g-7", "Bea", "bea@example.com", "https://pics/bea.png", 4.5)
	mock.ExpectQuery("WHERE google_id").WithArgs("g-7").WillReturnRows(rows)

	u, err := repo.GetByGoogleID("g-7")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.ID != 7 || u.Username != "Bea" {
		t.Fatalf("unexpected user %+v", u)
	}
	if u.SellerRating == nil || *u.SellerRating != 4.5 {
		t.Fatalf("expected seller rating 4.5, got %v", u.SellerRating)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetByGoogleID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("WHERE google_id").WithArgs("missing").WillReturnRows(sqlmock.NewRows(userColumns()))

	if _, err := repo.GetByGoogleID("missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_ReturnsGeneratedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("g-9", "Cara", "cara@example.com", "https://pics/cara.png").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(9))

	created, err := repo.Create(User{
		GoogleID:       "g-9",
		Username:       "Cara",
		Email:          "cara@example.com",
		ProfilePicture: "https://pics/cara.png",
	})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("expected generated id 9, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateProfilePicture(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(3, "g-3", "Dee", "dee@example.com", "https://pics/updated.png", nil)
	mock.ExpectQuery("UPDATE users").
		WithArgs("https://pics/updated.png", 3).
		WillReturnRows(rows)

	u, err := repo.UpdateProfilePicture(3, "https://pics/updated.png")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.ProfilePicture != "https://pics/updated.png" {
		t.Fatalf("unexpected picture %q", u.ProfilePicture)
	}
	if u.SellerRating != nil {
		t.Fatalf("expected nil seller rating, got %v", *u.SellerRating)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
