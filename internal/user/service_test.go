package user

import "testing"

func TestFindOrCreate_NewUser(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	created, err := service.FindOrCreate("g-123", "Alice", "alice@example.com", "https://pics/alice.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a generated id, got %+v", created)
	}
	if created.SellerRating != nil {
		t.Fatalf("expected nil seller rating for a new user, got %v", *created.SellerRating)
	}
}

func TestFindOrCreate_Idempotent(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	first, err := service.FindOrCreate("g-123", "Alice", "alice@example.com", "https://pics/old.png")
	if err != nil {
		t.Fatalf("first exchange failed: %v", err)
	}

	second, err := service.FindOrCreate("g-123", "Alice", "alice@example.com", "https://pics/new.png")
	if err != nil {
		t.Fatalf("second exchange failed: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("repeat exchange created a second record: %d vs %d", first.ID, second.ID)
	}
	if second.ProfilePicture != "https://pics/new.png" {
		t.Fatalf("expected refreshed profile picture, got %q", second.ProfilePicture)
	}

	// the repeat must not leave a stale duplicate behind
	stored, err := repo.GetByGoogleID("g-123")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if stored.ID != first.ID || stored.ProfilePicture != "https://pics/new.png" {
		t.Fatalf("unexpected stored user %+v", stored)
	}
}

func TestFindOrCreate_DistinctGoogleIDs(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	service := NewService(repo)

	a, _ := service.FindOrCreate("g-1", "A", "a@example.com", "")
	b, _ := service.FindOrCreate("g-2", "B", "b@example.com", "")

	if a.ID == b.ID {
		t.Fatalf("distinct google ids mapped to the same account: %d", a.ID)
	}
}
