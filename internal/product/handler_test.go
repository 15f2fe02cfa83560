package product

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeAppWithHandler(h *Handler) *fiber.App {
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				claims := jwt.MapClaims{"user_id": id}
				c.Locals("user", &jwt.Token{Claims: claims})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func newTestApp(seed []Product) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(seed)
	return makeAppWithHandler(NewHandler(NewService(repo))), repo
}

func TestSellThenMyListings_ScopedToSeller(t *testing.T) {
	app, _ := newTestApp(nil)

	body := `{"name":"Jacket","price":500,"size":"M","condition":"Good","brand":"Acme","category":"outerwear","gender":"unisex","age_group":"adult"}`
	req := httptest.NewRequest("POST", "/api/products/sell", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Product
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode created product: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected a generated id, got %+v", created)
	}
	if created.SellerID != 1 || created.Status != StatusAvailable {
		t.Fatalf("expected seller 1 and status available, got %+v", created)
	}

	// seller sees it
	req2 := httptest.NewRequest("GET", "/api/products/my-listings", nil)
	req2.Header.Set("X-User-ID", "1")
	res2, _ := app.Test(req2)
	var mine []Product
	json.NewDecoder(res2.Body).Decode(&mine)
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("expected the new listing for seller 1, got %+v", mine)
	}

	// another user does not
	req3 := httptest.NewRequest("GET", "/api/products/my-listings", nil)
	req3.Header.Set("X-User-ID", "2")
	res3, _ := app.Test(req3)
	var others []Product
	json.NewDecoder(res3.Body).Decode(&others)
	if len(others) != 0 {
		t.Fatalf("expected no listings for seller 2, got %+v", others)
	}
}

func TestSell_RequiresAuth(t *testing.T) {
	app, _ := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/products/sell", strings.NewReader(`{"name":"Hat","price":50}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", res.StatusCode)
	}
}

func TestSell_ValidatesPayload(t *testing.T) {
	app, _ := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/products/sell", strings.NewReader(`{"price":-10}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing name and negative price, got %d", res.StatusCode)
	}
}

func TestGetProducts_NewestFirst(t *testing.T) {
	now := time.Now().UTC()
	app, _ := newTestApp([]Product{
		{ID: 1, Name: "Old coat", Status: StatusAvailable, SellerID: 1, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Name: "New coat", Status: StatusAvailable, SellerID: 1, CreatedAt: now},
		{ID: 3, Name: "Mid coat", Status: StatusAvailable, SellerID: 2, CreatedAt: now.Add(-time.Hour)},
	})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var products []Product
	json.NewDecoder(res.Body).Decode(&products)
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].ID != 2 || products[1].ID != 3 || products[2].ID != 1 {
		t.Fatalf("expected newest-first ordering, got %+v", products)
	}
}

func TestGetProduct_UnknownID(t *testing.T) {
	app, _ := newTestApp(nil)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/products/99", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestUpdateStatus_OwnershipEnforced(t *testing.T) {
	app, repo := newTestApp([]Product{
		{ID: 1, Name: "Coat", Status: StatusAvailable, SellerID: 1, CreatedAt: time.Now().UTC()},
	})

	// non-owner is forbidden
	req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"status":"sold"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "2")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", res.StatusCode)
	}
	if p, _ := repo.GetByID(1); p.Status != StatusAvailable {
		t.Fatalf("product must stay unchanged after forbidden update, got %q", p.Status)
	}

	// missing product is 404, not 403
	req2 := httptest.NewRequest("PUT", "/api/products/9", strings.NewReader(`{"status":"sold"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "2")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res2.StatusCode)
	}

	// owner succeeds
	req3 := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"status":"sold"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "1")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d", res3.StatusCode)
	}
	var updated Product
	json.NewDecoder(res3.Body).Decode(&updated)
	if updated.Status != StatusSold {
		t.Fatalf("expected status sold, got %q", updated.Status)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	app, _ := newTestApp([]Product{
		{ID: 1, Status: StatusAvailable, SellerID: 1, CreatedAt: time.Now().UTC()},
	})

	req := httptest.NewRequest("PUT", "/api/products/1", strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", res.StatusCode)
	}
}

func TestDelete_OwnershipEnforced(t *testing.T) {
	app, repo := newTestApp([]Product{
		{ID: 1, Status: StatusAvailable, SellerID: 1, CreatedAt: time.Now().UTC()},
	})

	req := httptest.NewRequest("DELETE", "/api/products/1", nil)
	req.Header.Set("X-User-ID", "2")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner delete, got %d", res.StatusCode)
	}
	if _, err := repo.GetByID(1); err != nil {
		t.Fatalf("product must survive a forbidden delete: %v", err)
	}

	req2 := httptest.NewRequest("DELETE", "/api/products/1", nil)
	req2.Header.Set("X-User-ID", "1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner delete, got %d", res2.StatusCode)
	}
	if _, err := repo.GetByID(1); err != ErrNotFound {
		t.Fatalf("expected the product to be gone, got %v", err)
	}
}
