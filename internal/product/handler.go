package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pimchw/thrift-market-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/products", h.getProducts)
	// numeric constraint keeps this from shadowing /api/products/my-listings
	app.Get("/api/products/:id<int>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/products/sell", h.sellProduct)
	app.Get("/api/products/my-listings", h.getMyListings)
	app.Put("/api/products/:id<int>", h.updateStatus)
	app.Delete("/api/products/:id<int>", h.deleteProduct)
}

type sellRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Size          string   `json:"size"`
	Condition     string   `json:"condition"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Gender        string   `json:"gender"`
	AgeGroup      string   `json:"age_group"`
	ImageURL      string   `json:"image_url"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func validateSellPayload(p *sellRequest) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.OriginalPrice != nil && *p.OriginalPrice < 0 {
		errs["original_price"] = "original_price must be >= 0"
	}
	return errs
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
	return c.JSON(p)
}

func (h *Handler) sellProduct(c *fiber.Ctx) error {
	payload := new(sellRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateSellPayload(payload); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Create(Product{
		Name:          payload.Name,
		Description:   payload.Description,
		Price:         payload.Price,
		OriginalPrice: payload.OriginalPrice,
		Size:          payload.Size,
		Condition:     payload.Condition,
		Brand:         payload.Brand,
		Category:      payload.Category,
		Gender:        payload.Gender,
		AgeGroup:      payload.AgeGroup,
		ImageURL:      payload.ImageURL,
		SellerID:      sellerID,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getMyListings(c *fiber.Ctx) error {
	sellerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	products, err := h.service.ListBySeller(sellerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
	return c.JSON(products)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !ValidStatus(payload.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "status must be one of available, sold, reserved"})
	}

	callerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	updated, err := h.service.UpdateStatus(id, callerID, payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "not authorized to update this product"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
		}
	}

	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	callerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(id, callerID); err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "not authorized to delete this product"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
		}
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
