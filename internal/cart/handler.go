package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pimchw/thrift-market-backend/internal/user"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/cart", h.getCart)
	app.Post("/api/cart/add", h.addToCart)
	app.Put("/api/cart/:id<[0-9]+>", h.updateQuantity)
	app.Delete("/api/cart/:id<[0-9]+>", h.removeFromCart)
}

type addRequest struct {
	ProductID int  `json:"product_id"`
	Quantity  *int `json:"quantity,omitempty"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.GetCart(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.JSON(items)
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product_id"})
	}

	qty := 1
	if payload.Quantity != nil {
		qty = *payload.Quantity
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	entry, err := h.service.Add(userID, payload.ProductID, qty)
	if err != nil {
		if err == ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must be positive"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.JSON(entry)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	cartID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	entry, removed, err := h.service.UpdateQuantity(cartID, userID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "quantity must not be negative"})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "cart entry not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
		}
	}

	if removed {
		return c.JSON(fiber.Map{"message": "Item removed from cart"})
	}
	return c.JSON(entry)
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	cartID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Remove(cartID, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}
