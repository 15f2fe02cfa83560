package rating

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
	app.Get("/api/ratings/:userId<[0-9]+>", h.getRatings)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/ratings", h.submitRating)
}

type submitRequest struct {
	UserID  int    `json:"user_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (h *Handler) submitRating(c *fiber.Ctx) error {
	payload := new(submitRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user_id"})
	}

	raterID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	created, err := h.service.Submit(payload.UserID, raterID, payload.Rating, payload.Comment)
	if err != nil {
		switch err {
		case ErrInvalidScore:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "rating must be between 1 and 5"})
		case ErrAlreadyRated:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "You have already rated this user"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) getRatings(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid user id"})
	}

	ratings, err := h.service.ListForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.JSON(ratings)
}
