package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/pimchw/thrift-market-backend/internal/user"
)

const (
	// TokenCookie carries the session JWT between requests.
	TokenCookie = "token"
	stateCookie = "oauth_state"

	tokenTTL = 72 * time.Hour
	stateTTL = 5 * time.Minute
)

type Handler struct {
	oauth       Exchanger
	users       *user.Service
	jwtSecret   string
	frontendURL string
}

func NewHandler(oauth Exchanger, users *user.Service, jwtSecret, frontendURL string) *Handler {
	return &Handler{
		oauth:       oauth,
		users:       users,
		jwtSecret:   jwtSecret,
		frontendURL: frontendURL,
	}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/auth/google", h.login)
	app.Get("/auth/google/callback", h.callback)
	app.Get("/auth/logout", h.logout)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/auth/user", h.currentUser)
}

// login starts the redirect dance. The state nonce is kept in a short-lived
// cookie and checked again on the callback.
func (h *Handler) login(c *fiber.Ctx) error {
	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     stateCookie,
		Value:    state,
		Expires:  time.Now().Add(stateTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(h.oauth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

func (h *Handler) callback(c *fiber.Ctx) error {
	state := c.Query("state")
	if state == "" || state != c.Cookies(stateCookie) {
		return c.Redirect(h.frontendURL+"/login", fiber.StatusTemporaryRedirect)
	}
	clearCookie(c, stateCookie)

	code := c.Query("code")
	if code == "" {
		return c.Redirect(h.frontendURL+"/login", fiber.StatusTemporaryRedirect)
	}

	profile, err := h.oauth.ExchangeUser(c.Context(), code)
	if err != nil {
		return c.Redirect(h.frontendURL+"/login", fiber.StatusTemporaryRedirect)
	}

	account, err := h.users.FindOrCreate(profile.ID, profile.Name, profile.Email, profile.Picture)
	if err != nil {
		return c.Redirect(h.frontendURL+"/login", fiber.StatusTemporaryRedirect)
	}

	signed, err := h.signToken(account)
	if err != nil {
		return c.Redirect(h.frontendURL+"/login", fiber.StatusTemporaryRedirect)
	}

	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    signed,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect(h.frontendURL, fiber.StatusTemporaryRedirect)
}

func (h *Handler) logout(c *fiber.Ctx) error {
	clearCookie(c, TokenCookie)
	return c.Redirect(h.frontendURL, fiber.StatusTemporaryRedirect)
}

// currentUser returns the record for the authenticated caller. It runs behind
// the JWT middleware, so a missing or invalid token never reaches it.
func (h *Handler) currentUser(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	account, err := h.users.GetByID(userID)
	if err != nil {
		if err == user.ErrNotFound {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}

	return c.JSON(account)
}

func (h *Handler) signToken(account user.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": account.ID,
		"email":   account.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}

func clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
