package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pimchw/thrift-market-backend/internal/auth"
	"github.com/pimchw/thrift-market-backend/internal/cart"
	"github.com/pimchw/thrift-market-backend/internal/config"
	"github.com/pimchw/thrift-market-backend/internal/product"
	"github.com/pimchw/thrift-market-backend/internal/rating"
	"github.com/pimchw/thrift-market-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	userService := user.NewService(user.NewPostgresRepository(db))
	googleOAuth := auth.NewGoogleOAuth(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.CallbackBaseURL)
	authHandler := auth.NewHandler(googleOAuth, userService, cfg.JWTSecret, cfg.FrontendURL)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db)))
	ratingHandler := rating.NewHandler(rating.NewService(rating.NewPostgresRepository(db)))

	// public routes go in before the JWT middleware so browsing and the
	// OAuth dance stay unauthenticated
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	authHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	ratingHandler.RegisterPublicRoutes(app)

	app.Use(auth.CookieToAuthHeader)
	app.Use(auth.NewMiddleware(cfg.JWTSecret))

	authHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	cartHandler.RegisterProtectedRoutes(app)
	ratingHandler.RegisterProtectedRoutes(app)

	log.Fatal(app.Listen(cfg.Addr))
}

func mustOpenDB(databaseURL string) *sql.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	return db
}

func ensureSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id SERIAL PRIMARY KEY,
			google_id TEXT NOT NULL UNIQUE,
			username TEXT,
			email TEXT,
			profile_picture TEXT,
			seller_rating NUMERIC(3,2)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC NOT NULL,
			original_price NUMERIC,
			size TEXT,
			condition TEXT,
			brand TEXT,
			category TEXT,
			gender TEXT,
			age_group TEXT,
			image_url TEXT,
			status TEXT NOT NULL DEFAULT 'available',
			seller_id INT NOT NULL REFERENCES users(user_id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cart (
			cart_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(user_id),
			product_id INT NOT NULL REFERENCES products(product_id),
			quantity INT NOT NULL CHECK (quantity >= 1),
			UNIQUE (user_id, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			rating_id SERIAL PRIMARY KEY,
			user_id INT NOT NULL REFERENCES users(user_id),
			rated_by INT NOT NULL REFERENCES users(user_id),
			rating INT NOT NULL,
			comment TEXT,
			UNIQUE (user_id, rated_by)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
	}
}
