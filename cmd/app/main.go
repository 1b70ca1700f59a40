package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wichananm65/ishop-backend/internal/cart"
	"github.com/wichananm65/ishop-backend/internal/catalog"
	"github.com/wichananm65/ishop-backend/internal/category"
	"github.com/wichananm65/ishop-backend/internal/config"
	"github.com/wichananm65/ishop-backend/internal/customer"
	"github.com/wichananm65/ishop-backend/internal/order"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	catalogService := catalog.NewService(catalog.NewPostgresRepository(db))
	catalogHandler := catalog.NewHandler(catalogService)
	catalogHandler.RegisterPublicRoutes(app)

	categoryHandler := category.NewHandler(category.NewService(category.NewPostgresRepository(db)), catalogService)
	categoryHandler.RegisterPublicRoutes(app)

	// order assembly re-resolves every submitted line against the catalog
	orderHandler := order.NewHandler(order.NewService(order.NewPostgresRepository(db), catalogService))
	orderHandler.RegisterPublicRoutes(app)

	cartHandler := cart.NewHandler(cart.NewService(cart.NewPostgresRepository(db)))
	cartHandler.RegisterPublicRoutes(app)

	customerHandler := customer.NewHandler(customer.NewService(customer.NewPostgresRepository(db)))
	customerHandler.RegisterPublicRoutes(app)

	// everything registered below requires a valid token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	customerHandler.RegisterProtectedRoutes(app)

	log.Printf("API running on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	fmt.Printf("URL = %s, Method = %s, Duration = %v\n", c.OriginalURL(), c.Method(), time.Since(start))
	return err
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// ensureSchema creates the storefront tables on first start. The catalog
// table mirrors the legacy document dump: identifier and price fields are
// nullable because records do not share one schema.
func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
			oid TEXT PRIMARY KEY,
			id DOUBLE PRECISION,
			product_id TEXT,
			sku TEXT,
			title TEXT,
			name TEXT,
			category TEXT,
			price TEXT,
			image TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			user_id TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			first_name TEXT,
			last_name TEXT,
			email TEXT,
			phone TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			oid TEXT PRIMARY KEY,
			user_id TEXT,
			items JSONB NOT NULL DEFAULT '[]',
			subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
			shipping DOUBLE PRECISION NOT NULL DEFAULT 0,
			tax DOUBLE PRECISION NOT NULL DEFAULT 0,
			total DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			user_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			quantity INT NOT NULL,
			added_at TEXT,
			PRIMARY KEY (user_id, product_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders (user_id, created_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
