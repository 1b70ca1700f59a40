package customer

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// makeApp registers both route sets with a middleware that injects the JWT
// token the way the jwt middleware would, keyed off an X-User-ID header.
func makeApp(seed []Customer) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			claims := jwt.MapClaims{"user_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := makeApp(nil)

	req := httptest.NewRequest("POST", "/customerregister", strings.NewReader(`{"UserId":"alice","Password":"pw123","Email":"a@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("register: expected 200, got %d", res.StatusCode)
	}

	// duplicate UserId is rejected
	req2 := httptest.NewRequest("POST", "/customerregister", strings.NewReader(`{"UserId":"alice","Password":"other"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2, -1)
	if res2.StatusCode != fiber.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", res2.StatusCode)
	}

	// correct credentials yield a token
	req3 := httptest.NewRequest("POST", "/login", strings.NewReader(`{"UserId":"alice","Password":"pw123"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3, -1)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("login: expected 200, got %d", res3.StatusCode)
	}
	var body map[string]any
	if err := json.NewDecoder(res3.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if tok, _ := body["token"].(string); tok == "" {
		t.Fatal("expected a signed token in the login response")
	}

	// wrong password is rejected
	req4 := httptest.NewRequest("POST", "/login", strings.NewReader(`{"UserId":"alice","Password":"nope"}`))
	req4.Header.Set("Content-Type", "application/json")
	res4, _ := app.Test(req4, -1)
	if res4.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("bad login: expected 401, got %d", res4.StatusCode)
	}
}

func TestProfile_PasswordNeverSerialized(t *testing.T) {
	seed := []Customer{{UserID: "bob", Password: "$2a$10$fakefakefakefakefakefake", FirstName: "Bob"}}
	app := makeApp(seed)

	req := httptest.NewRequest("GET", "/customers/bob", nil)
	req.Header.Set("X-User-ID", "bob")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var body struct {
		Customer Customer `json:"customer"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Customer.Password != "" {
		t.Fatal("password must never leave the API")
	}
	if body.Customer.FirstName != "Bob" {
		t.Fatalf("unexpected profile %+v", body.Customer)
	}
}

func TestProfile_RequiresMatchingUser(t *testing.T) {
	seed := []Customer{{UserID: "bob", Password: "x"}}
	app := makeApp(seed)

	// no token at all
	res, _ := app.Test(httptest.NewRequest("GET", "/customers/bob", nil), -1)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.StatusCode)
	}

	// token for a different user
	req := httptest.NewRequest("GET", "/customers/bob", nil)
	req.Header.Set("X-User-ID", "mallory")
	res2, _ := app.Test(req, -1)
	if res2.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for mismatched user, got %d", res2.StatusCode)
	}
}

func TestUpdateProfile_BlankPasswordKeepsHash(t *testing.T) {
	repo := NewInMemoryRepository([]Customer{{UserID: "bob", Password: "$2a$10$storedhash", Phone: "111"}})
	app := fiber.New()
	h := NewHandler(NewService(repo))
	app.Use(func(c *fiber.Ctx) error {
		claims := jwt.MapClaims{"user_id": "bob"}
		c.Locals("user", &jwt.Token{Claims: claims})
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("PUT", "/customers/bob", strings.NewReader(`{"Phone":"222","Password":""}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	stored, err := repo.GetByUserID(context.Background(), "bob")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Password != "$2a$10$storedhash" {
		t.Fatal("blank password must keep the stored hash")
	}
	if stored.Phone != "222" {
		t.Fatalf("expected phone updated, got %q", stored.Phone)
	}
}
