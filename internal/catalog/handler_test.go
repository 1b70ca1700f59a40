package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func setupApp(seed []Product) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	h.RegisterPublicRoutes(app)
	return app
}

func TestGetProducts(t *testing.T) {
	app := setupApp([]Product{
		{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", Title: strPtr("A"), Price: strPtr("10")},
		{OID: "ffffffffffffffffffffffff", Title: strPtr("B"), Price: strPtr("20")},
	})

	res, err := app.Test(httptest.NewRequest("GET", "/getproducts", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestGetProduct_ByAnyIdentifierForm(t *testing.T) {
	app := setupApp([]Product{
		{OID: "a1b2c3d4e5f6a7b8c9d0e1f2", LegacyID: floatPtr(7), SKU: strPtr("sku-7"), Title: strPtr("Multi"), Price: strPtr("5")},
	})

	for _, ref := range []string{"a1b2c3d4e5f6a7b8c9d0e1f2", "7", "sku-7"} {
		res, err := app.Test(httptest.NewRequest("GET", "/products/"+ref, nil))
		if err != nil {
			t.Fatal(err)
		}
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("ref %q: expected 200, got %d", ref, res.StatusCode)
		}
		var p Product
		if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
			t.Fatal(err)
		}
		if p.OID != "a1b2c3d4e5f6a7b8c9d0e1f2" {
			t.Errorf("ref %q resolved to %q", ref, p.OID)
		}
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := setupApp(nil)

	res, err := app.Test(httptest.NewRequest("GET", "/products/nothing", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
