package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.mongodb.org/mongo-driver/bson"

	"equisport/internal/http/handlers"
	applog "equisport/internal/log"
	"equisport/internal/store/storetest"
)

// newTestApp builds the app exactly as main does, minus the middlewares
// that only matter in production, on top of an in-memory gateway.
func newTestApp(t *testing.T) (*fiber.App, *storetest.Gateway) {
	t.Helper()
	g := storetest.NewGateway()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Internal server error",
			})
		},
	})
	app.Use(requestid.New())
	handlers.Register(app, handlers.NewDeps(g))
	return app, g
}

func seedCatalog(t *testing.T, g *storetest.Gateway) {
	t.Helper()
	equipments := []bson.M{
		{"item": "Trail Tent", "category": "Camping", "price": 120.0, "originalPrice": 150.0, "rating": 4.5, "userEmail": "alice@test"},
		{"item": "Sleeping Bag", "category": "Camping", "price": 70.0, "rating": 4.2, "userEmail": "alice@test"},
		{"item": "Road Helmet", "category": "Cycling", "price": 45.0, "originalPrice": 60.0, "rating": 4.8, "userEmail": "bob@test"},
		{"item": "Cycle Gloves", "category": "Cycling", "price": 20.0, "rating": 3.9, "userEmail": "bob@test"},
		{"item": "Tennis Racket", "category": "Tennis", "price": 89.0, "rating": 4.7, "userEmail": "bob@test"},
		{"item": "Tennis Balls", "category": "Tennis", "price": 9.0, "rating": 4.1, "userEmail": "alice@test"},
		{"item": "Football", "category": "Football", "price": 25.0, "rating": 4.4, "userEmail": "alice@test"},
	}
	for _, doc := range equipments {
		if _, err := g.Equipments().InsertOne(context.Background(), doc); err != nil {
			t.Fatal(err)
		}
	}
	reviews := []bson.M{
		{"product": "Trail Tent", "brand": "Trailhead", "reviews": bson.A{
			bson.M{"rating": 5, "comment": "dry in a storm", "date": "2025-06-14"},
			bson.M{"rating": 4, "comment": "heavy", "date": "2025-07-02"},
		}},
		{"product": "Road Helmet", "brand": "Roadmaster", "reviews": bson.A{
			bson.M{"rating": 5, "comment": "great fit", "date": "2025-07-21"},
		}},
	}
	for _, doc := range reviews {
		if _, err := g.Reviews().InsertOne(context.Background(), doc); err != nil {
			t.Fatal(err)
		}
	}
	posts := []bson.M{
		{"title": "Packing Light", "author": "Alice", "publishDate": "2025-07-18", "content": "short checklist"},
		{"title": "First Road Bike", "author": "Bob", "publishDate": "2025-08-05", "content": "frame size first"},
	}
	for _, doc := range posts {
		if _, err := g.BlogPosts().InsertOne(context.Background(), doc); err != nil {
			t.Fatal(err)
		}
	}
}

func getJSON(t *testing.T, app *fiber.App, path string, status int) []byte {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if resp.StatusCode != status {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: want %d, got %d (body %s)", path, status, resp.StatusCode, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("not a JSON object: %v (%s)", err, body)
	}
	return m
}

func decodeList(t *testing.T, body []byte) []map[string]any {
	t.Helper()
	var l []map[string]any
	if err := json.Unmarshal(body, &l); err != nil {
		t.Fatalf("not a JSON array: %v (%s)", err, body)
	}
	return l
}
