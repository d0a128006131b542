package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catering_manager/model"
	"catering_manager/repository"
	"catering_manager/service"
	"catering_manager/validate"

	"github.com/gofiber/fiber/v2"
)

type noopNotifier struct{}

func (noopNotifier) OrderCreated(*model.Order)  {}
func (noopNotifier) StatusChanged(*model.Order) {}

// newTestApp podnosi aplikację na magazynie w pamięci, z trasami bez
// uwierzytelniania (testujemy zachowanie handlerów, nie JWT).
func newTestApp(t *testing.T) (*fiber.App, *repository.MemoryStores) {
	t.Helper()
	stores := repository.NewMemoryStores()
	ctx := context.Background()

	if err := stores.MenuItems.Create(ctx, &model.MenuItem{
		Slug: "zurek", Name: "Żurek", PriceCents: 1800, Category: model.CategoryStarter, Active: true,
	}); err != nil {
		t.Fatal(err)
	}
	if err := stores.MenuItems.Create(ctx, &model.MenuItem{
		Slug: "kompot", Name: "Kompot", PriceCents: 800, Category: model.CategoryDrink, Active: true,
	}); err != nil {
		t.Fatal(err)
	}
	date := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	if err := stores.Availability.Upsert(ctx, &model.Availability{Date: date, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}

	orders := service.NewOrderService(stores.Orders, stores.MenuItems, stores.Availability, noopNotifier{}, 10, 500)
	ratings := service.NewRatingService(stores.Orders, stores.Ratings)
	messages := service.NewMessageService(stores.Orders, stores.Messages, nil)
	Init(orders, ratings, messages, stores.MenuItems, stores.Availability)

	app := fiber.New()
	app.Post("/api/v1/zamowienia", validate.CreateOrder(), CreateOrder)
	app.Get("/api/v1/zamowienia/:code", GetOrderByCode)
	app.Patch("/api/v1/order/:code/status", validate.UpdateOrderStatus(), UpdateOrderStatus)
	app.Get("/api/v1/menu", GetMenu)
	return app, stores
}

func jsonRequest(method, target string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func orderPayload() map[string]any {
	return map[string]any{
		"eventType":   "AGAPA",
		"dateTime":    "2026-10-10T12:00",
		"address":     "ul. Kwiatowa 5, Kraków",
		"peopleCount": 25,
		"community":   "Wspólnota św. Anny",
		"parish":      "Parafia Mariacka",
		"userName":    "Jan Kowalski",
		"userEmail":   "jan@example.com",
		"userPhone":   "123456789",
		"items": []map[string]any{
			{"menuItemId": 1, "quantity": 2},
			{"menuItemId": 2, "quantity": 1},
		},
	}
}

func TestCreateOrderEndpoint(t *testing.T) {
	app, stores := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/zamowienia", orderPayload()))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		Id string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Id == "" {
		t.Fatal("expected order code in response")
	}
	if stores.Orders.Len() != 1 {
		t.Errorf("store has %d orders, want 1", stores.Orders.Len())
	}

	// Szczegóły zamówienia pod zwróconym kodem
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/zamowienia/"+body.Id, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("detail status = %d, want 200", resp.StatusCode)
	}
	var detail struct {
		Data struct {
			Order model.Order `json:"order"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		t.Fatal(err)
	}
	if detail.Data.Order.Status != model.StatusPending {
		t.Errorf("status = %q, want PENDING", detail.Data.Order.Status)
	}
	if detail.Data.Order.SubtotalCents != 4400 {
		t.Errorf("subtotal = %d, want 4400", detail.Data.Order.SubtotalCents)
	}
}

func TestCreateOrderEndpointValidation(t *testing.T) {
	app, stores := newTestApp(t)

	cases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing email", func(p map[string]any) { delete(p, "userEmail") }},
		{"bad event type", func(p map[string]any) { p["eventType"] = "WESELE" }},
		{"empty items", func(p map[string]any) { p["items"] = []map[string]any{} }},
		{"too few people", func(p map[string]any) { p["peopleCount"] = 3 }},
		{"unavailable date", func(p map[string]any) { p["dateTime"] = "2026-12-24T12:00" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := orderPayload()
			tc.mutate(payload)

			resp, err := app.Test(jsonRequest("POST", "/api/v1/zamowienia", payload))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
		})
	}
	if stores.Orders.Len() != 0 {
		t.Errorf("store has %d orders, want 0", stores.Orders.Len())
	}
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/zamowienia/ORD-NIEMA", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest("POST", "/api/v1/zamowienia", orderPayload()))
	if err != nil {
		t.Fatal(err)
	}
	var created struct {
		Id string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	target := fmt.Sprintf("/api/v1/order/%s/status", created.Id)

	// Odrzucenie bez powodu → 400
	resp, err = app.Test(jsonRequest("PATCH", target, map[string]any{"status": "REJECTED"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("reject without reason: status = %d, want 400", resp.StatusCode)
	}

	// Akceptacja
	resp, err = app.Test(jsonRequest("PATCH", target, map[string]any{"status": "ACCEPTED"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("accept: status = %d, want 200", resp.StatusCode)
	}

	// Dostarczenie, a potem próba zmiany statusu końcowego → 409
	resp, err = app.Test(jsonRequest("PATCH", target, map[string]any{"status": "DELIVERED"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("deliver: status = %d, want 200", resp.StatusCode)
	}
	resp, err = app.Test(jsonRequest("PATCH", target, map[string]any{"status": "ACCEPTED"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("terminal change: status = %d, want 409", resp.StatusCode)
	}

	// Nieznany kod zamówienia → 404
	resp, err = app.Test(jsonRequest("PATCH", "/api/v1/order/ORD-NIEMA/status", map[string]any{"status": "ACCEPTED"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown order: status = %d, want 404", resp.StatusCode)
	}
}

func TestGetMenuEndpoint(t *testing.T) {
	app, stores := newTestApp(t)
	ctx := context.Background()

	// Nieaktywna pozycja nie trafia do menu publicznego
	item, err := stores.MenuItems.GetByID(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	item.Active = false
	if err := stores.MenuItems.Save(ctx, item); err != nil {
		t.Fatal(err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/menu", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body struct {
		Data []model.MenuItem `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 1 {
		t.Errorf("menu items = %d, want 1", len(body.Data))
	}
}
