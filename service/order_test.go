package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"catering_manager/model"
	"catering_manager/repository"
	"catering_manager/utils"
)

type stubNotifier struct {
	created []string
	changed []string
}

func (s *stubNotifier) OrderCreated(o *model.Order) { s.created = append(s.created, o.PublicCode) }
func (s *stubNotifier) StatusChanged(o *model.Order) {
	s.changed = append(s.changed, o.Status)
}

type orderFixture struct {
	stores   *repository.MemoryStores
	notifier *stubNotifier
	svc      *OrderService
	date     time.Time
}

// newOrderFixture buduje serwis na magazynie w pamięci z dwiema pozycjami
// menu (1800 gr i 800 gr) oraz jednym dostępnym terminem.
func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	stores := repository.NewMemoryStores()
	ctx := context.Background()

	zurek := &model.MenuItem{Slug: "zurek", Name: "Żurek", PriceCents: 1800, Category: model.CategoryStarter, Active: true}
	kompot := &model.MenuItem{Slug: "kompot", Name: "Kompot", PriceCents: 800, Category: model.CategoryDrink, Active: true}
	if err := stores.MenuItems.Create(ctx, zurek); err != nil {
		t.Fatal(err)
	}
	if err := stores.MenuItems.Create(ctx, kompot); err != nil {
		t.Fatal(err)
	}

	date := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
	if err := stores.Availability.Upsert(ctx, &model.Availability{Date: date, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}

	notifier := &stubNotifier{}
	svc := NewOrderService(stores.Orders, stores.MenuItems, stores.Availability, notifier, 10, 500)
	return &orderFixture{stores: stores, notifier: notifier, svc: svc, date: date}
}

func validInput() model.CreateOrderInput {
	return model.CreateOrderInput{
		EventType:   model.EventAgapa,
		DateTime:    "2026-10-10T12:00",
		Address:     "ul. Kwiatowa 5, Kraków",
		PeopleCount: 25,
		Community:   "Wspólnota św. Anny",
		Parish:      "Parafia Mariacka",
		UserName:    "Jan Kowalski",
		UserEmail:   "jan@example.com",
		UserPhone:   "123456789",
		Items: []model.OrderItemInput{
			{MenuItemId: 1, Quantity: 2},
			{MenuItemId: 2, Quantity: 1},
		},
	}
}

func TestCreateOrderFreezesPrices(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if order.Status != model.StatusPending {
		t.Errorf("status = %q, want %q", order.Status, model.StatusPending)
	}
	if order.PublicCode == "" {
		t.Error("expected non-empty public code")
	}
	// 2×1800 + 1×800
	if order.SubtotalCents != 4400 {
		t.Errorf("subtotal = %d, want 4400", order.SubtotalCents)
	}
	if len(order.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(order.Items))
	}
	if order.Items[0].UnitCents != 1800 || order.Items[0].TotalCents != 3600 {
		t.Errorf("first line = %d/%d, want 1800/3600", order.Items[0].UnitCents, order.Items[0].TotalCents)
	}

	// Późniejsza zmiana cennika nie dotyka zamówienia
	item, err := f.stores.MenuItems.GetByID(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	item.PriceCents = 9900
	if err := f.stores.MenuItems.Save(ctx, item); err != nil {
		t.Fatal(err)
	}
	saved, err := f.svc.GetOrder(ctx, order.PublicCode)
	if err != nil {
		t.Fatal(err)
	}
	if saved.SubtotalCents != 4400 || saved.Items[0].UnitCents != 1800 {
		t.Errorf("order prices changed after menu update: subtotal=%d unit=%d", saved.SubtotalCents, saved.Items[0].UnitCents)
	}

	if len(f.notifier.created) != 1 {
		t.Errorf("created notifications = %d, want 1", len(f.notifier.created))
	}
}

func TestCreateOrderValidation(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*model.CreateOrderInput)
		wantCode string
	}{
		{
			name:     "below minimum people",
			mutate:   func(in *model.CreateOrderInput) { in.PeopleCount = 5 },
			wantCode: CodeBelowMinimumPeople,
		},
		{
			name:     "above maximum people",
			mutate:   func(in *model.CreateOrderInput) { in.PeopleCount = 1000 },
			wantCode: CodeAboveMaximumPeople,
		},
		{
			name:     "unparseable date",
			mutate:   func(in *model.CreateOrderInput) { in.DateTime = "10.10.2026" },
			wantCode: CodeInvalidDate,
		},
		{
			name:     "date without availability entry",
			mutate:   func(in *model.CreateOrderInput) { in.DateTime = "2026-12-24T12:00" },
			wantCode: CodeDateUnavailable,
		},
		{
			name:     "no items",
			mutate:   func(in *model.CreateOrderInput) { in.Items = nil },
			wantCode: CodeEmptyItems,
		},
		{
			name: "unknown menu item",
			mutate: func(in *model.CreateOrderInput) {
				in.Items = []model.OrderItemInput{{MenuItemId: 99, Quantity: 1}}
			},
			wantCode: CodeItemsUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t)
			input := validInput()
			tc.mutate(&input)

			_, err := f.svc.CreateOrder(context.Background(), input)
			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if validation.Code != tc.wantCode {
				t.Errorf("code = %q, want %q", validation.Code, tc.wantCode)
			}
			// Odrzucone zamówienie nie zostawia śladu w magazynie
			if f.stores.Orders.Len() != 0 {
				t.Errorf("store has %d orders, want 0", f.stores.Orders.Len())
			}
			if len(f.notifier.created) != 0 {
				t.Errorf("created notifications = %d, want 0", len(f.notifier.created))
			}
		})
	}
}

func TestCreateOrderDateMarkedUnavailable(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	if err := f.stores.Availability.Upsert(ctx, &model.Availability{Date: f.date, IsAvailable: false}); err != nil {
		t.Fatal(err)
	}

	_, err := f.svc.CreateOrder(ctx, validInput())
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Code != CodeDateUnavailable {
		t.Fatalf("err = %v, want date-unavailable", err)
	}
}

func TestCreateOrderInactiveMenuItem(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	item, err := f.stores.MenuItems.GetByID(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	item.Active = false
	if err := f.stores.MenuItems.Save(ctx, item); err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.CreateOrder(ctx, validInput())
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Code != CodeItemsUnavailable {
		t.Fatalf("err = %v, want items-unavailable", err)
	}
	if len(validation.Details) != 1 || validation.Details[0] != "2" {
		t.Errorf("details = %v, want [2]", validation.Details)
	}
}

func TestTransitionStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	accepted, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusAccepted})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != model.StatusAccepted {
		t.Errorf("status = %q, want ACCEPTED", accepted.Status)
	}

	delivered, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusDelivered})
	if err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if delivered.Status != model.StatusDelivered {
		t.Errorf("status = %q, want DELIVERED", delivered.Status)
	}

	if len(f.notifier.changed) != 2 {
		t.Errorf("change notifications = %d, want 2", len(f.notifier.changed))
	}
}

func TestTransitionStatusRejectedRequiresReason(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusRejected})
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Code != CodeMissingRejectionReason {
		t.Fatalf("err = %v, want missing-rejection-reason", err)
	}

	// Nieudane odrzucenie nie zmienia zamówienia
	saved, err := f.svc.GetOrder(ctx, order.PublicCode)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != model.StatusPending {
		t.Errorf("status = %q, want PENDING", saved.Status)
	}

	rejected, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{
		Status:       model.StatusRejected,
		StatusReason: utils.Ptr("Brak wolnych terminów"),
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.StatusReason == nil || *rejected.StatusReason != "Brak wolnych terminów" {
		t.Errorf("reason not stored: %v", rejected.StatusReason)
	}
}

func TestTransitionStatusTerminalFrozen(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{
		Status:       model.StatusRejected,
		StatusReason: utils.Ptr("Zbyt duże zamówienie"),
	}); err != nil {
		t.Fatal(err)
	}

	for _, next := range []string{model.StatusAccepted, model.StatusInDelivery, model.StatusDelivered} {
		_, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: next})
		var conflict *StateConflictError
		if !errors.As(err, &conflict) {
			t.Errorf("transition to %s: err = %v, want StateConflictError", next, err)
		}
	}

	saved, err := f.svc.GetOrder(ctx, order.PublicCode)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != model.StatusRejected {
		t.Errorf("status = %q, want REJECTED", saved.Status)
	}
}

func TestTransitionStatusSameStatusNoRenotify(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusAccepted}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusAccepted}); err != nil {
		t.Fatalf("repeat accept: %v", err)
	}

	if len(f.notifier.changed) != 1 {
		t.Errorf("change notifications = %d, want 1", len(f.notifier.changed))
	}
}

func TestTransitionStatusBackToPendingForbidden(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusAccepted}); err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusPending})
	var conflict *StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want StateConflictError", err)
	}
}

func TestTransitionStatusUnknownOrder(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.TransitionStatus(context.Background(), "ORD-NIEMA", model.UpdateOrderStatusInput{Status: model.StatusAccepted})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestTransitionStatusUnknownStatus(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.TransitionStatus(ctx, order.PublicCode, model.UpdateOrderStatusInput{Status: "WYSLANE"})
	var validation *ValidationError
	if !errors.As(err, &validation) || validation.Code != CodeInvalidStatus {
		t.Fatalf("err = %v, want invalid-status", err)
	}
}

func TestStats(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateOrder(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CreateOrder(ctx, validInput()); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.TransitionStatus(ctx, first.PublicCode, model.UpdateOrderStatusInput{Status: model.StatusDelivered}); err != nil {
		t.Fatal(err)
	}

	stats, err := f.svc.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCount != 2 {
		t.Errorf("total = %d, want 2", stats.TotalCount)
	}
	if stats.PendingCount != 1 {
		t.Errorf("pending = %d, want 1", stats.PendingCount)
	}
	if stats.DeliveredTotalCents != 4400 {
		t.Errorf("delivered revenue = %d, want 4400", stats.DeliveredTotalCents)
	}
}
