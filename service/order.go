package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"catering_manager/constants"
	"catering_manager/model"
	"catering_manager/repository"

	"github.com/google/uuid"
)

// OrderService pilnuje reguł cyklu życia zamówienia: walidacji przy
// tworzeniu, zamrożenia cen pozycji oraz dozwolonych przejść statusów.
type OrderService struct {
	orders       repository.OrderRepository
	menu         repository.MenuItemRepository
	availability repository.AvailabilityRepository
	notifier     Notifier
	minPeople    int
	maxPeople    int
}

func NewOrderService(
	orders repository.OrderRepository,
	menu repository.MenuItemRepository,
	availability repository.AvailabilityRepository,
	notifier Notifier,
	minPeople, maxPeople int,
) *OrderService {
	return &OrderService{
		orders:       orders,
		menu:         menu,
		availability: availability,
		notifier:     notifier,
		minPeople:    minPeople,
		maxPeople:    maxPeople,
	}
}

func (s *OrderService) MinPeople() int { return s.minPeople }

func parseDateTime(raw string) (time.Time, error) {
	// Formularz wysyła "2025-06-01T12:00", API może przysłać pełne RFC 3339.
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", raw)
}

// CreateOrder waliduje żądanie w kolejności: liczba osób, dostępność terminu,
// dostępność pozycji menu. Pierwszy błąd przerywa przetwarzanie. Ceny
// jednostkowe są zdejmowane z cennika w tym momencie i nie zmieniają się już
// nigdy, więc suma zamówienia jest odtwarzalna z samych pozycji.
func (s *OrderService) CreateOrder(ctx context.Context, input model.CreateOrderInput) (*model.Order, error) {
	if input.PeopleCount < s.minPeople {
		return nil, &ValidationError{
			Code:    CodeBelowMinimumPeople,
			Message: fmt.Sprintf("Minimalna liczba osób to %d", s.minPeople),
		}
	}
	if input.PeopleCount > s.maxPeople {
		return nil, &ValidationError{
			Code:    CodeAboveMaximumPeople,
			Message: fmt.Sprintf("Maksymalna liczba osób to %d", s.maxPeople),
		}
	}

	if len(input.Items) == 0 {
		return nil, &ValidationError{Code: CodeEmptyItems, Message: constants.ORDER_ITEMS_REQUIRED}
	}

	dateTime, err := parseDateTime(input.DateTime)
	if err != nil {
		return nil, &ValidationError{Code: CodeInvalidDate, Message: "Nieprawidłowy format daty"}
	}

	entry, err := s.availability.GetByDate(ctx, dateTime)
	if errors.Is(err, repository.ErrNotFound) || (err == nil && !entry.IsAvailable) {
		return nil, &ValidationError{Code: CodeDateUnavailable, Message: constants.DATE_NOT_AVAILABLE}
	}
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		ids = append(ids, line.MenuItemId)
	}
	found, err := s.menu.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uint]model.MenuItem, len(found))
	for _, item := range found {
		byId[item.ID] = item
	}

	var unavailable []string
	items := make([]model.OrderItem, 0, len(input.Items))
	var subtotal int64
	for _, line := range input.Items {
		item, ok := byId[line.MenuItemId]
		if !ok || !item.Active {
			unavailable = append(unavailable, fmt.Sprintf("%d", line.MenuItemId))
			continue
		}
		total := item.PriceCents * int64(line.Quantity)
		subtotal += total
		items = append(items, model.OrderItem{
			MenuItemId: item.ID,
			Quantity:   line.Quantity,
			UnitCents:  item.PriceCents,
			TotalCents: total,
		})
	}
	if len(unavailable) > 0 {
		return nil, &ValidationError{
			Code:    CodeItemsUnavailable,
			Message: constants.ITEMS_UNAVAILABLE,
			Details: unavailable,
		}
	}

	order := &model.Order{
		PublicCode:    newPublicCode(),
		Status:        model.StatusPending,
		EventType:     input.EventType,
		DateTime:      dateTime,
		Address:       input.Address,
		PeopleCount:   input.PeopleCount,
		MinPeople:     s.minPeople,
		Community:     input.Community,
		Parish:        input.Parish,
		UserName:      input.UserName,
		UserEmail:     input.UserEmail,
		UserPhone:     input.UserPhone,
		SubtotalCents: subtotal,
		Items:         items,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.OrderCreated(order)
	return order, nil
}

// TransitionStatus zmienia status zamówienia. Statusy końcowe są zamrożone,
// powrót do PENDING jest zabroniony, odrzucenie wymaga powodu. Przejście na
// ten sam status to pusty zapis (odświeżenie znacznika czasu) bez ponownego
// powiadomienia.
func (s *OrderService) TransitionStatus(ctx context.Context, code string, input model.UpdateOrderStatusInput) (*model.Order, error) {
	if !model.IsKnownStatus(input.Status) {
		return nil, &ValidationError{Code: CodeInvalidStatus, Message: "Nieprawidłowy status zamówienia"}
	}
	if input.Status == model.StatusRejected {
		if input.StatusReason == nil || strings.TrimSpace(*input.StatusReason) == "" {
			return nil, &ValidationError{
				Code:    CodeMissingRejectionReason,
				Message: constants.REJECTION_REASON_REQUIRED,
			}
		}
	}

	changed := false
	order, err := s.orders.Update(ctx, code, func(o *model.Order) error {
		if o.Status == input.Status {
			return nil
		}
		if model.IsTerminalStatus(o.Status) {
			return &StateConflictError{Message: constants.TERMINAL_STATUS_FROZEN}
		}
		if input.Status == model.StatusPending {
			return &StateConflictError{Message: "Nie można przywrócić zamówienia do statusu oczekującego"}
		}
		o.Status = input.Status
		if input.Status == model.StatusRejected {
			o.StatusReason = input.StatusReason
		}
		changed = true
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	if err != nil {
		return nil, err
	}

	if changed {
		s.notifier.StatusChanged(order)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, code string) (*model.Order, error) {
	order, err := s.orders.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Message: constants.ORDER_NOT_FOUND}
	}
	return order, err
}

func (s *OrderService) ListOrders(ctx context.Context, filter model.OrderFilter) ([]model.Order, int64, error) {
	return s.orders.List(ctx, filter)
}

// OrderStats zasila panel administracyjny.
type OrderStats struct {
	CountByStatus        map[string]int64 `json:"countByStatus"`
	DeliveredTotalCents  int64            `json:"deliveredTotalCents"`
	PendingCount         int64            `json:"pendingCount"`
	TotalCount           int64            `json:"totalCount"`
}

func (s *OrderService) Stats(ctx context.Context) (*OrderStats, error) {
	counts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.SubtotalSumCents(ctx, model.StatusDelivered)
	if err != nil {
		return nil, err
	}
	stats := &OrderStats{
		CountByStatus:       counts,
		DeliveredTotalCents: revenue,
		PendingCount:        counts[model.StatusPending],
	}
	for _, c := range counts {
		stats.TotalCount += c
	}
	return stats, nil
}

func newPublicCode() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}
