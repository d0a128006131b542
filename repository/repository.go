package repository

import (
	"context"
	"errors"
	"time"

	"catering_manager/model"
)

// ErrNotFound jest zwracany, gdy encja o podanym kluczu nie istnieje.
var ErrNotFound = errors.New("record not found")

// OrderRepository to magazyn zamówień kluczowany kodem publicznym.
// Update wykonuje fn na świeżo wczytanym zamówieniu i zapisuje je atomowo.
// Implementacja odpowiada za serializację współbieżnych zapisów tej samej encji.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByCode(ctx context.Context, code string) (*model.Order, error)
	Update(ctx context.Context, code string, fn func(*model.Order) error) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int64, error)
	ListByStatusDueBetween(ctx context.Context, status string, from, to time.Time) ([]model.Order, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	SubtotalSumCents(ctx context.Context, status string) (int64, error)
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *model.MenuItem) error
	Save(ctx context.Context, item *model.MenuItem) error
	GetByID(ctx context.Context, id uint) (*model.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uint) ([]model.MenuItem, error)
	ListActive(ctx context.Context) ([]model.MenuItem, error)
	List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, int64, error)
	CountSlug(ctx context.Context, slug string) (int64, error)
}

type AvailabilityRepository interface {
	// Upsert tworzy lub nadpisuje wpis dla dnia entry.Date.
	Upsert(ctx context.Context, entry *model.Availability) error
	GetByDate(ctx context.Context, date time.Time) (*model.Availability, error)
	ListAvailableFrom(ctx context.Context, from time.Time) ([]model.Availability, error)
	List(ctx context.Context) ([]model.Availability, error)
	Delete(ctx context.Context, date time.Time) error
	DeleteBefore(ctx context.Context, date time.Time) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	ListByOrder(ctx context.Context, orderId uint) ([]model.Message, error)
}

// RatingRepository rozdziela zapis gwiazdek od zapisu odpowiedzi, żeby
// upsert oceny nigdy nie nadpisał istniejącej odpowiedzi administratora.
type RatingRepository interface {
	GetByOrder(ctx context.Context, orderId uint) (*model.Rating, error)
	UpsertStars(ctx context.Context, orderId uint, stars int, comment *string) (*model.Rating, error)
	SetReply(ctx context.Context, orderId uint, reply string) (*model.Rating, error)
}

// DateOnly obcina składnik czasu, zostawiając sam dzień kalendarzowy w UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
