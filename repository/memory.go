package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"catering_manager/model"
)

// MemoryStores to zestaw repozytoriów w pamięci, używany w testach i w trybie
// deweloperskim bez bazy. W odróżnieniu od płaskich plików JSON każdy magazyn
// serializuje zapisy mutexem, więc równoległe aktualizacje się nie gubią.
type MemoryStores struct {
	Orders       *MemoryOrderRepo
	MenuItems    *MemoryMenuItemRepo
	Availability *MemoryAvailabilityRepo
	Messages     *MemoryMessageRepo
	Ratings      *MemoryRatingRepo
}

func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		Orders:       &MemoryOrderRepo{orders: map[string]*model.Order{}},
		MenuItems:    &MemoryMenuItemRepo{items: map[uint]*model.MenuItem{}},
		Availability: &MemoryAvailabilityRepo{entries: map[string]*model.Availability{}},
		Messages:     &MemoryMessageRepo{},
		Ratings:      &MemoryRatingRepo{ratings: map[uint]*model.Rating{}},
	}
}

type MemoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*model.Order
	nextId uint
}

func cloneOrder(o *model.Order) *model.Order {
	cp := *o
	cp.Items = make([]model.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}

// Len zwraca liczbę przechowywanych zamówień (pomocnicze dla testów).
func (r *MemoryOrderRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

func (r *MemoryOrderRepo) Create(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	order.ID = r.nextId
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	for i := range order.Items {
		order.Items[i].OrderId = order.ID
		order.Items[i].CreatedAt = now
		order.Items[i].UpdatedAt = now
	}
	r.orders[order.PublicCode] = cloneOrder(order)
	return nil
}

func (r *MemoryOrderRepo) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[code]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *MemoryOrderRepo) Update(ctx context.Context, code string, fn func(*model.Order) error) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.orders[code]
	if !ok {
		return nil, ErrNotFound
	}
	work := cloneOrder(stored)
	if err := fn(work); err != nil {
		return nil, err
	}
	work.UpdatedAt = time.Now()
	r.orders[code] = cloneOrder(work)
	return work, nil
}

func (r *MemoryOrderRepo) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.orders {
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil && o.DateTime.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && o.DateTime.After(*filter.DateTo) {
			continue
		}
		out = append(out, *cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *MemoryOrderRepo) ListByStatusDueBetween(ctx context.Context, status string, from, to time.Time) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Order
	for _, o := range r.orders {
		if o.Status == status && !o.DateTime.Before(from) && !o.DateTime.After(to) {
			out = append(out, *cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateTime.Before(out[j].DateTime) })
	return out, nil
}

func (r *MemoryOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, o := range r.orders {
		counts[o.Status]++
	}
	return counts, nil
}

func (r *MemoryOrderRepo) SubtotalSumCents(ctx context.Context, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, o := range r.orders {
		if o.Status == status {
			sum += o.SubtotalCents
		}
	}
	return sum, nil
}

type MemoryMenuItemRepo struct {
	mu     sync.Mutex
	items  map[uint]*model.MenuItem
	nextId uint
}

func (r *MemoryMenuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	item.ID = r.nextId
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *MemoryMenuItemRepo) Save(ctx context.Context, item *model.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.UpdatedAt = time.Now()
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *MemoryMenuItemRepo) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *MemoryMenuItemRepo) GetByIDs(ctx context.Context, ids []uint) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MenuItem
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *MemoryMenuItemRepo) ListActive(ctx context.Context) ([]model.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MenuItem
	for _, item := range r.items {
		if item.Active {
			out = append(out, *item)
		}
	}
	sortMenuItems(out)
	return out, nil
}

func (r *MemoryMenuItemRepo) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.MenuItem
	for _, item := range r.items {
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		if filter.Active != nil && item.Active != *filter.Active {
			continue
		}
		out = append(out, *item)
	}
	sortMenuItems(out)
	return out, int64(len(out)), nil
}

func (r *MemoryMenuItemRepo) CountSlug(ctx context.Context, slug string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, item := range r.items {
		if item.Slug == slug {
			count++
		}
	}
	return count, nil
}

func sortMenuItems(items []model.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return strings.Compare(items[i].Name, items[j].Name) < 0
	})
}

type MemoryAvailabilityRepo struct {
	mu      sync.Mutex
	entries map[string]*model.Availability
	nextId  uint
}

func dateKey(t time.Time) string {
	return DateOnly(t).Format("2006-01-02")
}

func (r *MemoryAvailabilityRepo) Upsert(ctx context.Context, entry *model.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.Date = DateOnly(entry.Date)
	key := dateKey(entry.Date)
	now := time.Now()
	if existing, ok := r.entries[key]; ok {
		existing.IsAvailable = entry.IsAvailable
		existing.Note = entry.Note
		existing.UpdatedAt = now
		entry.ID = existing.ID
		return nil
	}
	r.nextId++
	entry.ID = r.nextId
	entry.CreatedAt = now
	entry.UpdatedAt = now
	cp := *entry
	r.entries[key] = &cp
	return nil
}

func (r *MemoryAvailabilityRepo) GetByDate(ctx context.Context, date time.Time) (*model.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[dateKey(date)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *entry
	return &cp, nil
}

func (r *MemoryAvailabilityRepo) ListAvailableFrom(ctx context.Context, from time.Time) ([]model.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := DateOnly(from)
	var out []model.Availability
	for _, entry := range r.entries {
		if entry.IsAvailable && !entry.Date.Before(cutoff) {
			out = append(out, *entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryAvailabilityRepo) List(ctx context.Context) ([]model.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Availability
	for _, entry := range r.entries {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryAvailabilityRepo) Delete(ctx context.Context, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := dateKey(date)
	if _, ok := r.entries[key]; !ok {
		return ErrNotFound
	}
	delete(r.entries, key)
	return nil
}

func (r *MemoryAvailabilityRepo) DeleteBefore(ctx context.Context, date time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := DateOnly(date)
	var removed int64
	for key, entry := range r.entries {
		if entry.Date.Before(cutoff) {
			delete(r.entries, key)
			removed++
		}
	}
	return removed, nil
}

type MemoryMessageRepo struct {
	mu       sync.Mutex
	messages []model.Message
	nextId   uint
}

func (r *MemoryMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	msg.ID = r.nextId
	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *MemoryMessageRepo) ListByOrder(ctx context.Context, orderId uint) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Message
	for _, msg := range r.messages {
		if msg.OrderId == orderId {
			out = append(out, msg)
		}
	}
	return out, nil
}

type MemoryRatingRepo struct {
	mu      sync.Mutex
	ratings map[uint]*model.Rating
	nextId  uint
}

func (r *MemoryRatingRepo) GetByOrder(ctx context.Context, orderId uint) (*model.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rating, ok := r.ratings[orderId]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rating
	return &cp, nil
}

func (r *MemoryRatingRepo) UpsertStars(ctx context.Context, orderId uint, stars int, comment *string) (*model.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.ratings[orderId]; ok {
		existing.Stars = stars
		existing.Comment = comment
		existing.UpdatedAt = now
		cp := *existing
		return &cp, nil
	}
	r.nextId++
	rating := &model.Rating{
		DTO:     model.DTO{ID: r.nextId, CreatedAt: now, UpdatedAt: now},
		OrderId: orderId,
		Stars:   stars,
		Comment: comment,
	}
	r.ratings[orderId] = rating
	cp := *rating
	return &cp, nil
}

func (r *MemoryRatingRepo) SetReply(ctx context.Context, orderId uint, reply string) (*model.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rating, ok := r.ratings[orderId]
	if !ok {
		return nil, ErrNotFound
	}
	rating.AdminReply = &reply
	rating.UpdatedAt = time.Now()
	cp := *rating
	return &cp, nil
}
