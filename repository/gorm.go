package repository

import (
	"context"
	"errors"
	"time"

	"catering_manager/model"
	"catering_manager/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStores spina wszystkie repozytoria na jednym połączeniu GORM.
type GormStores struct {
	Orders       OrderRepository
	MenuItems    MenuItemRepository
	Availability AvailabilityRepository
	Messages     MessageRepository
	Ratings      RatingRepository
}

func NewGormStores(db *gorm.DB) *GormStores {
	return &GormStores{
		Orders:       &gormOrderRepo{db: db},
		MenuItems:    &gormMenuItemRepo{db: db},
		Availability: &gormAvailabilityRepo{db: db},
		Messages:     &gormMessageRepo{db: db},
		Ratings:      &gormRatingRepo{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormOrderRepo struct {
	db *gorm.DB
}

func (r *gormOrderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *gormOrderRepo) GetByCode(ctx context.Context, code string) (*model.Order, error) {
	var order model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.MenuItem").
		Where("public_code = ?", code).
		First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// Update wczytuje zamówienie pod blokadą wiersza, wykonuje fn i zapisuje.
// Status, powód i znacznik czasu zmieniają się razem albo wcale.
func (r *gormOrderRepo) Update(ctx context.Context, code string, fn func(*model.Order) error) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("public_code = ?", code).
			First(&order).Error; err != nil {
			return translate(err)
		}
		if err := fn(&order); err != nil {
			return err
		}
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Preload("Items").Preload("Items.MenuItem").
		Where("public_code = ?", code).First(&order).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (r *gormOrderRepo) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Order{})
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.DateFrom != nil {
		db = db.Where("date_time >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		db = db.Where("date_time <= ?", *filter.DateTo)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var orders []model.Order
	if err := db.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *gormOrderRepo) ListByStatusDueBetween(ctx context.Context, status string, from, to time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND date_time BETWEEN ? AND ?", status, from, to).
		Order("date_time asc").
		Find(&orders).Error
	return orders, err
}

func (r *gormOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *gormOrderRepo) SubtotalSumCents(ctx context.Context, status string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("status = ?", status).
		Select("coalesce(sum(subtotal_cents), 0)").
		Scan(&sum).Error
	return sum, err
}

type gormMenuItemRepo struct {
	db *gorm.DB
}

func (r *gormMenuItemRepo) Create(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *gormMenuItemRepo) Save(ctx context.Context, item *model.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *gormMenuItemRepo) GetByID(ctx context.Context, id uint) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *gormMenuItemRepo) GetByIDs(ctx context.Context, ids []uint) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *gormMenuItemRepo) ListActive(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *gormMenuItemRepo) List(ctx context.Context, filter model.MenuItemFilter) ([]model.MenuItem, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.MenuItem{})
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)
	var items []model.MenuItem
	if err := db.Order("category, name").Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *gormMenuItemRepo) CountSlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MenuItem{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count, err
}

type gormAvailabilityRepo struct {
	db *gorm.DB
}

func (r *gormAvailabilityRepo) Upsert(ctx context.Context, entry *model.Availability) error {
	entry.Date = DateOnly(entry.Date)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "note", "updated_at"}),
	}).Create(entry).Error
}

func (r *gormAvailabilityRepo) GetByDate(ctx context.Context, date time.Time) (*model.Availability, error) {
	var entry model.Availability
	if err := r.db.WithContext(ctx).
		Where("date = ?", DateOnly(date)).
		First(&entry).Error; err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

func (r *gormAvailabilityRepo) ListAvailableFrom(ctx context.Context, from time.Time) ([]model.Availability, error) {
	var entries []model.Availability
	err := r.db.WithContext(ctx).
		Where("is_available = ? AND date >= ?", true, DateOnly(from)).
		Order("date asc").
		Find(&entries).Error
	return entries, err
}

func (r *gormAvailabilityRepo) List(ctx context.Context) ([]model.Availability, error) {
	var entries []model.Availability
	err := r.db.WithContext(ctx).Order("date asc").Find(&entries).Error
	return entries, err
}

func (r *gormAvailabilityRepo) Delete(ctx context.Context, date time.Time) error {
	res := r.db.WithContext(ctx).
		Where("date = ?", DateOnly(date)).
		Delete(&model.Availability{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormAvailabilityRepo) DeleteBefore(ctx context.Context, date time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("date < ?", DateOnly(date)).
		Delete(&model.Availability{})
	return res.RowsAffected, res.Error
}

type gormMessageRepo struct {
	db *gorm.DB
}

func (r *gormMessageRepo) Create(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *gormMessageRepo) ListByOrder(ctx context.Context, orderId uint) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderId).
		Order("created_at asc").
		Find(&messages).Error
	return messages, err
}

type gormRatingRepo struct {
	db *gorm.DB
}

func (r *gormRatingRepo) GetByOrder(ctx context.Context, orderId uint) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderId).
		First(&rating).Error; err != nil {
		return nil, translate(err)
	}
	return &rating, nil
}

// UpsertStars dotyka wyłącznie kolumn stars/comment, więc odpowiedź
// administratora zostaje nietknięta przy ponownej ocenie.
func (r *gormRatingRepo) UpsertStars(ctx context.Context, orderId uint, stars int, comment *string) (*model.Rating, error) {
	rating := model.Rating{OrderId: orderId, Stars: stars, Comment: comment}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "comment", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return nil, err
	}
	return r.GetByOrder(ctx, orderId)
}

func (r *gormRatingRepo) SetReply(ctx context.Context, orderId uint, reply string) (*model.Rating, error) {
	res := r.db.WithContext(ctx).Model(&model.Rating{}).
		Where("order_id = ?", orderId).
		Update("admin_reply", reply)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByOrder(ctx, orderId)
}
