package model

import "time"

// Statusy zamówienia. REJECTED i DELIVERED są końcowe.
const (
	StatusPending    = "PENDING"
	StatusAccepted   = "ACCEPTED"
	StatusRejected   = "REJECTED"
	StatusInDelivery = "IN_DELIVERY"
	StatusDelivered  = "DELIVERED"
)

const (
	EventAgapa   = "AGAPA"
	EventImpreza = "IMPREZA_OKOLICZNOSCIOWA"
)

func IsKnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusInDelivery, StatusDelivered:
		return true
	}
	return false
}

func IsTerminalStatus(s string) bool {
	return s == StatusRejected || s == StatusDelivered
}

type Order struct {
	DTO
	PublicCode    string      `gorm:"uniqueIndex;size:20" json:"publicCode"`
	Status        string      `gorm:"not null;default:'PENDING'" json:"status"`
	StatusReason  *string     `json:"statusReason,omitempty"` // tylko dla REJECTED
	EventType     string      `gorm:"size:40;not null" json:"eventType"`
	DateTime      time.Time   `gorm:"not null" json:"dateTime"`
	Address       string      `gorm:"not null" json:"address"`
	PeopleCount   int         `gorm:"not null" json:"peopleCount"`
	MinPeople     int         `gorm:"not null" json:"minPeople"` // limit obowiązujący w chwili złożenia
	Community     string      `gorm:"size:100" json:"community"`
	Parish        string      `gorm:"size:100" json:"parish"`
	UserName      string      `gorm:"size:100;not null" json:"userName"`
	UserEmail     string      `gorm:"size:100;not null" json:"userEmail"`
	UserPhone     string      `gorm:"size:30;not null" json:"userPhone"`
	SubtotalCents int64       `gorm:"not null" json:"subtotalCents"`
	Items         []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderItem przechowuje cenę jednostkową z chwili złożenia zamówienia.
// Późniejsze zmiany cennika nie mają na nią wpływu.
type OrderItem struct {
	DTO
	OrderId    uint     `gorm:"index;not null" json:"orderId"`
	MenuItemId uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitCents  int64    `gorm:"not null" json:"unitCents"`
	TotalCents int64    `gorm:"not null" json:"totalCents"`
}

type OrderItemInput struct {
	MenuItemId uint `json:"menuItemId" validate:"required,gt=0"`
	Quantity   int  `json:"quantity" validate:"required,min=1"`
}

type CreateOrderInput struct {
	EventType   string           `json:"eventType" validate:"required,oneof=AGAPA IMPREZA_OKOLICZNOSCIOWA"`
	DateTime    string           `json:"dateTime" validate:"required"`
	Address     string           `json:"address" validate:"required,min=5"`
	PeopleCount int              `json:"peopleCount" validate:"required,min=1"`
	Community   string           `json:"community" validate:"required,min=2"`
	Parish      string           `json:"parish" validate:"required,min=2"`
	UserName    string           `json:"userName" validate:"required,min=2"`
	UserEmail   string           `json:"userEmail" validate:"required,email"`
	UserPhone   string           `json:"userPhone" validate:"required,min=9"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusInput struct {
	Status       string  `json:"status" validate:"required"`
	StatusReason *string `json:"statusReason" validate:"omitempty,max=500"`
}

type OrderFilter struct {
	Pagination
	Status   *string    `json:"status"`
	DateFrom *time.Time `json:"dateFrom"`
	DateTo   *time.Time `json:"dateTo"`
}
