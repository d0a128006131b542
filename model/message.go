package model

const (
	SenderUser  = "USER"
	SenderAdmin = "ADMIN"
)

// Message to pojedynczy wpis czatu zamówienia, tylko dopisywanie.
type Message struct {
	DTO
	OrderId uint   `gorm:"index;not null" json:"orderId"`
	Sender  string `gorm:"size:10;not null" json:"sender"`
	Body    string `gorm:"size:500;not null" json:"body"`
}

type PostMessageInput struct {
	OrderCode string `json:"orderId" validate:"required"`
	Sender    string `json:"sender" validate:"required,oneof=USER ADMIN"`
	Body      string `json:"body" validate:"required"`
}
