package model

// Rating: najwyżej jedna ocena na zamówienie, upsert po orderId.
type Rating struct {
	DTO
	OrderId    uint    `gorm:"uniqueIndex;not null" json:"orderId"`
	Stars      int     `gorm:"not null" json:"stars"`
	Comment    *string `gorm:"size:500" json:"comment,omitempty"`
	AdminReply *string `gorm:"size:500" json:"adminReply,omitempty"`
}

type SubmitRatingInput struct {
	OrderCode string  `json:"orderId" validate:"required"`
	Stars     int     `json:"stars" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment" validate:"omitempty,max=500"`
}

type AdminReplyInput struct {
	OrderCode  string `json:"orderId" validate:"required"`
	AdminReply string `json:"adminReply" validate:"required,min=1,max=500"`
}
