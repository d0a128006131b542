package model

import "time"

// Availability mówi, czy w danym dniu przyjmujemy zamówienia. Jeden wpis na dzień.
type Availability struct {
	DTO
	Date        time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	IsAvailable bool      `gorm:"not null;default:true" json:"isAvailable"`
	Note        *string   `gorm:"size:200" json:"note,omitempty"`
}

type SetAvailabilityInput struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	IsAvailable *bool   `json:"isAvailable" validate:"required"`
	Note        *string `json:"note" validate:"omitempty,max=200"`
}
