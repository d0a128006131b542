package model

const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
	CategoryDrink   = "drink"
)

type MenuItem struct {
	DTO
	Slug        string  `gorm:"uniqueIndex;size:120" json:"slug"`
	Name        string  `gorm:"size:120;not null" json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `gorm:"not null" json:"priceCents"` // cena w groszach
	Category    string  `gorm:"size:20;not null" json:"category"`
	Active      bool    `gorm:"not null;default:true" json:"active"`
	ImageUrl    *string `json:"imageUrl,omitempty"`
}

type CreateMenuItemInput struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"omitempty,max=500"`
	PriceCents  int64  `json:"priceCents" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required,oneof=starter main dessert drink"`
	Active      *bool  `json:"active" validate:"omitempty"`
}

type UpdateMenuItemInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=120"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	PriceCents  *int64  `json:"priceCents" validate:"omitempty,gt=0"`
	Category    *string `json:"category" validate:"omitempty,oneof=starter main dessert drink"`
	Active      *bool   `json:"active" validate:"omitempty"`
}

type MenuItemFilter struct {
	Pagination
	Category *string `json:"category"`
	Active   *bool   `json:"active"`
}
