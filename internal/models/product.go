package models

import "time"

// Product represents a single catalog entry. The product code is the
// business key callers use to address a product; the numeric ID is
// assigned by storage and never supplied by callers.
type Product struct {
	ID            uint    `json:"id" gorm:"primaryKey"`
	Code          string  `json:"code" gorm:"uniqueIndex;type:varchar(64)" validate:"required,notblank,max=64"`
	Name          string  `json:"name" gorm:"type:varchar(100)" validate:"required,notblank,max=100"`
	Description   string  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price         float64 `json:"price" validate:"gte=0"`
	Quantity      int     `json:"quantity" validate:"gte=0"`
	OriginCountry string  `json:"origin_country" gorm:"type:varchar(100)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
