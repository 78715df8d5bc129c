package models

import "time"

// Product represents a catalog entry. Products are created and deleted by
// staff; there is no update-in-place, a change means delete and recreate.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string    `json:"name" gorm:"type:varchar(200)"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Category      string    `json:"category" gorm:"type:varchar(100)"`
	Subcategory   string    `json:"subcategory,omitempty" gorm:"type:varchar(100)"`
	Description   string    `json:"description,omitempty" gorm:"type:varchar(500)"`
	Image         string    `json:"image,omitempty" gorm:"type:varchar(500)"`
	InStock       bool      `json:"inStock"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
}
