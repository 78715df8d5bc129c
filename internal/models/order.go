package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Order statuses. Transitions are deliberately unconstrained: staff may move
// an order between any two statuses, only membership in the set is checked.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Payment methods. "pending" is the placeholder until staff record how the
// customer actually paid.
const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentUPI     = "upi"
	PaymentPending = "pending"
)

// OrderItem is a snapshot of a catalog entry at order time. It carries no
// live reference to the product, so deleting a product never invalidates
// historical orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}

// OrderItems is stored as a single JSON column in the persistent backend.
type OrderItems []OrderItem

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*items = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("cannot scan %T into OrderItems", value)
	}
}

// Order represents a customer order placed through checkout.
type Order struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber   string     `json:"orderNumber" gorm:"uniqueIndex;type:varchar(20)"`
	CustomerName  string     `json:"customerName" gorm:"type:varchar(100)"`
	CustomerEmail string     `json:"customerEmail" gorm:"type:varchar(255)"`
	CustomerPhone string     `json:"customerPhone" gorm:"type:varchar(30)"`
	Items         OrderItems `json:"items" gorm:"type:jsonb"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        string     `json:"status" gorm:"type:varchar(20)"`
	PaymentMethod string     `json:"paymentMethod" gorm:"type:varchar(20)"`
	Notes         string     `json:"notes,omitempty" gorm:"type:varchar(500)"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// OrderSummary is the dashboard aggregate over all orders.
type OrderSummary struct {
	TotalOrders     int     `json:"totalOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
}
