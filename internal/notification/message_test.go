package notification_test

import (
	"testing"
	"time"

	"bazar/internal/models"
	"bazar/internal/notification"

	"github.com/stretchr/testify/assert"
)

func confirmationOrder() *models.Order {
	created, _ := time.Parse("2006-01-02", "2026-01-07")
	return &models.Order{
		ID:            "test123",
		OrderNumber:   "BSB00001",
		CustomerName:  "Rajesh Kumar",
		CustomerEmail: "rajesh.kumar@example.com",
		CustomerPhone: "+91-9876543210",
		Items: models.OrderItems{
			{Name: "Designer Kurta Set", Quantity: 1, Price: 899},
			{Name: "Men's Cotton Shirt", Quantity: 2, Price: 599},
		},
		TotalAmount: 2097,
		Status:      models.StatusCompleted,
		CreatedAt:   created,
	}
}

func TestBuildEmail(t *testing.T) {
	msg := notification.BuildEmail(confirmationOrder())

	assert.Equal(t, "email", msg.Channel)
	assert.Equal(t, "rajesh.kumar@example.com", msg.To)
	assert.Equal(t, "Order Confirmed - #BSB00001", msg.Subject)

	assert.Contains(t, msg.Body, "Dear Rajesh Kumar,")
	assert.Contains(t, msg.Body, "Order Number: #BSB00001")
	assert.Contains(t, msg.Body, "Order Date: 07/01/2026")
	assert.Contains(t, msg.Body, "Designer Kurta Set x 1 - ₹899")
	// Line totals multiply price by quantity.
	assert.Contains(t, msg.Body, "Men's Cotton Shirt x 2 - ₹1198")
	assert.Contains(t, msg.Body, "TOTAL AMOUNT: ₹2097")
}

func TestBuildSMS(t *testing.T) {
	msg := notification.BuildSMS(confirmationOrder())

	assert.Equal(t, "sms", msg.Channel)
	assert.Equal(t, "+91-9876543210", msg.To)
	assert.Contains(t, msg.Body, "Dear Rajesh Kumar")
	assert.Contains(t, msg.Body, "#BSB00001")
	assert.Contains(t, msg.Body, "Total: ₹2097")
}
