package notification

import (
	"fmt"
	"strings"

	"bazar/internal/models"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Message is a single outbound confirmation, one per channel.
type Message struct {
	Channel string `json:"channel"` // "email" or "sms"
	To      string `json:"to"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body"`
}

// BuildEmail renders the order-confirmation email for a completed order.
func BuildEmail(order *models.Order) Message {
	var items strings.Builder
	for i, item := range order.Items {
		if i > 0 {
			items.WriteString("\n")
		}
		fmt.Fprintf(&items, "%s x %d - ₹%g", item.Name, item.Quantity, item.Price*float64(item.Quantity))
	}

	body := fmt.Sprintf(`%[1]s
    BHARAT SUPER BAZAR
    Order Confirmation
%[1]s

Dear %[2]s,

Your order has been confirmed!

Order Number: #%[3]s
Order Date: %[4]s

%[1]s
ORDER DETAILS:
%[1]s

%[5]s

%[1]s
TOTAL AMOUNT: ₹%[6]g
%[1]s

Thank you for shopping with us!

For any queries, please contact:
Email: support@bharatbazar.com
Phone: +91-XXXXXXXXXX

Regards,
Bharat Super Bazar Team
Family Shopping Destination
%[1]s
`, divider, order.CustomerName, order.OrderNumber, order.CreatedAt.Format("02/01/2006"), items.String(), order.TotalAmount)

	return Message{
		Channel: "email",
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Order Confirmed - #%s", order.OrderNumber),
		Body:    body,
	}
}

// BuildSMS renders the short confirmation sent to the customer's phone.
func BuildSMS(order *models.Order) Message {
	body := fmt.Sprintf(
		"Dear %s, Your order #%s has been confirmed! Total: ₹%g. Thank you for shopping at Bharat Super Bazar! - Team BSB",
		order.CustomerName, order.OrderNumber, order.TotalAmount,
	)
	return Message{Channel: "sms", To: order.CustomerPhone, Body: body}
}
