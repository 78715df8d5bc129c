package notification

import (
	"encoding/json"
	"log"

	"bazar/internal/models"
	"bazar/pkg/rabbitmq"
)

// Notifier dispatches an order confirmation. Implementations are best-effort:
// failures are logged, never returned, so a broken delivery channel can never
// fail the status update that triggered it.
type Notifier interface {
	Notify(order *models.Order)
}

// QueueNotifier publishes confirmation messages to RabbitMQ for asynchronous
// delivery by the consumer worker.
type QueueNotifier struct {
	client *rabbitmq.Client
}

// NewQueueNotifier creates a new QueueNotifier.
func NewQueueNotifier(client *rabbitmq.Client) *QueueNotifier {
	return &QueueNotifier{client: client}
}

// Notify enqueues the email and SMS confirmations for the given order.
func (n *QueueNotifier) Notify(order *models.Order) {
	for _, msg := range []Message{BuildEmail(order), BuildSMS(order)} {
		body, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Warning: failed to marshal %s confirmation for order %s: %v", msg.Channel, order.OrderNumber, err)
			continue
		}
		if err := n.client.Publish(body); err != nil {
			log.Printf("Warning: failed to publish %s confirmation for order %s: %v", msg.Channel, order.OrderNumber, err)
		}
	}
}

// ConsoleNotifier writes confirmations straight to the operator console. Used
// when no broker is configured.
type ConsoleNotifier struct{}

// NewConsoleNotifier creates a new ConsoleNotifier.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

// Notify logs the email and SMS confirmations for the given order.
func (n *ConsoleNotifier) Notify(order *models.Order) {
	Deliver(BuildEmail(order))
	Deliver(BuildSMS(order))
}

// Deliver prints a confirmation message to the operator console. This stands
// in for a real mail or SMS gateway.
func Deliver(msg Message) {
	switch msg.Channel {
	case "email":
		log.Printf("\n===== EMAIL SENT =====\nTo: %s\nSubject: %s\n%s\n======================\n", msg.To, msg.Subject, msg.Body)
	case "sms":
		log.Printf("\n===== SMS SENT =====\nTo: %s\n%s\n====================\n", msg.To, msg.Body)
	default:
		log.Printf("Unknown notification channel %q for %s", msg.Channel, msg.To)
	}
}
