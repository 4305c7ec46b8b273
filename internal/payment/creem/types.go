package creem

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Event types and statuses the receiver acts on.
const (
	EventCheckoutCompleted = "checkout.completed"

	CheckoutStatusCompleted = "completed"
	OrderStatusPaid         = "paid"
	OrderTypeOnetime        = "onetime"
)

// Event is a webhook delivery. Only the fields read by the receiver are decoded.
type Event struct {
	Id        string   `json:"id"`
	EventType string   `json:"eventType"`
	Object    Checkout `json:"object"`
}

type Checkout struct {
	Id       string          `json:"id"`
	Status   string          `json:"status"`
	Order    Order           `json:"order"`
	Customer json.RawMessage `json:"customer"`
}

type Order struct {
	Id       string `json:"id"`
	Customer string `json:"customer"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Type     string `json:"type"`
}

// Customer is expanded on checkout events; on some events it is only an id.
type Customer struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// ParseEvent decodes a raw webhook body.
func ParseEvent(body []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CustomerInfo returns the expanded customer. A bare id yields a customer
// without an email.
func (c *Checkout) CustomerInfo() Customer {
	var cust Customer
	raw := strings.TrimSpace(string(c.Customer))
	switch {
	case raw == "" || raw == "null":
	case raw[0] == '"':
		_ = json.Unmarshal(c.Customer, &cust.Id)
	default:
		_ = json.Unmarshal(c.Customer, &cust)
	}
	if cust.Id == "" {
		cust.Id = c.Order.Customer
	}
	return cust
}

// AmountDecimal converts the order amount from minor units.
func (o *Order) AmountDecimal() decimal.Decimal {
	return decimal.New(o.Amount, -2)
}
