package order

import (
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("order: not found")

// Status is the fulfilment state written by the external checkout process.
// This repository only reads orders.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the known states.
func ValidStatus(s string) bool {
	switch Status(strings.TrimSpace(strings.ToLower(s))) {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Item is a purchased line item snapshot (price frozen at purchase time).
type Item struct {
	ProductID  string `json:"productId"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"priceCents"`
}

// Pricing is the order total breakdown.
type Pricing struct {
	SubtotalCents   int64  `json:"subtotalCents"`
	ShippingCents   int64  `json:"shippingCents"`
	TaxCents        int64  `json:"taxCents"`
	GrandTotalCents int64  `json:"grandTotalCents"`
	Currency        string `json:"currency"`
}

// ShippingAddress is the delivery target snapshot.
type ShippingAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Tracking carries the carrier reference when shipped.
type Tracking struct {
	Carrier string `json:"carrier"`
	Number  string `json:"number"`
	URL     string `json:"url"`
}

// Order is read-only in this service; documents are created by an external
// checkout process.
type Order struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Items   []Item  `json:"items"`
	Pricing Pricing `json:"pricing"`

	Status          Status          `json:"status"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Tracking        Tracking        `json:"tracking"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
