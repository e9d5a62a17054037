package domain

import "time"

// SelectionAction records which card action a customer used to pick a vendor.
type SelectionAction string

const (
	SelectionProfile    SelectionAction = "profile"
	SelectionInspection SelectionAction = "inspection"
	SelectionQuote      SelectionAction = "quote"
)

type Vendor struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Specialty    string    `json:"specialty"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	QuoteAmount  int64     `json:"quote_amount" validate:"gte=0"`
	QuoteDetails string    `json:"quote_details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VendorSelection is the audit record of a customer picking a vendor.
type VendorSelection struct {
	ID         string          `json:"id"`
	CustomerID int64           `json:"customer_id"`
	VendorID   int64           `json:"vendor_id"`
	Action     SelectionAction `json:"action"`
	CreatedAt  time.Time       `json:"created_at"`
}
