// internal/domain/cases/entity.go
package cases

import "time"

type Status string

const (
	StatusNew             Status = "New Case"
	StatusInProgress      Status = "In Progress"
	StatusAwaitingParts   Status = "Awaiting Parts"
	StatusRepairCompleted Status = "Repair Completed"
	StatusShipped         Status = "Shipped to Customer"
	StatusClosed          Status = "Closed"
)

// IsOpen reports whether the status counts as an open case. "Open" is
// derived, never stored.
func (s Status) IsOpen() bool {
	return s != StatusClosed && s != StatusShipped
}

type PaymentStatus string

const (
	PaymentPending        PaymentStatus = "Pending"
	PaymentPaidByCustomer PaymentStatus = "Paid by Customer"
	PaymentUnderWarranty  PaymentStatus = "Under Warranty"
	PaymentCompanyCovered PaymentStatus = "Company Covered"
)

// Case is a product repair/warranty case. There is no enforced transition
// graph: any status may move to any other, legality is a UI concern.
type Case struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`

	Model  string `json:"model"`
	Serial string `json:"serial"`

	PurchasePlace string     `json:"purchase_place,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	Receipt       string     `json:"receipt,omitempty"`

	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	RepairDetails string        `json:"repair_details,omitempty"`

	ShippingCost   float64    `json:"shipping_cost"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	ReceivedAt     *time.Time `json:"received_at,omitempty"`
	Carrier        string     `json:"carrier,omitempty"`
	TrackingNumber string     `json:"tracking_number,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the sole signal the inactivity sweeper reads.
	UpdatedAt time.Time `json:"updated_at"`
}
