// internal/domain/cases/dto.go
package cases

import "time"

type CreateCaseRequest struct {
	// CustomerID may be empty when the request arrives through quick-case
	// promotion, which fills it in after creating the customer. The
	// service rejects creates whose customer does not exist.
	CustomerID string `json:"customer_id"`

	Model  string `json:"model" binding:"required,max=255"`
	Serial string `json:"serial" binding:"required,max=128"`

	PurchasePlace string     `json:"purchase_place" binding:"max=255"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	Receipt       string     `json:"receipt" binding:"max=255"`

	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	RepairDetails string        `json:"repair_details"`

	ShippingCost float64 `json:"shipping_cost"`
}

type UpdateCaseRequest struct {
	Model  *string `json:"model" binding:"omitempty,max=255"`
	Serial *string `json:"serial" binding:"omitempty,max=128"`

	PurchasePlace *string    `json:"purchase_place" binding:"omitempty,max=255"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	Receipt       *string    `json:"receipt" binding:"omitempty,max=255"`

	Status        *Status        `json:"status"`
	PaymentStatus *PaymentStatus `json:"payment_status"`
	RepairDetails *string        `json:"repair_details"`

	ShippingCost   *float64   `json:"shipping_cost"`
	ShippedAt      *time.Time `json:"shipped_at"`
	ReceivedAt     *time.Time `json:"received_at"`
	Carrier        *string    `json:"carrier" binding:"omitempty,max=128"`
	TrackingNumber *string    `json:"tracking_number" binding:"omitempty,max=128"`
}
