// internal/domain/customer/entity.go
package customer

import "time"

// NotificationPrefs are per-customer channel opt-ins. A disabled flag
// suppresses the channel regardless of the global toggles.
type NotificationPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

type Customer struct {
	ID string `json:"id"`

	// Number is the human-readable identifier (CUST-NNNN), sequential per
	// backend instance. Sequences are not shared across backends.
	Number string `json:"customer_number"`

	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`

	Prefs NotificationPrefs `json:"notification_preferences"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
