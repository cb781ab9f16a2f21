// internal/domain/customer/dto.go
package customer

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"max=512"`
	Email   string `json:"email" binding:"omitempty,email,max=255"`

	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Address *string `json:"address" binding:"omitempty,max=512"`
	Email   *string `json:"email" binding:"omitempty,email,max=255"`

	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
}
