// internal/domain/admin/entity.go
package admin

import "time"

type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleSubAdmin   Role = "subadmin"
)

type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
