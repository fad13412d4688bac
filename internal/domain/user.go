package domain

import "time"

// Roles a user account can hold. Employees only see their own sales and
// purchases; admins see everything and manage users/settings.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is a cashier or administrator account.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether s is a known user role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleEmployee
}
