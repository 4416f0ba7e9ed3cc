package models

import "time"

// Roles a user account can hold.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents the users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Role         string    `gorm:"type:enum('USER','ADMIN');default:'USER'" json:"role"`
	City         string    `gorm:"size:100" json:"city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// UserSummary is the public projection of a user (password hash never leaves
// the server, city is only exposed through the dedicated city endpoint).
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
