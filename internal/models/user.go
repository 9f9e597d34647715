package models

import "time"

// User is an admin account. Password holds the bcrypt hash; the JSON tag is
// needed by the file backend, so handlers must never serialize the struct
// directly (the login response picks its fields explicitly).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password"`
	Role      string    `gorm:"default:'admin'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
