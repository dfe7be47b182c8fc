package model

import "time"

// User stores admin-console and client-portal accounts.
// Role: "admin" | "client"
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"uniqueIndex;not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"` // bcrypt hash
	CompanyName *string
	ContactName *string
	Phone       *string
	Role        string `gorm:"type:varchar(20);not null;default:'client'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PasswordReset is a single-use reset token with a one-hour expiry.
type PasswordReset struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
