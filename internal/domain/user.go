package domain

import (
	"context"
	"time"
)

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

type User struct {
	UserID       int        `gorm:"primaryKey"`
	Username     string     `gorm:"size:50;not null;uniqueIndex"`
	Email        string     `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string     `gorm:"size:255;not null"`
	FirstName    string     `gorm:"size:50"`
	LastName     string     `gorm:"size:50"`
	Role         string     `gorm:"size:20;not null"`
	IsActive     bool       `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null"`
	LastLoginAt  *time.Time
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}
