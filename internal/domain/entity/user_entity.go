package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// PasswordHash holds a bcrypt hash and never leaves the service layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Stats        UserStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStats are running workout counters, zero on signup.
type UserStats struct {
	TotalCalories int
	TotalMinutes  int
	TotalWorkouts int
}
