package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"-"`
	Role         Role    `json:"role"`
	ProfileImage *string `json:"profileImage,omitempty"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UpdateProfileParams struct {
	UserID       uint
	Name         string
	ProfileImage *string
}
