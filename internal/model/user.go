package model

import (
	"strings"
	"time"
)

// UserType is the role stored on a user record.
type UserType int

const (
	UserTypeInstructor UserType = 1
	UserTypeClient     UserType = 2
)

// Valid reports whether t is one of the two known roles.
func (t UserType) Valid() bool {
	return t == UserTypeInstructor || t == UserTypeClient
}

// String returns the human readable label used in API responses.
func (t UserType) String() string {
	switch t {
	case UserTypeInstructor:
		return "Instructor"
	case UserTypeClient:
		return "Client"
	default:
		return "Unknown"
	}
}

// User represents a user in the system
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	UserType     UserType  `json:"user_type"`
	Bio          *string   `json:"bio,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	DateJoined   time.Time `json:"date_joined"`
}

// CreateUserInput carries the fields required to create a user account.
type CreateUserInput struct {
	Username    string   `json:"username" validate:"required,max=150"`
	Email       string   `json:"email" validate:"required,email,max=254"`
	PhoneNumber string   `json:"phone_number" validate:"required,max=17,phone"`
	Password    string   `json:"password" validate:"required"`
	UserType    UserType `json:"user_type"`
	Bio         *string  `json:"bio"`
	IsStaff     bool     `json:"is_staff"`
	IsSuperuser bool     `json:"is_superuser"`
}

// NormalizeEmail lowercases the domain part of an email address and leaves
// the local part untouched.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
