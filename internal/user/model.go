package user

import (
	"net/mail"
	"strings"
	"time"

	"github.com/thesrcielos/SnakeArena/internal/apperrors"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what a successful signup or login hands back to the transport.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

const (
	minUsernameLength = 3
	maxUsernameLength = 30
	minPasswordLength = 6
)

func (r *SignupRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	if len(r.Username) < minUsernameLength || len(r.Username) > maxUsernameLength {
		return apperrors.Validation("username must be between 3 and 30 characters")
	}
	if !validEmail(r.Email) {
		return apperrors.Validation("email is not valid")
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.Validation("password must be at least 6 characters")
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return apperrors.Validation("email and password are required")
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
