package domain

import "time"

// User is an administrator account that can log into the admin API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	// PasswordHash is the bcrypt hash of the password. It never leaves the server.
	PasswordHash string `json:"-"`
	Email        string `json:"email,omitempty"`
	Nickname     string `json:"nickname,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Enabled      bool   `json:"isEnabled"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
