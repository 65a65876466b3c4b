package models

// User is the demo session identity. PasswordHash is bcrypt; the plaintext
// is never stored.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email" validate:"required,email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Verified     bool   `json:"verified"`
	TwoFA        bool   `json:"twoFA"`
}

// AuthState is the persisted durable auth record.
type AuthState struct {
	User *User `json:"user"`
}
