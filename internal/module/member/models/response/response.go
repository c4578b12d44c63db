package response

import "time"

type Signup struct {
	PmaID string `json:"pmaId"`
}

type Login struct {
	PmaID     string    `json:"pmaId"`
	Type      string    `json:"type"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	Token     string    `json:"-"`
}
