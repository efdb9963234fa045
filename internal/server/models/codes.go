package models

import "time"

// CodeInfo binds an outstanding password recovery code to a user.
type CodeInfo struct {
	UserID   string    `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}
