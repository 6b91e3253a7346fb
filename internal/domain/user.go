package domain

import "time"

// Manager account allowed to use the dashboard.
type User struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash []byte
}

// Claims carried by an issued access token.
type TokenPayload struct {
	ID        string
	UserID    int64
	Username  string
	Name      string
	IssuedAt  time.Time
	ExpiredAt time.Time
}
