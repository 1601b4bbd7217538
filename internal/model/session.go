package model

import "time"

// AdminSubject is the only identity a session token can be issued for.
const AdminSubject = "admin"

// SessionTokenPayload is what a verified session token proves.
type SessionTokenPayload struct {
	Subject   string    `json:"sub"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}
