// Package models defines server-side data models persisted in the store.
package models

import "time"

// Account is a registered email/password-hash pair. Accounts are created
// on registration and immutable afterwards; the email is the store key and
// is compared case-sensitively.
type Account struct {
	Email        string    `db:"email" dynamodbav:"email"`
	PasswordHash string    `db:"password_hash" dynamodbav:"password"`
	CreatedAt    time.Time `db:"created_at" dynamodbav:"createdAt"`
}
