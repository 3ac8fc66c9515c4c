// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account: a factory operator who registers
// product units, or an end user tracking wellness data. Credentials live in
// the Authentication entity, never here.
type User struct {
	ID        uuid.UUID // The global unique identifier for the user.
	Email     string    // The user's primary contact email, used as the login identifier.
	Name      string    // Display name; defaults to the local part of the email at registration.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}
