package models

import "github.com/google/uuid"

// Ownable discriminates system-shared rows from user-private ones.
// A nil OwnerID means the row is system-owned and visible to everyone;
// a concrete OwnerID makes it private to that user.
type Ownable struct {
	OwnerID *uuid.UUID `gorm:"type:text;index" json:"owner_id"`
}

func (o Ownable) IsSystem() bool {
	return o.OwnerID == nil
}

func (o Ownable) IsOwnedBy(userID uuid.UUID) bool {
	return o.OwnerID != nil && *o.OwnerID == userID
}

// OwnedBy builds the private variant for a user.
func OwnedBy(userID uuid.UUID) Ownable {
	return Ownable{OwnerID: &userID}
}

// SystemOwned builds the shared variant.
func SystemOwned() Ownable {
	return Ownable{}
}

// Caller is the identity supplied by the surrounding application for
// every operation. A zero ID means the request is unauthenticated.
type Caller struct {
	ID         uuid.UUID
	IsOperator bool
}

func (c Caller) Authenticated() bool {
	return c.ID != uuid.Nil
}
