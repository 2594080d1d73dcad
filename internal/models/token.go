package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Token is an opaque bearer credential issued at login. It is bound to
// exactly one user, never mutated, and removed only when its user is
// deleted.
type Token struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Value  string `gorm:"size:36;uniqueIndex;not null" json:"token"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	User   User   `json:"-"`
}

func (Token) Kind() string { return "Token" }

// OwnerID reports the owning user for access checks.
func (t *Token) OwnerID() uint { return t.UserID }

// BeforeCreate assigns the token value. The value is generated by the
// store layer; callers never choose it.
func (t *Token) BeforeCreate(*gorm.DB) error {
	if t.Value == "" {
		t.Value = uuid.NewString()
	}
	return nil
}
