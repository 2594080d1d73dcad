package models

// User represents an account. A user exclusively owns its tokens and
// todo items; deleting the user cascades to both.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Password string `gorm:"size:70;not null" json:"-"` // bcrypt hash, never serialized

	Tokens []Token `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Todos  []Todo  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (User) Kind() string { return "User" }
