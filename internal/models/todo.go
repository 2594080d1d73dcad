package models

import (
	"time"

	"gorm.io/gorm"
)

// Todo is a task item owned by exactly one user. FinishTime stays nil
// until the item is first marked done.
type Todo struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Name       string     `gorm:"size:50;not null" json:"name"`
	Important  bool       `gorm:"default:false" json:"important"`
	Done       bool       `gorm:"default:false" json:"done"`
	StartTime  time.Time  `gorm:"index;not null" json:"start_time"`
	FinishTime *time.Time `json:"finish_time"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
}

func (Todo) Kind() string { return "Todo" }

// OwnerID reports the owning user for access checks.
func (t *Todo) OwnerID() uint { return t.UserID }

func (t *Todo) BeforeCreate(*gorm.DB) error {
	if t.StartTime.IsZero() {
		t.StartTime = time.Now()
	}
	return nil
}
