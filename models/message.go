package models

import (
	"time"
)

// Message represents one answered chat turn. Pending is true between the
// message insert and the user quota write-back; rows stuck pending mark
// turns whose user state never committed and are excluded from history.
type Message struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName  string    `gorm:"index;not null" json:"user_name"`
	Timestamp int64     `gorm:"not null" json:"timestamp"` // unix seconds, set at send time
	Message   string    `gorm:"not null" json:"message"`
	Reply     string    `json:"reply"`
	Pending   bool      `gorm:"not null;default:false" json:"pending"`
	CreatedAt time.Time `json:"created_at"`
}
