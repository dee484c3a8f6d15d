package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Int64Slice stores an ordered list of unix timestamps as a JSON column.
type Int64Slice []int64

func (s Int64Slice) Value() (driver.Value, error) {
	if s == nil {
		s = Int64Slice{}
	}
	return json.Marshal(s)
}

func (s *Int64Slice) Scan(value interface{}) error {
	if value == nil {
		*s = Int64Slice{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into Int64Slice", value)
	}
}

// User represents a registered chat user and their quota state
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `gorm:"uniqueIndex;not null" json:"name"`
	LastAccess   Int64Slice `gorm:"type:jsonb" json:"last_access"` // ascending, at most 20 entries
	MessageCount uint64     `gorm:"default:0" json:"message_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
