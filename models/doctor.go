package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Doctor is a catalog entry backing the booking form: who can be booked
// and at which times of day. Seeded once, read only.
type Doctor struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	Name      string   `json:"name" gorm:"unique"`
	Specialty string   `json:"specialty"`
	Slots     SlotList `json:"slots" gorm:"type:jsonb"`
}

// SlotList stores the bookable "HH:MM" times as a JSONB column.
type SlotList []string

// Value implements the driver.Valuer interface
func (s SlotList) Value() (driver.Value, error) {
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *SlotList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal SlotList: unsupported type %T", value)
	}

	return json.Unmarshal(data, s)
}
