package models

import "time"

// Base contains common columns for all tables. Deletes are hard deletes:
// once a row is gone an owner-scoped lookup behaves exactly as if the id
// never existed.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
