package models

import "time"

// AppState is the single-row snapshot store: the whole FactoryState document
// lives in one JSONB column, written wholesale after each accepted mutation.
type AppState struct {
	ID        int    `gorm:"primaryKey"`
	Data      string `gorm:"type:jsonb"`
	UpdatedAt time.Time
}
