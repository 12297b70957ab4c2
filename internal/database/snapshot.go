package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"factorypro-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The whole factory snapshot lives in one JSONB row, loaded wholesale at
// startup and upserted wholesale after each accepted mutation.
const stateRowID = 1

// LoadState reads the persisted snapshot. A missing row means a fresh
// install; the caller starts from the default state.
func LoadState() (*models.FactoryState, error) {
	var row models.AppState
	err := DB.First(&row, "id = ?", stateRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var st models.FactoryState
	if err := json.Unmarshal([]byte(row.Data), &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &st, nil
}

// SaveState upserts the snapshot document. It runs after the in-memory
// commit; an error here loses at most the last mutation on restart, never
// the invariants.
func SaveState(data []byte) {
	row := models.AppState{ID: stateRowID, Data: string(data)}
	err := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		log.Println("snapshot save failed:", err)
	}
}
