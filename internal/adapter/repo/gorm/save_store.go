package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ogvalley/internal/adapter/repo/gorm/model"
	"ogvalley/internal/app/ports"
	"ogvalley/internal/domain/valley"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveStore keeps one row per save key. The world goes into a jsonb column;
// day, season and money are copied out so the table can be inspected with
// plain SQL.
type SaveStore struct {
	db *gorm.DB
}

func NewSaveStore(db *gorm.DB) SaveStore {
	return SaveStore{db: db}
}

func (r SaveStore) Load(ctx context.Context, key string) (valley.SaveData, error) {
	var row model.SaveSlot
	err := r.db.WithContext(ctx).Where("slot_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return valley.SaveData{}, ports.ErrNotFound
		}
		return valley.SaveData{}, err
	}
	var data valley.SaveData
	if err := json.Unmarshal(row.Payload, &data); err != nil {
		return valley.SaveData{}, fmt.Errorf("%w: %v", valley.ErrMalformedSave, err)
	}
	return data, nil
}

func (r SaveStore) Save(ctx context.Context, key string, data valley.SaveData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	row := model.SaveSlot{
		SlotKey:   key,
		Payload:   payload,
		Day:       int32(data.GameState.Day),
		Season:    string(data.GameState.Season()),
		Money:     int32(data.Player.Money),
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "day", "season", "money", "updated_at"}),
	}).Create(&row).Error
}

func (r SaveStore) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&model.SaveSlot{}).Error
}
