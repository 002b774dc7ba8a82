package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one key/value row in the per-user state table.
type Entry struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists entries through a gorm connection (sqlite or postgres,
// whichever the database package opened).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(userID uuid.UUID, key string) ([]byte, bool, error) {
	var entry Entry
	err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(userID uuid.UUID, key string, value []byte) error {
	entry := Entry{UserID: userID, Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (s *GormStore) Remove(userID uuid.UUID, key string) error {
	return s.db.Where("user_id = ? AND key = ?", userID, key).Delete(&Entry{}).Error
}

func (s *GormStore) RemoveAll(userID uuid.UUID) error {
	return s.db.Where("user_id = ?", userID).Delete(&Entry{}).Error
}
