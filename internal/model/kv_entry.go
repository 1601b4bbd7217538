package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one row of the Postgres key-value table used as a backing store.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;size:255" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
