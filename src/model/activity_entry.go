package model

import (
	"time"

	"gorm.io/gorm"
)

// ActivityEntry records one mutating portal action: who did it, what they
// did and to which resource.
type ActivityEntry struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string         `gorm:"type:varchar(191);not null;index" json:"actor"`
	Action    string         `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource  string         `gorm:"type:text" json:"resource"`
	Timestamp time.Time      `gorm:"type:timestamp;not null;index" json:"timestamp"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}
