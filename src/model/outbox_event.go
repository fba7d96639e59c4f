package model

import "time"

// OutboxEvent is a pending order notification for linked sites. Rows are
// written in the same request that mutates the order and drained by the
// outbox worker.
type OutboxEvent struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	EventID   string `gorm:"uniqueIndex;type:uuid;not null"`
	OrderID   uint   `gorm:"index;not null"`
	Payload   string `gorm:"type:text"`
	Retry     int    `gorm:"default:0"`
	Processed bool   `gorm:"default:false;index"`
	CreatedAt time.Time
}

func (OutboxEvent) TableName() string {
	return "outbox_events"
}
