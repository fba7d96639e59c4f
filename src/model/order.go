package model

import "time"

// Order is a portal order record. Everything beyond the title lives in
// OrderMeta, mirroring the record-plus-metadata shape of the content store.
type Order struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"not null"`
	Status    string `gorm:"size:20;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Order) TableName() string {
	return "portal_orders"
}

// OrderMeta is one namespaced attribute on an order, value JSON-encoded.
// Legal-counsel fields use the lc_ prefix.
type OrderMeta struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	OrderID   uint   `gorm:"index:idx_order_meta,unique;not null"`
	MetaKey   string `gorm:"index:idx_order_meta,unique;size:191;not null"`
	MetaValue string `gorm:"type:text"`
}

func (OrderMeta) TableName() string {
	return "portal_order_meta"
}

// OrderCategory is a hierarchical taxonomy term scoped to orders. The slug is
// the external identifier; the numeric ID is the join key.
type OrderCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"index;not null"`
	Slug     string `gorm:"uniqueIndex;size:191;not null"`
	ParentID *uint
}

func (OrderCategory) TableName() string {
	return "order_categories"
}

type OrderCategoryAssignment struct {
	OrderID    uint `gorm:"primaryKey"`
	CategoryID uint `gorm:"primaryKey"`
}

func (OrderCategoryAssignment) TableName() string {
	return "order_category_assignments"
}
