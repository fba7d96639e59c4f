package model

// LinkedSite is an external site connected to the portal. The URL is the only
// editable field and must use https.
type LinkedSite struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"`
	Title string `gorm:"not null"`
	URL   string
}

func (LinkedSite) TableName() string {
	return "linked_sites"
}
