package model

import "encoding/json"

// User is an authenticated portal actor. Roles are stored as a JSON array of
// role names; a user may hold several at once. ApiToken is managed by the
// external session layer, the API only resolves it.
type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"uniqueIndex;not null"`
	FirstName string
	LastName  string
	Roles     string `gorm:"type:text"`
	ApiToken  string `gorm:"uniqueIndex"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) RoleNames() []string {
	var names []string
	if u.Roles == "" {
		return names
	}
	_ = json.Unmarshal([]byte(u.Roles), &names)
	return names
}

func (u *User) SetRoleNames(names []string) {
	encoded, _ := json.Marshal(names)
	u.Roles = string(encoded)
}

// UserMeta is one namespaced attribute on a user, value JSON-encoded.
type UserMeta struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"index:idx_user_meta,unique;not null"`
	MetaKey   string `gorm:"index:idx_user_meta,unique;size:191;not null"`
	MetaValue string `gorm:"type:text"`
}

func (UserMeta) TableName() string {
	return "user_meta"
}
