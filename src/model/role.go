package model

import "encoding/json"

// Role is a named capability bundle. Capabilities are persisted on the role
// row as a JSON array so the effective grant set survives restarts; the
// registrar rewrites them at activation and deactivation.
type Role struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"uniqueIndex;size:100;not null"`
	DisplayName  string
	Builtin      bool   `gorm:"default:false"`
	Capabilities string `gorm:"type:text"`
}

func (Role) TableName() string {
	return "roles"
}

func (r *Role) CapabilityList() []string {
	var caps []string
	if r.Capabilities == "" {
		return caps
	}
	_ = json.Unmarshal([]byte(r.Capabilities), &caps)
	return caps
}

func (r *Role) SetCapabilityList(caps []string) {
	encoded, _ := json.Marshal(caps)
	r.Capabilities = string(encoded)
}

func (r *Role) HasCapability(capability string) bool {
	for _, c := range r.CapabilityList() {
		if c == capability {
			return true
		}
	}
	return false
}
