package domain

import "time"

// DefaultSettingType is used when a setting is created without a type.
const DefaultSettingType = "string"

// Setting is a key/value system setting. Public settings are readable
// without authentication.
type Setting struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Type        string `json:"settingType"`
	Public      bool   `json:"isPublic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
