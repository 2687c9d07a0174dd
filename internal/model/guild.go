package model

// GuildConfig holds per-guild preferences. Created lazily with all flags
// false on first access, mutated field-by-field, never deleted.
type GuildConfig struct {
	ID                  int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	GuildID             string `json:"guild_id" gorm:"type:varchar(32);uniqueIndex;not null"`
	AutoEmbed           bool   `json:"auto_embed" gorm:"default:false"`
	DeleteOrigin        bool   `json:"delete_origin" gorm:"default:false"`
	SuppressOriginEmbed bool   `json:"suppress_origin_embed" gorm:"default:false"`
}

// TableName returns the table name for GuildConfig
func (GuildConfig) TableName() string {
	return "guild_configs"
}

// GuildConfigUpdate is a partial update: nil fields are left untouched
type GuildConfigUpdate struct {
	AutoEmbed           *bool `json:"auto_embed,omitempty"`
	DeleteOrigin        *bool `json:"delete_origin,omitempty"`
	SuppressOriginEmbed *bool `json:"suppress_origin_embed,omitempty"`
}

// Fields returns the set fields as a column->value map for a partial update
func (u *GuildConfigUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.AutoEmbed != nil {
		fields["auto_embed"] = *u.AutoEmbed
	}
	if u.DeleteOrigin != nil {
		fields["delete_origin"] = *u.DeleteOrigin
	}
	if u.SuppressOriginEmbed != nil {
		fields["suppress_origin_embed"] = *u.SuppressOriginEmbed
	}
	return fields
}
